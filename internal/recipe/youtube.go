package recipe

import (
	"net/url"
	"regexp"
	"strings"
)

const embedBase = "https://www.youtube.com/embed/"

var videoIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ExtractYouTubeVideoID accepts watch URLs (…/watch?v=ID), short links
// (youtu.be/ID) and embed URLs (…/embed/ID). Anything else, including bare
// text, yields false.
func ExtractYouTubeVideoID(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}

	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "", false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", false
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	host = strings.TrimPrefix(host, "m.")

	var id string
	switch host {
	case "youtu.be":
		id = firstSegment(u.Path)
	case "youtube.com", "youtube-nocookie.com":
		switch {
		case u.Path == "/watch":
			id = u.Query().Get("v")
		case strings.HasPrefix(u.Path, "/embed/"):
			id = firstSegment(strings.TrimPrefix(u.Path, "/embed"))
		case strings.HasPrefix(u.Path, "/shorts/"):
			id = firstSegment(strings.TrimPrefix(u.Path, "/shorts"))
		}
	}

	if !videoIDPattern.MatchString(id) {
		return "", false
	}
	return id, true
}

// EmbedURL builds the iframe URL for a video id.
func EmbedURL(videoID string) string {
	return embedBase + videoID
}

// YouTubeEmbedURL extracts the id from raw and returns its embed URL.
func YouTubeEmbedURL(raw string) (string, bool) {
	id, ok := ExtractYouTubeVideoID(raw)
	if !ok {
		return "", false
	}
	return EmbedURL(id), true
}

func firstSegment(p string) string {
	p = strings.TrimPrefix(p, "/")
	if i := strings.IndexByte(p, '/'); i >= 0 {
		p = p[:i]
	}
	return p
}
