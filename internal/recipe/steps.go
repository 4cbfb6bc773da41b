package recipe

import (
	"iter"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Step is one numbered instruction step. Numbers are positional.
type Step struct {
	Number int    `json:"number"`
	Text   string `json:"text"`
}

var stepPrefix = regexp.MustCompile(`(?i)^step\s+\d+:\s*`)

// Segment splits instruction text into steps. Text with several non-blank
// lines yields one step per line. A single unbroken paragraph is split on
// sentence boundaries instead. Blank text yields nothing. Existing
// "Step N:" prefixes are stripped.
//
// The sequence is computed on each iteration and can be ranged over any
// number of times.
func Segment(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		if strings.TrimSpace(text) == "" {
			return
		}

		parts := lines(text)
		if len(parts) == 1 {
			parts = sentences(parts[0])
		}

		for _, part := range parts {
			cleaned := strings.TrimSpace(stepPrefix.ReplaceAllString(part, ""))
			if cleaned == "" {
				continue
			}
			if !yield(cleaned) {
				return
			}
		}
	}
}

// Numbered pairs each step from Segment with its 1-based position.
func Numbered(text string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		n := 0
		for step := range Segment(text) {
			n++
			if !yield(n, step) {
				return
			}
		}
	}
}

// Steps collects Numbered into a slice.
func Steps(text string) []Step {
	steps := make([]Step, 0)
	for n, s := range Numbered(text) {
		steps = append(steps, Step{Number: n, Text: s})
	}
	return steps
}

func lines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

// sentences splits after '.', '!' or '?' when followed by whitespace and
// then an uppercase letter or a digit.
func sentences(s string) []string {
	var out []string
	start := 0

	for i := 0; i < len(s); i++ {
		if s[i] != '.' && s[i] != '!' && s[i] != '?' {
			continue
		}

		j := i + 1
		for j < len(s) {
			r, size := utf8.DecodeRuneInString(s[j:])
			if !unicode.IsSpace(r) {
				break
			}
			j += size
		}
		if j == i+1 || j >= len(s) {
			continue
		}

		next, _ := utf8.DecodeRuneInString(s[j:])
		if !unicode.IsUpper(next) && !unicode.IsDigit(next) {
			continue
		}

		if part := strings.TrimSpace(s[start : i+1]); part != "" {
			out = append(out, part)
		}
		start = j
		i = j - 1
	}

	if part := strings.TrimSpace(s[start:]); part != "" {
		out = append(out, part)
	}
	return out
}
