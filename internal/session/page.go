package session

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/atinyakov/fridgebook/internal/bookmark"
)

const (
	LabelAdd     = "Add to bookmarks"
	LabelRemove  = "Remove bookmark"
	LabelSignIn  = "Log in to bookmark"
	LabelSaving  = "Saving…"
	LabelFailure = "Error – try again"
)

var (
	ErrSignedOut = errors.New("sign in to bookmark recipes")
	ErrBusy      = errors.New("bookmark update in progress")
	ErrClosed    = errors.New("page closed")
)

// Bookmarks is the part of the bookmark service the page needs.
type Bookmarks interface {
	IsBookmarked(ctx context.Context, userID string, key bookmark.Key) (bool, error)
	Toggle(ctx context.Context, userID string, key bookmark.Key) (bool, error)
}

// Button is what the bookmark control shows.
type Button struct {
	Label      string
	Enabled    bool
	Bookmarked bool
}

// RecipePage is the state of one open recipe page. It follows the auth
// state until Close is called.
type RecipePage struct {
	ctx       context.Context
	key       bookmark.Key
	bookmarks Bookmarks
	logger    *zap.Logger

	mu         sync.Mutex
	userID     string
	bookmarked bool
	inFlight   bool
	failed     bool
	closed     bool
	unsub      func()
}

// OpenRecipePage subscribes the page to auth and loads the bookmark state
// of key for the current user. ctx bounds every backend call of the page.
func OpenRecipePage(ctx context.Context, auth *Auth, bookmarks Bookmarks, key bookmark.Key, logger *zap.Logger) *RecipePage {
	p := &RecipePage{
		ctx:       ctx,
		key:       key,
		bookmarks: bookmarks,
		logger:    logger,
	}

	unsub := auth.Subscribe(p.onAuth)

	p.mu.Lock()
	p.unsub = unsub
	p.mu.Unlock()

	return p
}

// Key returns the bookmark key of the page.
func (p *RecipePage) Key() bookmark.Key {
	return p.key
}

func (p *RecipePage) onAuth(u User) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.userID = u.ID
	p.bookmarked = false
	p.failed = false
	p.mu.Unlock()

	if !u.SignedIn() {
		return
	}

	member, err := p.bookmarks.IsBookmarked(p.ctx, u.ID, p.key)
	if err != nil {
		p.logger.Warn("cannot read bookmark state", zap.String("user", u.ID), zap.Error(err))
		return
	}

	p.mu.Lock()
	if p.userID == u.ID {
		p.bookmarked = member
	}
	p.mu.Unlock()
}

// Toggle flips the bookmark. The control is disabled while a toggle is
// running, so a second call fails with ErrBusy instead of racing the first.
func (p *RecipePage) Toggle() (bool, error) {
	p.mu.Lock()
	switch {
	case p.closed:
		p.mu.Unlock()
		return false, ErrClosed
	case p.userID == "":
		p.mu.Unlock()
		return false, ErrSignedOut
	case p.inFlight:
		p.mu.Unlock()
		return false, ErrBusy
	}
	p.inFlight = true
	userID := p.userID
	p.mu.Unlock()

	member, err := p.bookmarks.Toggle(p.ctx, userID, p.key)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.inFlight = false

	if err != nil {
		p.logger.Error("bookmark toggle failed", zap.String("user", userID), zap.Error(err))
		p.failed = true
		return p.bookmarked, err
	}

	p.failed = false
	if p.userID == userID {
		p.bookmarked = member
	}
	return member, nil
}

// Button reports the current state of the bookmark control.
func (p *RecipePage) Button() Button {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch {
	case p.userID == "" || p.closed:
		return Button{Label: LabelSignIn}
	case p.inFlight:
		return Button{Label: LabelSaving, Bookmarked: p.bookmarked}
	case p.failed:
		return Button{Label: LabelFailure, Enabled: true, Bookmarked: p.bookmarked}
	case p.bookmarked:
		return Button{Label: LabelRemove, Enabled: true, Bookmarked: true}
	default:
		return Button{Label: LabelAdd, Enabled: true}
	}
}

// Close drops the auth subscription. It is safe to call more than once.
func (p *RecipePage) Close() {
	p.mu.Lock()
	p.closed = true
	unsub := p.unsub
	p.mu.Unlock()

	if unsub != nil {
		unsub()
	}
}
