// Package session holds the per-page state of the recipe page: who is
// signed in and what the bookmark control shows.
package session

import "sync"

// User is the signed-in identity. The zero value means signed out.
type User struct {
	ID string
}

func (u User) SignedIn() bool {
	return u.ID != ""
}

// Auth broadcasts sign-in state changes to subscribers.
type Auth struct {
	mu      sync.Mutex
	current User
	nextID  int
	subs    map[int]func(User)
}

func NewAuth() *Auth {
	return &Auth{subs: make(map[int]func(User))}
}

// Current returns the latest published user.
func (a *Auth) Current() User {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.current
}

// Subscribe registers fn and calls it right away with the current user.
// The returned cancel func removes the subscription and may be called any
// number of times.
func (a *Auth) Subscribe(fn func(User)) (cancel func()) {
	a.mu.Lock()
	id := a.nextID
	a.nextID++
	a.subs[id] = fn
	current := a.current
	a.mu.Unlock()

	fn(current)

	var once sync.Once
	return func() {
		once.Do(func() {
			a.mu.Lock()
			delete(a.subs, id)
			a.mu.Unlock()
		})
	}
}

// Publish stores u and notifies every subscriber. Subscribers run on the
// caller's goroutine, outside the lock, so they may cancel themselves.
func (a *Auth) Publish(u User) {
	a.mu.Lock()
	a.current = u
	subs := make([]func(User), 0, len(a.subs))
	for _, fn := range a.subs {
		subs = append(subs, fn)
	}
	a.mu.Unlock()

	for _, fn := range subs {
		fn(u)
	}
}

func (a *Auth) subscribers() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.subs)
}
