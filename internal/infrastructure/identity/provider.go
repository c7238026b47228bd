// Package identity adapts the external authentication collaborator. The
// catalog only ever reads a stable user id and display name; credentials and
// sessions are somebody else's problem.
package identity

import "sync"

// User is the minimal identity the catalog needs.
type User struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

// Provider supplies the current user and change notifications.
type Provider interface {
	// CurrentUser returns the signed-in user, ok=false when signed out.
	CurrentUser() (User, bool)

	// OnChange registers a callback invoked on every sign-in/sign-out.
	// The returned func unsubscribes.
	OnChange(fn func(User, bool)) (unsubscribe func())
}

// StaticProvider is an in-memory Provider for demos and tests.
type StaticProvider struct {
	mu        sync.Mutex
	user      User
	signedIn  bool
	nextSub   int
	callbacks map[int]func(User, bool)
}

var _ Provider = (*StaticProvider)(nil)

func NewStaticProvider() *StaticProvider {
	return &StaticProvider{callbacks: make(map[int]func(User, bool))}
}

// NewSignedIn returns a provider already signed in as the given user.
func NewSignedIn(id, displayName string) *StaticProvider {
	p := NewStaticProvider()
	p.SignIn(User{ID: id, DisplayName: displayName})
	return p
}

func (p *StaticProvider) CurrentUser() (User, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.user, p.signedIn
}

func (p *StaticProvider) SignIn(u User) {
	p.mu.Lock()
	p.user = u
	p.signedIn = true
	cbs := p.snapshotCallbacks()
	p.mu.Unlock()

	for _, fn := range cbs {
		fn(u, true)
	}
}

func (p *StaticProvider) SignOut() {
	p.mu.Lock()
	p.user = User{}
	p.signedIn = false
	cbs := p.snapshotCallbacks()
	p.mu.Unlock()

	for _, fn := range cbs {
		fn(User{}, false)
	}
}

func (p *StaticProvider) OnChange(fn func(User, bool)) func() {
	p.mu.Lock()
	defer p.mu.Unlock()

	id := p.nextSub
	p.nextSub++
	p.callbacks[id] = fn
	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		delete(p.callbacks, id)
	}
}

// snapshotCallbacks must be called with the lock held.
func (p *StaticProvider) snapshotCallbacks() []func(User, bool) {
	out := make([]func(User, bool), 0, len(p.callbacks))
	for _, fn := range p.callbacks {
		out = append(out, fn)
	}
	return out
}
