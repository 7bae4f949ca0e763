// Package session tracks whether the user is authenticated. The Machine is
// an observable store: it starts in a resolving state, settles into
// authenticated or anonymous, and notifies subscribers on every transition.
package session

import (
	"context"
	"sync"

	"github.com/jobmatch/webclient/api"
	"github.com/rs/zerolog/log"
)

// State is the machine's externally visible value. IsAuthenticated is true
// exactly when User is non-nil; IsLoading is true only while the initial
// token validation is in flight.
type State struct {
	User            *api.User
	IsAuthenticated bool
	IsLoading       bool
}

// Gateway is the slice of the API client the machine depends on.
type Gateway interface {
	Token() string
	SetToken(value string)
	CurrentUser(ctx context.Context) (*api.User, error)
	Logout(ctx context.Context) error
}

// Machine resolves and tracks the authenticated identity for the lifetime of
// the process. Construct one with New and inject it where needed.
type Machine struct {
	mu      sync.Mutex
	state   State
	subs    map[int]func(State)
	nextSub int
	gateway Gateway
}

// New creates a Machine in the resolving state.
func New(gateway Gateway) *Machine {
	return &Machine{
		state:   State{IsLoading: true},
		subs:    make(map[int]func(State)),
		gateway: gateway,
	}
}

// State returns a snapshot of the current state.
func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// User returns the current identity, or nil when anonymous.
func (m *Machine) User() *api.User {
	return m.State().User
}

// IsAuthenticated reports whether an identity is present.
func (m *Machine) IsAuthenticated() bool {
	return m.State().IsAuthenticated
}

// Subscribe registers fn for state changes and invokes it immediately with
// the current state. The returned function unsubscribes.
func (m *Machine) Subscribe(fn func(State)) (unsubscribe func()) {
	m.mu.Lock()
	id := m.nextSub
	m.nextSub++
	m.subs[id] = fn
	current := m.state
	m.mu.Unlock()

	fn(current)

	return func() {
		m.mu.Lock()
		delete(m.subs, id)
		m.mu.Unlock()
	}
}

// Initialize resolves the stored credential into a settled state. Without a
// token it goes straight to anonymous with no network call. With one, it asks
// the gateway for the identity; any failure counts as "token invalid", clears
// the credential, and settles anonymous. Calling it again re-resolves.
func (m *Machine) Initialize(ctx context.Context) {
	if m.gateway.Token() == "" {
		m.setState(State{})
		return
	}

	user, err := m.gateway.CurrentUser(ctx)
	if err != nil {
		log.Debug().Err(err).Msg("identity resolution failed, clearing token")
		m.gateway.SetToken("")
		m.setState(State{})
		return
	}

	m.setState(State{User: user, IsAuthenticated: true})
}

// SetUser transitions directly to the given identity (or to anonymous when
// nil). It does not touch the credential; the call that produced the identity
// already stored it.
func (m *Machine) SetUser(user *api.User) {
	m.setState(State{User: user, IsAuthenticated: user != nil})
}

// Logout transitions to anonymous and then lets the gateway clear the
// credential and notify the server. Subscribers observe the anonymous state
// before any network traffic happens, and the gateway clears locally before
// it notifies, so logout cannot be blocked by the server.
func (m *Machine) Logout(ctx context.Context) {
	m.setState(State{})
	if err := m.gateway.Logout(ctx); err != nil {
		log.Debug().Err(err).Msg("server logout notification failed")
	}
}

func (m *Machine) setState(next State) {
	m.mu.Lock()
	m.state = next
	fns := make([]func(State), 0, len(m.subs))
	for _, fn := range m.subs {
		fns = append(fns, fn)
	}
	m.mu.Unlock()

	for _, fn := range fns {
		fn(next)
	}
}
