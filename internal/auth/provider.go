package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"clientctl/pkg/logging"
)

const (
	authSubsystem = "Auth"

	// RefreshBuffer is how long before expiry the access token is renewed.
	RefreshBuffer = 30 * time.Second

	subscriberBufferSize = 16
)

// TokenClient is the provider-facing subset of Client.
type TokenClient interface {
	SignInWithPassword(ctx context.Context, email, password string) (*Session, error)
	Refresh(ctx context.Context, refreshToken string) (*Session, error)
	SignOut(ctx context.Context, accessToken string) error
}

// Provider owns the current session.
type Provider struct {
	client TokenClient
	store  Store
	now    func() time.Time

	mu      sync.RWMutex
	session *Session

	subMu       sync.Mutex
	subscribers []chan Event
	closed      bool
}

// NewProvider creates a provider. store may be nil, in which case sessions
// live only as long as the process.
func NewProvider(client TokenClient, store Store) *Provider {
	if store == nil {
		store = NewMemoryStore(nil)
	}
	return &Provider{
		client: client,
		store:  store,
		now:    time.Now,
	}
}

// Subscribe returns a channel receiving every subsequent Event. The channel
// is closed by Close.
func (p *Provider) Subscribe() <-chan Event {
	ch := make(chan Event, subscriberBufferSize)

	p.subMu.Lock()
	defer p.subMu.Unlock()
	if p.closed {
		close(ch)
		return ch
	}
	p.subscribers = append(p.subscribers, ch)
	return ch
}

// Close closes all subscriber channels.
func (p *Provider) Close() {
	p.subMu.Lock()
	defer p.subMu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	for _, ch := range p.subscribers {
		close(ch)
	}
	p.subscribers = nil
}

// Session returns a copy of the current session, or nil when signed out.
func (p *Provider) Session() *Session {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.session == nil {
		return nil
	}
	cp := *p.session
	return &cp
}

// Restore loads the stored session, refreshing it when it is about to
// expire, and always emits INITIAL_SESSION. A stored session that can no
// longer be refreshed is discarded and the event carries nil.
func (p *Provider) Restore(ctx context.Context) (*Session, error) {
	stored, err := p.store.Load()
	if err != nil {
		p.emit(Event{Type: EventInitialSession})
		return nil, err
	}
	if stored == nil {
		logging.Debug(authSubsystem, "No stored session")
		p.emit(Event{Type: EventInitialSession})
		return nil, nil
	}

	restored := stored
	if stored.AccessToken == "" || stored.ExpiresWithin(p.now(), RefreshBuffer) {
		restored, err = p.client.Refresh(ctx, stored.RefreshToken)
		if err != nil {
			if IsInvalidGrant(err) {
				if clearErr := p.store.Clear(); clearErr != nil {
					logging.Warn(authSubsystem, "Failed to clear stale session: %v", clearErr)
				}
			}
			p.emit(Event{Type: EventInitialSession})
			return nil, fmt.Errorf("failed to restore session: %w", err)
		}
		p.persist(restored)
	}

	p.mu.Lock()
	p.session = restored
	p.mu.Unlock()

	logging.Info(authSubsystem, "Restored session for %s", restored.User.Email)
	p.emit(Event{Type: EventInitialSession, Session: p.Session()})
	return p.Session(), nil
}

// SignIn authenticates with email and password and emits SIGNED_IN.
func (p *Provider) SignIn(ctx context.Context, email, password string) (*Session, error) {
	s, err := p.client.SignInWithPassword(ctx, email, password)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	p.session = s
	p.mu.Unlock()

	p.persist(s)
	logging.Info(authSubsystem, "Signed in as %s", s.User.Email)
	p.emit(Event{Type: EventSignedIn, Session: p.Session()})
	return p.Session(), nil
}

// SignOut ends the session locally and emits SIGNED_OUT. A failure to revoke
// the session server side is logged, not returned: the local session is gone
// either way.
func (p *Provider) SignOut(ctx context.Context) error {
	p.mu.Lock()
	s := p.session
	p.session = nil
	p.mu.Unlock()

	if s != nil && s.AccessToken != "" {
		if err := p.client.SignOut(ctx, s.AccessToken); err != nil {
			logging.Warn(authSubsystem, "Server-side sign out failed: %v", err)
		}
	}

	err := p.store.Clear()
	logging.Info(authSubsystem, "Signed out")
	p.emit(Event{Type: EventSignedOut})
	return err
}

// AccessToken returns a valid access token, refreshing it when it expires
// within RefreshBuffer. A rejected refresh signs the user out.
func (p *Provider) AccessToken(ctx context.Context) (string, error) {
	p.mu.RLock()
	s := p.session
	if s == nil {
		p.mu.RUnlock()
		return "", ErrNoSession
	}
	if !s.ExpiresWithin(p.now(), RefreshBuffer) {
		token := s.AccessToken
		p.mu.RUnlock()
		return token, nil
	}
	p.mu.RUnlock()

	p.mu.Lock()
	// Another goroutine may have refreshed or signed out meanwhile.
	if p.session == nil {
		p.mu.Unlock()
		return "", ErrNoSession
	}
	if !p.session.ExpiresWithin(p.now(), RefreshBuffer) {
		token := p.session.AccessToken
		p.mu.Unlock()
		return token, nil
	}
	if p.session.RefreshToken == "" {
		p.mu.Unlock()
		return "", ErrNoRefreshToken
	}

	refreshed, err := p.client.Refresh(ctx, p.session.RefreshToken)
	if err != nil {
		p.mu.Unlock()
		if IsInvalidGrant(err) {
			logging.Warn(authSubsystem, "Refresh token rejected, signing out")
			_ = p.SignOut(ctx)
		}
		return "", fmt.Errorf("failed to refresh token: %w", err)
	}
	p.session = refreshed
	p.mu.Unlock()

	p.persist(refreshed)
	logging.Debug(authSubsystem, "Access token refreshed, expires %s", refreshed.ExpiresAt.Format(time.RFC3339))
	p.emit(Event{Type: EventTokenRefreshed, Session: p.Session()})
	return refreshed.AccessToken, nil
}

func (p *Provider) persist(s *Session) {
	if err := p.store.Save(s); err != nil {
		logging.Warn(authSubsystem, "Failed to persist session: %v", err)
	}
}

// emit never blocks; a subscriber that stops draining loses events.
func (p *Provider) emit(ev Event) {
	p.subMu.Lock()
	defer p.subMu.Unlock()
	for _, ch := range p.subscribers {
		select {
		case ch <- ev:
		default:
			logging.Warn(authSubsystem, "Dropped %s event for a slow subscriber", ev.Type)
		}
	}
}
