package oauth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"travelagent/utils"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

const (
	uberAuthURL  = "https://auth.uber.com/oauth/v2/authorize"
	uberTokenURL = "https://auth.uber.com/oauth/v2/token"
	stateTTL     = 10 * time.Minute
)

var ErrNotConfigured = errors.New("uber OAuth client not configured")

// TokenSlot holds the single Uber access token of this demo deployment.
// Pending login states are tracked alongside it so a callback is accepted
// only for a state this process issued.
type TokenSlot struct {
	mu     sync.Mutex
	token  *oauth2.Token
	states map[string]time.Time
}

func NewTokenSlot() *TokenSlot {
	return &TokenSlot{states: map[string]time.Time{}}
}

func (s *TokenSlot) issueState(now time.Time) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	for st, exp := range s.states {
		if now.After(exp) {
			delete(s.states, st)
		}
	}
	state := uuid.NewString()
	s.states[state] = now.Add(stateTTL)
	return state
}

func (s *TokenSlot) consumeState(state string, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	exp, ok := s.states[state]
	delete(s.states, state)
	return ok && !now.After(exp)
}

func (s *TokenSlot) Store(tok *oauth2.Token) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = tok
}

func (s *TokenSlot) Token() *oauth2.Token {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// UberStatus is reported by GET /api/transport/uber/status.
type UberStatus struct {
	Configured bool       `json:"configured"`
	Connected  bool       `json:"connected"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
}

// UberAuth runs the authorization code flow against Uber.
type UberAuth struct {
	config *oauth2.Config
	slot   *TokenSlot
	now    func() time.Time
}

func NewUberAuth(clientID, clientSecret, redirectURL string, slot *TokenSlot) *UberAuth {
	return &UberAuth{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{"profile", "request"},
			Endpoint: oauth2.Endpoint{
				AuthURL:  uberAuthURL,
				TokenURL: uberTokenURL,
			},
		},
		slot: slot,
		now:  time.Now,
	}
}

func (u *UberAuth) configured() bool {
	return u.config.ClientID != "" && u.config.ClientSecret != ""
}

// LoginURL returns the Uber consent page for a fresh state.
func (u *UberAuth) LoginURL() (string, error) {
	if !u.configured() {
		return "", ErrNotConfigured
	}
	state := u.slot.issueState(u.now())
	return u.config.AuthCodeURL(state, oauth2.AccessTypeOffline), nil
}

// Exchange trades the callback code for a token and stores it.
func (u *UberAuth) Exchange(ctx context.Context, state, code string) error {
	if !u.configured() {
		return ErrNotConfigured
	}
	if code == "" {
		return utils.NewValidationError("code", "Missing authorization code")
	}
	if !u.slot.consumeState(state, u.now()) {
		return utils.NewValidationError("state", "Unknown or expired OAuth state")
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	tok, err := u.config.Exchange(ctx, code)
	if err != nil {
		return utils.NewGatewayError("Uber", fmt.Errorf("token exchange: %w", err))
	}
	u.slot.Store(tok)
	return nil
}

func (u *UberAuth) Status() UberStatus {
	status := UberStatus{Configured: u.configured()}
	if tok := u.slot.Token(); tok != nil && tok.Valid() {
		status.Connected = true
		if !tok.Expiry.IsZero() {
			exp := tok.Expiry
			status.ExpiresAt = &exp
		}
	}
	return status
}
