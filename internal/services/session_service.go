package services

import (
	"context"

	"github.com/pkg/errors"

	"vitrine/internal/api"
	"vitrine/internal/domain"
)

// ErrSessionExpired marks a token the backend no longer accepts; the handler
// reacts by clearing the cookie, never by retrying.
var ErrSessionExpired = errors.New("sessão expirada")

// SessionService resolves "who is logged in" against the backend. It holds no
// state of its own: the token cookie is the only persisted credential.
type SessionService struct {
	API *api.Client
}

func NewSessionService(client *api.Client) *SessionService {
	return &SessionService{API: client}
}

// CurrentUser resolves the profile for a token. An empty token means
// unauthenticated (nil user, nil error).
func (s *SessionService) CurrentUser(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, nil
	}
	u, err := s.API.Profile(ctx, token)
	if err != nil {
		if api.IsUnauthorized(err) {
			return nil, ErrSessionExpired
		}
		return nil, err
	}
	return &u, nil
}

// Login exchanges credentials for a token and immediately resolves the
// profile, so the caller can route by role. On failure nothing changes.
func (s *SessionService) Login(ctx context.Context, email, password string) (string, domain.User, error) {
	tok, err := s.API.Login(ctx, email, password)
	if err != nil {
		return "", domain.User{}, err
	}
	u, err := s.API.Profile(ctx, tok.AccessToken)
	if err != nil {
		return "", domain.User{}, err
	}
	return tok.AccessToken, u, nil
}

// Register creates the account and then logs in with the same credentials
// (auto-login-after-register). Validation failures surface the backend's
// joined field-error message untouched.
func (s *SessionService) Register(ctx context.Context, payload api.RegisterPayload) (string, domain.User, error) {
	if _, err := s.API.Register(ctx, payload); err != nil {
		return "", domain.User{}, err
	}
	return s.Login(ctx, payload.Email, payload.Password)
}
