package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/unclebandit/campaign-dashboard/internal/api"
	"github.com/unclebandit/campaign-dashboard/internal/form"
	"github.com/unclebandit/campaign-dashboard/internal/model"
	"github.com/unclebandit/campaign-dashboard/internal/session"
)

type AuthService struct {
	Auth      AuthAPI
	Tokens    *session.Manager
	Validator *form.Validator
	Logger    *slog.Logger
}

// Identity is the signed-in user and, when available, their profile.
type Identity struct {
	User    *model.User
	Profile *model.Profile
}

func (s *AuthService) SignIn(ctx context.Context, f form.Login) (*model.User, error) {
	if err := s.Validator.Validate(f); err != nil {
		return nil, err
	}
	resp, err := s.Auth.SignIn(ctx, api.SignInRequest{Email: strings.TrimSpace(f.Email), Password: f.Password})
	if err != nil {
		return nil, err
	}
	return resp.User, nil
}

func (s *AuthService) SignUp(ctx context.Context, f form.Signup) (*model.User, error) {
	if err := s.Validator.Validate(f); err != nil {
		return nil, err
	}
	resp, err := s.Auth.SignUp(ctx, api.SignUpRequest{
		Email:    strings.TrimSpace(f.Email),
		Password: f.Password,
		FullName: strings.TrimSpace(f.FullName),
	})
	if err != nil {
		return nil, err
	}
	return resp.User, nil
}

func (s *AuthService) SignOut(ctx context.Context) error {
	return s.Auth.SignOut(ctx)
}

// Current resolves the cached session to a user. It returns nil without error
// when nothing is cached. A failed lookup clears the cache so the visitor is
// sent back to sign in.
func (s *AuthService) Current(ctx context.Context) (*Identity, error) {
	if !s.Tokens.HasTokens(ctx) {
		return nil, nil
	}
	user, err := s.Auth.Me(ctx)
	if err != nil {
		if clearErr := s.Tokens.Clear(ctx); clearErr != nil {
			s.logger().Warn("Failed to clear session", "error", clearErr)
		}
		return nil, err
	}
	id := &Identity{User: user}
	if profile, err := s.Auth.Profile(ctx); err == nil {
		id.Profile = profile
	} else {
		s.logger().Debug("Profile unavailable", "error", err)
	}
	return id, nil
}

func (s *AuthService) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}
