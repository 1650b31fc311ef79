package api

import (
	"context"
	"net/http"

	appErrors "github.com/unclebandit/campaign-dashboard/internal/errors"
	"github.com/unclebandit/campaign-dashboard/internal/model"
)

// AuthAPI covers /api/auth. Sign-in, sign-up and refresh run without a token.
type AuthAPI struct{ c *Client }

type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName,omitempty"`
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (a *AuthAPI) SignUp(ctx context.Context, req SignUpRequest) (*model.AuthResponse, error) {
	return a.authenticate(ctx, "/api/auth/signup", req)
}

func (a *AuthAPI) SignIn(ctx context.Context, req SignInRequest) (*model.AuthResponse, error) {
	return a.authenticate(ctx, "/api/auth/signin", req)
}

func (a *AuthAPI) authenticate(ctx context.Context, p string, body any) (*model.AuthResponse, error) {
	var out model.AuthResponse
	if err := a.c.do(ctx, request{method: http.MethodPost, path: p, body: body, skipAuth: true}, &out); err != nil {
		return nil, err
	}
	if out.Session != nil {
		if err := a.c.tokens.SetTokens(ctx, *out.Session); err != nil {
			return nil, err
		}
	}
	return &out, nil
}

// SignOut tells the backend and always clears the local session.
func (a *AuthAPI) SignOut(ctx context.Context) (err error) {
	defer func() {
		if clearErr := a.c.tokens.Clear(ctx); err == nil {
			err = clearErr
		}
	}()
	return a.c.do(ctx, request{method: http.MethodPost, path: "/api/auth/signout"}, nil)
}

// RefreshToken forces a refresh regardless of expiry.
func (a *AuthAPI) RefreshToken(ctx context.Context) (*model.AuthResponse, error) {
	refresh, err := a.c.tokens.RefreshToken(ctx)
	if err != nil {
		return nil, err
	}
	if refresh == "" {
		return nil, appErrors.ErrNoRefreshToken
	}
	return a.authenticate(ctx, refreshPath, map[string]string{"refreshToken": refresh})
}

func (a *AuthAPI) Me(ctx context.Context) (*model.User, error) {
	var out model.User
	if err := a.c.do(ctx, request{method: http.MethodGet, path: "/api/auth/me"}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *AuthAPI) Profile(ctx context.Context) (*model.Profile, error) {
	var out model.Profile
	if err := a.c.do(ctx, request{method: http.MethodGet, path: "/api/auth/profile"}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *AuthAPI) UpdateProfile(ctx context.Context, in model.ProfileUpdate) (*model.Profile, error) {
	var out model.Profile
	if err := a.c.do(ctx, request{method: http.MethodPut, path: "/api/auth/profile", body: in}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
