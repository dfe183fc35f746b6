package api

import "context"

// Auth endpoint paths, relative to the configured API base URL.
const (
	EndpointLogin    = "/auth/login"
	EndpointRegister = "/auth/register"
	EndpointLogout   = "/auth/logout"
	EndpointRefresh  = "/auth/refresh"
)

// User is the server's user record as returned by login and register.
type User struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// TokenPair carries a fresh access/refresh token pair and the access token
// lifetime in seconds, as reported by the server.
type TokenPair struct {
	AccessToken  string `json:"token"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int64  `json:"expiresIn"`
}

// AuthResult is the success shape shared by login and register.
type AuthResult struct {
	User User `json:"user"`
	TokenPair
}

// LoginRequest is the login payload. Remember is accepted by the server but
// optional.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Remember bool   `json:"remember,omitempty"`
}

// RegisterRequest is the registration payload. The password confirmation is a
// client-only check and intentionally has no place here.
type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// Client defines the auth operations the session store needs.
type Client interface {
	Login(ctx context.Context, req LoginRequest) (*AuthResult, error)
	Register(ctx context.Context, req RegisterRequest) (*AuthResult, error)
	Logout(ctx context.Context, accessToken string) error
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
}
