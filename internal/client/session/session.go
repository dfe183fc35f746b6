package session

import "github.com/dmitrijs2005/storedash/internal/client/api"

// Session is the client-held record of authentication state.
//
// Invariants:
//   - IsAuthenticated implies AccessToken is non-empty.
//   - ExpiresAt, when non-zero, is issuance time plus the server-reported
//     lifetime, in epoch milliseconds. It is advisory only; the authoritative
//     expiry lives inside the access token's own claims.
//   - Clearing wipes every field at once, never a subset.
type Session struct {
	User            *api.User
	AccessToken     string
	RefreshToken    string
	IsAuthenticated bool
	ExpiresAt       int64
}

// Anonymous reports whether the session is in the anonymous state.
func (s Session) Anonymous() bool {
	return !s.IsAuthenticated && s.AccessToken == "" && s.RefreshToken == "" && s.User == nil
}
