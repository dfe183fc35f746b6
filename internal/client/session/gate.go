package session

import (
	"time"

	"github.com/dmitrijs2005/storedash/internal/client/token"
)

// Reason explains why the gate denied access.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonNotAuthenticated
	ReasonMalformedToken
	ReasonTokenExpired
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonNotAuthenticated:
		return "not authenticated"
	case ReasonMalformedToken:
		return "malformed token"
	case ReasonTokenExpired:
		return "token expired"
	default:
		return "unknown"
	}
}

// Decision is the gate's verdict. When Allow is false the shell is expected
// to perform the redirect-to-login effect; the gate itself never navigates.
type Decision struct {
	Allow  bool
	Reason Reason
}

// Evaluate runs the session gate:
//
//  1. Not authenticated, or no access token: deny, ReasonNotAuthenticated.
//  2. Token claims cannot be decoded: deny, ReasonMalformedToken.
//  3. Token expiry is in the past: deny, ReasonTokenExpired.
//  4. Otherwise: allow.
//
// A malformed token is deliberately indistinguishable from "not logged in"
// at the UI level; the Reason is for logging only. The gate does not attempt
// a refresh on a stale token, it simply denies.
func Evaluate(s Session, now time.Time) Decision {
	if !s.IsAuthenticated || s.AccessToken == "" {
		return Decision{Reason: ReasonNotAuthenticated}
	}

	claims, err := token.Decode(s.AccessToken)
	if err != nil {
		return Decision{Reason: ReasonMalformedToken}
	}

	if claims.ExpiredAt(now) {
		return Decision{Reason: ReasonTokenExpired}
	}

	return Decision{Allow: true, Reason: ReasonNone}
}

// Gate evaluates the gate against the store's current session.
func (s *Store) Gate(now time.Time) Decision {
	return Evaluate(s.Snapshot(), now)
}
