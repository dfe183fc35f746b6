// Package token decodes access-token claims on the client side.
//
// The client never verifies signatures (it has no key material); it only needs
// the expiry claim to decide whether a token is worth presenting to the
// server. Decoding is strict about shape: anything that is not a three-part
// JWT with a parseable claims segment is ErrMalformed.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrMalformed reports a token that could not be decoded at all: wrong
// segment count, bad base64, or claims that are not valid JSON.
var ErrMalformed = errors.New("malformed token")

// Claims is the subset of registered claims the client cares about.
type Claims struct {
	// ExpiresAt is the exp claim. Zero when the token carries no expiry.
	ExpiresAt time.Time

	// Subject is the sub claim, when present.
	Subject string
}

// parser is shared; ParseUnverified does not validate claims, so no
// per-call configuration is needed.
var parser = jwt.NewParser()

// Decode extracts claims from raw without verifying the signature.
// A failure to decode returns ErrMalformed; expiry is NOT checked here,
// callers compare Claims.ExpiresAt against their own clock.
func Decode(raw string) (Claims, error) {
	var rc jwt.RegisteredClaims

	if _, _, err := parser.ParseUnverified(raw, &rc); err != nil {
		return Claims{}, ErrMalformed
	}

	c := Claims{Subject: rc.Subject}
	if rc.ExpiresAt != nil {
		c.ExpiresAt = rc.ExpiresAt.Time
	}
	return c, nil
}

// ExpiredAt reports whether the claims are expired at the given instant.
// Claims without an expiry never expire.
func (c Claims) ExpiredAt(now time.Time) bool {
	if c.ExpiresAt.IsZero() {
		return false
	}
	return c.ExpiresAt.Unix() < now.Unix()
}
