// Package session holds the client's authentication state and decides whether
// protected views may render.
//
// # Overview
//
//  1. Store owns the Session record and applies the login/register/refresh/
//     logout state machine: Anonymous -> Authenticated on login or register,
//     Authenticated -> Authenticated on refresh (token fields replaced),
//     -> Anonymous on logout, refresh failure, or explicit Clear.
//  2. Evaluate (and the Store.Gate convenience) is the session gate: it maps a
//     Session and a clock reading to a Decision. The gate only decides; the
//     shell performs the actual "go to login" effect.
//
// # Transitions
//
// Every transition is applied atomically under the store's mutex: a reader
// never observes a half-cleared or half-populated session. Failed logins and
// registrations leave the session untouched; any failed refresh wipes it
// entirely. Logout always succeeds locally even when the server cannot be
// notified.
//
// Concurrent operations of different kinds are not coordinated beyond that
// atomicity: if two calls race, the transition of whichever completes last
// wins. In particular, simultaneous refreshes are not deduplicated.
//
// # Errors
//
// Operation failures carry the exact text the shell shows in its general
// error banner: the server's own message when it sent one, or one of the
// Msg* fallbacks. Match the no-refresh-token fast path with
// errors.Is(err, ErrNoRefreshToken).
package session
