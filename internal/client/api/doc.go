// Package api contains the HTTP client for the storedash backend auth API.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface) covering the
//     four auth operations: Login, Register, Logout, Refresh.
//  2. A concrete JSON-over-HTTP implementation (see HTTPClient) that sets the
//     Content-Type and Authorization headers, tags every request with an
//     X-Request-Id, treats 204 as a bodyless success, and surfaces non-2xx
//     responses as *APIError carrying the server's message verbatim.
//
// # Error Handling
//
// Transport failures (DNS, refused connection, timeout) are exposed as the
// sentinel ErrUnavailable, matchable with errors.Is. Server rejections are
// *APIError values, matchable with errors.As; APIError.Message may be empty
// when the response body carried no message.
//
// All operations accept context.Context and honor cancellation/timeouts.
package api
