// Package jwt issues and verifies the compact, time-limited identity tokens
// carried by clients between login and subsequent requests.
//
// Tokens are HS256-signed and embed the user id plus registered expiry,
// issued-at, and optional issuer claims. The signing secret is process-wide
// configuration validated once in [NewManager]; a missing secret is a
// startup failure, never a per-request error.
//
// Parse collapses every verification failure — bad signature, malformed
// payload, expired token, wrong algorithm — into [ErrTokenInvalid] so
// callers cannot distinguish why a token was rejected.
package jwt
