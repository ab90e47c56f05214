package authcore

import (
	"context"
	"crypto/subtle"
)

// Authorize verifies a presented bearer token against the session record and
// the user store, and resolves the caller's identity for downstream use.
//
// The chain is: token signature and expiry, session existence, byte-for-byte
// token/session match, and a fresh user-record existence check (so deleted
// accounts with live sessions are rejected). Every failure in the chain is
// KindUnauthorized regardless of which step broke, to avoid leaking which
// part of the authentication chain failed. Infrastructure failures are the
// one exception: an unreachable store is KindUnavailable, never a denial.
//
// Authorize only reads; aborting a request mid-guard leaves no partial state.
func (e *Engine) Authorize(ctx context.Context, token string) (*Identity, error) {
	if e == nil || e.users == nil || e.tokens == nil || e.sessions == nil {
		return nil, ErrEngineNotReady
	}
	if token == "" {
		return nil, unauthorized("No token provided. Authorization denied")
	}

	claims, err := e.tokens.Parse(token)
	if err != nil {
		e.denyAuthorize(ctx, "", auditErrInvalidToken)
		return nil, unauthorized("Invalid token")
	}

	record, err := e.sessions.Get(ctx, claims.UID)
	if err != nil {
		return nil, unavailable("session lookup failed", err)
	}
	if record == nil {
		e.denyAuthorize(ctx, claims.UID, auditErrSessionNotFound)
		return nil, unauthorized("No active session")
	}

	if subtle.ConstantTimeCompare([]byte(record.Token), []byte(token)) != 1 {
		// Revocation point: a newer login or a logout replaced or removed
		// the stored token, so this one is no longer honored.
		e.denyAuthorize(ctx, claims.UID, auditErrSessionMismatch)
		return nil, unauthorized("Invalid session token")
	}

	user, err := e.users.FindByID(ctx, claims.UID, IncludeEmail)
	if err != nil {
		return nil, unavailable("user lookup failed", err)
	}
	if user == nil {
		e.denyAuthorize(ctx, claims.UID, auditErrUserNotFound)
		return nil, unauthorized("User not found")
	}

	name := user.Name
	if name == "" {
		name = record.Name
	}

	e.metricInc(MetricAuthorizeSuccess)

	return &Identity{
		ID:    claims.UID,
		Name:  name,
		Email: user.Email,
	}, nil
}

func (e *Engine) denyAuthorize(ctx context.Context, userID string, code auditErrorCode) {
	e.metricInc(MetricAuthorizeDenied)
	e.emitAudit(ctx, auditEventAuthorizeDenied, false, userID, code, nil)
}
