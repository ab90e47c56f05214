package authcore

import (
	"context"
	"errors"
	"fmt"

	"github.com/aabv21/authcore/internal/rate"
	"github.com/aabv21/authcore/password"
	"github.com/aabv21/authcore/session"
)

// Login authenticates the email/password pair and returns a signed identity
// token backed by a fresh session record.
//
// Failure kinds: empty input is KindBadRequest, an unknown email is
// KindNotFound, a wrong password is KindUnauthorized, and a throttled
// attempt is KindRateLimited. The message distinguishes unknown email from
// wrong password; the kinds already do, mirroring the upstream system.
//
// Login either returns a usable token with a durably written session record
// or fails with no session side effect. The session write unconditionally
// overwrites any prior record for the identity, so a second login from
// another device invalidates the first device's future authorization checks
// even though its token stays cryptographically valid until expiry.
func (e *Engine) Login(ctx context.Context, email, rawPassword string) (string, error) {
	if e == nil || e.users == nil || e.tokens == nil || e.sessions == nil {
		return "", ErrEngineNotReady
	}

	ip := clientIPFromContext(ctx)

	if email == "" || rawPassword == "" {
		return "", badRequest("Email and password are required")
	}

	if e.limiter != nil {
		if err := e.limiter.CheckLogin(ctx, email, ip); err != nil {
			if !errors.Is(err, rate.ErrRateLimited) {
				// Throttle backend failure is an outage, not a denial.
				e.metricInc(MetricLoginFailure)
				e.emitAudit(ctx, auditEventLoginFailure, false, "", auditErrUnavailable, nil)
				return "", unavailable("login throttle check failed", err)
			}
			e.metricInc(MetricLoginRateLimited)
			e.emitAudit(ctx, auditEventLoginRateLimited, false, "", auditErrRateLimited, func() map[string]string {
				return map[string]string{"identifier": email}
			})
			return "", ErrLoginRateLimited
		}
	}

	user, err := e.users.FindByEmail(ctx, email, IncludeEmail|IncludePasswordHash)
	if err != nil {
		e.metricInc(MetricLoginFailure)
		e.emitAudit(ctx, auditEventLoginFailure, false, "", auditErrUnavailable, nil)
		return "", unavailable("user lookup failed", err)
	}
	if user == nil {
		e.failLoginAttempt(ctx, email, ip, "", auditErrUserNotFound)
		return "", notFound("User not found")
	}

	ok, err := password.Verify(rawPassword, user.PasswordHash)
	if err != nil {
		// A malformed stored hash is a contract violation with the user
		// store, not a credential mismatch. Surface it loudly.
		e.metricInc(MetricLoginFailure)
		e.emitAudit(ctx, auditEventLoginFailure, false, user.ID, auditErrInternal, nil)
		return "", fmt.Errorf("verify stored credential for user %s: %w", user.ID, err)
	}
	if !ok {
		e.failLoginAttempt(ctx, email, ip, user.ID, auditErrInvalidCredentials)
		return "", unauthorized("Invalid password")
	}

	token, err := e.tokens.Issue(user.ID)
	if err != nil {
		e.metricInc(MetricLoginFailure)
		e.emitAudit(ctx, auditEventLoginFailure, false, user.ID, auditErrInternal, nil)
		return "", fmt.Errorf("issue token for user %s: %w", user.ID, err)
	}

	record := &session.Record{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Token:  token,
	}
	if err := e.sessions.Save(ctx, record, e.sessionTTL()); err != nil {
		// The issued token is discarded: without a session record it would
		// fail every subsequent authorization check.
		e.metricInc(MetricLoginFailure)
		e.emitAudit(ctx, auditEventLoginFailure, false, user.ID, auditErrSessionCreation, nil)
		return "", &Error{
			Kind:    KindUnavailable,
			Message: ErrSessionCreationFailed.Message,
			cause:   err,
		}
	}

	if e.limiter != nil {
		// Best effort; a stale counter only shortens the remaining budget.
		_ = e.limiter.ResetLogin(ctx, email, ip)
	}

	e.metricInc(MetricLoginSuccess)
	e.metricInc(MetricSessionCreated)
	e.emitAudit(ctx, auditEventLoginSuccess, true, user.ID, "", nil)

	return token, nil
}

func (e *Engine) failLoginAttempt(ctx context.Context, email, ip, userID string, code auditErrorCode) {
	if e.limiter != nil {
		_ = e.limiter.IncrementLogin(ctx, email, ip)
	}
	e.metricInc(MetricLoginFailure)
	e.emitAudit(ctx, auditEventLoginFailure, false, userID, code, func() map[string]string {
		return map[string]string{"identifier": email}
	})
}
