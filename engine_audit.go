package authcore

import (
	"context"
	"time"
)

const (
	auditEventLoginSuccess     = "login_success"
	auditEventLoginFailure     = "login_failure"
	auditEventLoginRateLimited = "login_rate_limited"
	auditEventLogout           = "logout_session"
	auditEventAuthorizeDenied  = "authorize_denied"
)

type auditErrorCode string

const (
	auditErrInvalidCredentials  auditErrorCode = "invalid_credentials"
	auditErrUserNotFound        auditErrorCode = "user_not_found"
	auditErrRateLimited         auditErrorCode = "rate_limited"
	auditErrInvalidToken        auditErrorCode = "invalid_token"
	auditErrSessionNotFound     auditErrorCode = "session_not_found"
	auditErrSessionMismatch     auditErrorCode = "session_token_mismatch"
	auditErrSessionCreation     auditErrorCode = "session_creation_failed"
	auditErrSessionInvalidation auditErrorCode = "session_invalidation_failed"
	auditErrUnavailable         auditErrorCode = "backend_unavailable"
	auditErrInternal            auditErrorCode = "internal_error"
)

func (e *Engine) emitAudit(
	ctx context.Context,
	eventType string,
	success bool,
	userID string,
	code auditErrorCode,
	metadataBuilder func() map[string]string,
) {
	if e == nil || e.audit == nil {
		return
	}

	var metadata map[string]string
	if metadataBuilder != nil {
		metadata = metadataBuilder()
	}

	e.audit.Emit(ctx, AuditEvent{
		Timestamp: time.Now().UTC(),
		EventType: eventType,
		UserID:    userID,
		IP:        clientIPFromContext(ctx),
		Success:   success,
		Error:     string(code),
		Metadata:  metadata,
	})
}
