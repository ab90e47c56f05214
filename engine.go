package authcore

import (
	"context"
	"time"

	"github.com/aabv21/authcore/internal/rate"
	"github.com/aabv21/authcore/jwt"
	"github.com/aabv21/authcore/session"
)

// Engine orchestrates credential verification, token issuance, and session
// persistence. Instances are built once through [Builder.Build] and are safe
// for concurrent use; the Engine holds no mutable request state.
type Engine struct {
	config   Config
	tokens   *jwt.Manager
	sessions *session.Store
	users    UserStore
	limiter  *rate.Limiter
	audit    *auditDispatcher
	metrics  *Metrics
}

// Close drains the audit dispatcher. It does not close the Redis client,
// which is owned by the caller.
func (e *Engine) Close() {
	if e == nil {
		return
	}
	if e.audit != nil {
		e.audit.Close()
	}
}

// AuditDropped reports how many audit events were discarded because the
// dispatcher buffer was full.
func (e *Engine) AuditDropped() uint64 {
	if e == nil || e.audit == nil {
		return 0
	}
	return e.audit.Dropped()
}

// MetricsSnapshot returns a point-in-time copy of the engine counters.
func (e *Engine) MetricsSnapshot() MetricsSnapshot {
	if e == nil || e.metrics == nil {
		return MetricsSnapshot{Counters: map[MetricID]uint64{}}
	}
	return e.metrics.Snapshot()
}

func (e *Engine) metricInc(id MetricID) {
	if e == nil || e.metrics == nil {
		return
	}
	e.metrics.Inc(id)
}

// Logout deletes the session record for the identity. Deleting a session
// that does not exist is not an error. Logout does not revoke the token's
// cryptographic validity; revocation happens through the guard's session
// cross-check once the record is gone.
func (e *Engine) Logout(ctx context.Context, userID string) error {
	if e == nil || e.sessions == nil {
		return ErrEngineNotReady
	}
	if userID == "" {
		return badRequest("User id is required")
	}

	if err := e.sessions.Delete(ctx, userID); err != nil {
		e.emitAudit(ctx, auditEventLogout, false, userID, auditErrSessionInvalidation, nil)
		return &Error{
			Kind:    KindUnavailable,
			Message: ErrSessionInvalidationFailed.Message,
			cause:   err,
		}
	}

	e.metricInc(MetricLogout)
	e.metricInc(MetricSessionInvalidated)
	e.emitAudit(ctx, auditEventLogout, true, userID, "", nil)

	return nil
}

func (e *Engine) sessionTTL() time.Duration {
	if e.config.Session.TTL > 0 {
		return e.config.Session.TTL
	}
	return defaultSessionTTL
}
