package internaldefs

import (
	"github.com/aabv21/authcore"
)

// CounterDef binds an engine counter to its exported metric name and help
// text. Instances are configured here and treated as immutable.
type CounterDef struct {
	ID   authcore.MetricID
	Name string
	Help string
}

// CounterDefs lists every engine counter in export order.
var CounterDefs = []CounterDef{
	{ID: authcore.MetricLoginSuccess, Name: "authcore_login_success_total", Help: "Successful login attempts."},
	{ID: authcore.MetricLoginFailure, Name: "authcore_login_failure_total", Help: "Failed login attempts."},
	{ID: authcore.MetricLoginRateLimited, Name: "authcore_login_rate_limited_total", Help: "Rate-limited login attempts."},
	{ID: authcore.MetricSessionCreated, Name: "authcore_session_created_total", Help: "Created sessions."},
	{ID: authcore.MetricSessionInvalidated, Name: "authcore_session_invalidated_total", Help: "Invalidated sessions."},
	{ID: authcore.MetricLogout, Name: "authcore_logout_total", Help: "Logout operations."},
	{ID: authcore.MetricAuthorizeSuccess, Name: "authcore_authorize_success_total", Help: "Authorization checks that resolved an identity."},
	{ID: authcore.MetricAuthorizeDenied, Name: "authcore_authorize_denied_total", Help: "Authorization checks rejected as unauthorized."},
}

// AuditDroppedName is the exported name of the audit backpressure counter.
const AuditDroppedName = "authcore_audit_dropped_total"

// AuditDroppedHelp describes the audit backpressure counter.
const AuditDroppedHelp = "Dropped audit events due to dispatcher backpressure."
