package authcore

import (
	"errors"
	"time"

	"github.com/aabv21/authcore/session"
)

// Config defines the engine configuration tree. Instances are cloned by
// [Builder.Build] and treated as immutable afterwards.
type Config struct {
	Token    TokenConfig
	Session  SessionConfig
	Security SecurityConfig
	Audit    AuditConfig
	Metrics  MetricsConfig
}

// TokenConfig controls identity token signing. Secret is process-wide
// configuration loaded once at startup; its absence is a fatal [Builder.Build]
// condition, not a per-request error.
type TokenConfig struct {
	Secret []byte
	TTL    time.Duration
	Issuer string
	Leeway time.Duration
}

// SessionConfig controls the Redis session record layout and lifetime.
type SessionConfig struct {
	KeyPrefix string
	TTL       time.Duration
}

// SecurityConfig controls login throttling. Counters live in Redis so the
// budget is shared across instances rather than per-process memory.
type SecurityConfig struct {
	EnableLoginThrottle bool
	EnableIPThrottle    bool
	MaxLoginAttempts    int
	LoginCooldown       time.Duration
}

// AuditConfig controls the asynchronous audit dispatcher.
type AuditConfig struct {
	Enabled    bool
	BufferSize int
	DropIfFull bool
}

// MetricsConfig controls the in-process metrics counters.
type MetricsConfig struct {
	Enabled bool
}

const (
	defaultTokenTTL   = 30 * 24 * time.Hour
	defaultSessionTTL = 30 * 24 * time.Hour

	maxLeeway = 2 * time.Minute
)

// DefaultConfig returns the starting configuration: 30-day token and session
// lifetimes, the session:users key prefix, throttling and audit disabled.
// Token.Secret must still be provided before Build.
func DefaultConfig() Config {
	return defaultConfig()
}

func defaultConfig() Config {
	return Config{
		Token: TokenConfig{
			TTL: defaultTokenTTL,
		},
		Session: SessionConfig{
			KeyPrefix: session.DefaultKeyPrefix,
			TTL:       defaultSessionTTL,
		},
		Security: SecurityConfig{
			EnableLoginThrottle: false,
			EnableIPThrottle:    false,
			MaxLoginAttempts:    10,
			LoginCooldown:       15 * time.Minute,
		},
		Audit: AuditConfig{
			Enabled:    false,
			BufferSize: 256,
			DropIfFull: true,
		},
		Metrics: MetricsConfig{
			Enabled: false,
		},
	}
}

// Validate checks the configuration for startup-fatal conditions.
func (c Config) Validate() error {
	if len(c.Token.Secret) == 0 {
		return errors.New("token signing secret is required")
	}
	if c.Token.TTL <= 0 {
		return errors.New("token TTL must be positive")
	}
	if c.Token.Leeway < 0 || c.Token.Leeway > maxLeeway {
		return errors.New("token leeway must be between 0 and 2 minutes")
	}
	if c.Session.TTL <= 0 {
		return errors.New("session TTL must be positive")
	}
	if c.Security.EnableLoginThrottle {
		if c.Security.MaxLoginAttempts <= 0 {
			return errors.New("login throttle requires a positive attempt budget")
		}
		if c.Security.LoginCooldown <= 0 {
			return errors.New("login throttle requires a positive cooldown")
		}
	}
	return nil
}

func cloneConfig(cfg Config) Config {
	out := cfg
	out.Token.Secret = cloneBytes(cfg.Token.Secret)
	return out
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
