package authcore

import (
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/aabv21/authcore/internal/rate"
	"github.com/aabv21/authcore/jwt"
	"github.com/aabv21/authcore/session"
)

// Builder assembles an [Engine]. A Builder is single-use: Build returns an
// error on reuse.
type Builder struct {
	config Config
	redis  redis.UniversalClient

	userStore UserStore
	auditSink AuditSink

	built bool
}

// New returns a Builder initialized with [DefaultConfig].
func New() *Builder {
	return &Builder{
		config: defaultConfig(),
	}
}

// WithConfig replaces the builder configuration.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cloneConfig(cfg)
	return b
}

// WithRedis sets the cache client backing the session store and, when
// enabled, the login throttle.
func (b *Builder) WithRedis(client redis.UniversalClient) *Builder {
	b.redis = client
	return b
}

// WithUserStore sets the external user-record lookup.
func (b *Builder) WithUserStore(store UserStore) *Builder {
	b.userStore = store
	return b
}

// WithAuditSink sets the destination for audit events. Setting a sink does
// not enable auditing; Config.Audit.Enabled does.
func (b *Builder) WithAuditSink(sink AuditSink) *Builder {
	b.auditSink = sink
	return b
}

// WithMetricsEnabled toggles the in-process counters.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// Build validates the configuration and wires the Engine. Missing Redis
// client, user store, or token secret are fatal here so that no per-request
// path ever observes a half-configured engine.
func (b *Builder) Build() (*Engine, error) {
	if b.built {
		return nil, errors.New("builder already used")
	}

	cfg := cloneConfig(b.config)

	if b.redis == nil {
		return nil, errors.New("redis client required")
	}
	if b.userStore == nil {
		return nil, errors.New("user store required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	tokens, err := jwt.NewManager(jwt.Config{
		Secret: cloneBytes(cfg.Token.Secret),
		TTL:    cfg.Token.TTL,
		Issuer: cfg.Token.Issuer,
		Leeway: cfg.Token.Leeway,
	})
	if err != nil {
		return nil, err
	}

	engine := &Engine{
		config:   cfg,
		tokens:   tokens,
		sessions: session.NewStore(b.redis, cfg.Session.KeyPrefix),
		users:    b.userStore,
		audit:    newAuditDispatcher(cfg.Audit, b.auditSink),
		metrics:  newMetrics(cfg.Metrics),
	}

	if cfg.Security.EnableLoginThrottle {
		engine.limiter = rate.New(b.redis, rate.Config{
			EnableIPThrottle: cfg.Security.EnableIPThrottle,
			MaxLoginAttempts: cfg.Security.MaxLoginAttempts,
			LoginCooldown:    cfg.Security.LoginCooldown,
		})
	}

	b.built = true

	return engine, nil
}
