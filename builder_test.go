package authcore

import "testing"

func TestBuildRequiresRedis(t *testing.T) {
	_, err := New().
		WithConfig(testConfig()).
		WithUserStore(newMockUserStore()).
		Build()
	if err == nil {
		t.Fatal("expected Build to fail without a redis client")
	}
}

func TestBuildRequiresUserStore(t *testing.T) {
	_, rdb := newTestRedis(t)

	_, err := New().
		WithConfig(testConfig()).
		WithRedis(rdb).
		Build()
	if err == nil {
		t.Fatal("expected Build to fail without a user store")
	}
}

func TestBuildRequiresSecret(t *testing.T) {
	_, rdb := newTestRedis(t)

	_, err := New().
		WithRedis(rdb).
		WithUserStore(newMockUserStore()).
		Build()
	if err == nil {
		t.Fatal("expected Build to fail without a token secret")
	}
}

func TestBuilderIsSingleUse(t *testing.T) {
	_, rdb := newTestRedis(t)

	builder := New().
		WithConfig(testConfig()).
		WithRedis(rdb).
		WithUserStore(newMockUserStore())

	engine, err := builder.Build()
	if err != nil {
		t.Fatalf("first Build failed: %v", err)
	}
	t.Cleanup(engine.Close)

	if _, err := builder.Build(); err == nil {
		t.Fatal("expected second Build on the same builder to fail")
	}
}
