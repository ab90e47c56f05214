package authcore

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/aabv21/authcore/password"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis run failed: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = rdb.Close()
		mr.Close()
	})

	return mr, rdb
}

func testConfig() Config {
	cfg := defaultConfig()
	cfg.Token.Secret = []byte("test-secret")
	return cfg
}

func newTestEngine(t *testing.T, cfg Config, store UserStore) (*Engine, *miniredis.Miniredis) {
	t.Helper()

	mr, rdb := newTestRedis(t)

	engine, err := New().
		WithConfig(cfg).
		WithRedis(rdb).
		WithUserStore(store).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	t.Cleanup(engine.Close)

	return engine, mr
}

var errStoreDown = errors.New("user store down")

type mockUserStore struct {
	mu          sync.RWMutex
	byEmail     map[string]UserRecord
	byID        map[string]UserRecord
	failLookups bool
}

func newMockUserStore() *mockUserStore {
	return &mockUserStore{
		byEmail: map[string]UserRecord{},
		byID:    map[string]UserRecord{},
	}
}

func (s *mockUserStore) Put(record UserRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byEmail[record.Email] = record
	s.byID[record.ID] = record
}

func (s *mockUserStore) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	record, ok := s.byID[id]
	if !ok {
		return
	}
	delete(s.byID, id)
	delete(s.byEmail, record.Email)
}

func (s *mockUserStore) FindByEmail(_ context.Context, email string, proj Projection) (*UserRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.failLookups {
		return nil, errStoreDown
	}
	record, ok := s.byEmail[email]
	if !ok {
		return nil, nil
	}
	return applyProjection(record, proj), nil
}

func (s *mockUserStore) FindByID(_ context.Context, id string, proj Projection) (*UserRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.failLookups {
		return nil, errStoreDown
	}
	record, ok := s.byID[id]
	if !ok {
		return nil, nil
	}
	return applyProjection(record, proj), nil
}

// applyProjection strips fields the lookup did not opt in to, the way a
// real store's default query projection would.
func applyProjection(record UserRecord, proj Projection) *UserRecord {
	out := record
	if !proj.Has(IncludeEmail) {
		out.Email = ""
	}
	if !proj.Has(IncludePasswordHash) {
		out.PasswordHash = ""
	}
	return &out
}

func seedUser(t *testing.T, store *mockUserStore, name, email, rawPassword string) UserRecord {
	t.Helper()

	hash, err := password.Hash(rawPassword)
	if err != nil {
		t.Fatalf("seed hash failed: %v", err)
	}

	record := UserRecord{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}
	store.Put(record)

	return record
}
