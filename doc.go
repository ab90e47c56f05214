// Package authcore provides credential verification, JWT identity tokens,
// and Redis-backed session records with a request-time authorization guard.
//
// The package is designed for concurrent server workloads: Engine methods are
// safe to call from multiple goroutines after initialization through
// [Builder.Build]. All shared mutable state lives in the external stores
// (the caller's user-record store and Redis), so no in-process locking is
// performed on the request path.
//
// # Architecture boundaries
//
// authcore is the public surface. It exposes [Engine], [Builder], [Config],
// the [UserStore] integration contract, and value types ([Identity],
// [AuditEvent], [MetricsSnapshot]). Credential hashing, token signing, and
// session persistence live in the password, jwt, and session sub-packages;
// Redis-backed login throttling lives under internal/ and is never exported.
//
// # Session model
//
// Each identity holds at most one live session record, keyed by its user id.
// A successful login overwrites any prior record, so the previously issued
// token fails the guard's session cross-check even though its signature
// remains valid until expiry. Logout deletes the record; token revocation is
// achieved only through that cross-check.
//
// # What this package must NOT do
//
//   - Expose Redis clients or session encoding details in its public API.
//   - Retry failed store calls; every failure is a terminal, typed result
//     for the current request.
//   - Log or emit tokens, passwords, or password hashes through the audit
//     stream.
package authcore
