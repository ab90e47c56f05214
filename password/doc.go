// Package password implements salted PBKDF2 credential hashing with
// constant-time verification.
//
// Stored values have the form "<hexSalt>:<hexDerivedKey>". The salt is 32
// random bytes generated per Hash call; the derived key is PBKDF2-SHA256
// over the raw password and salt. The iteration count, key length, and
// digest are fixed package constants: they must match between hash time and
// verify time, so they are deliberately not per-call configuration. Changing
// them invalidates every stored hash and requires a migration plan.
//
// All functions are pure and stateless; the salt is always an explicit
// value, never retained between calls.
//
// # What this package must NOT do
//
//   - Treat a malformed stored value as a non-match; parsing failures are
//     returned as errors.
//   - Perform I/O other than reading crypto/rand.
//   - Import any other package in this module.
package password
