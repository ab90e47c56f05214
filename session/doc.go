// Package session persists one session record per authenticated identity in
// Redis, keyed "<prefix>:<userID>" with a per-key TTL.
//
// The record is stored as a Redis hash (field mapping) and the store is a
// pure key-value facade: it never interprets session contents. Save writes
// the fields and the expiry in a single transactional pipeline, so a read
// immediately after Save observes both. Get reports a missing or expired
// session as (nil, nil), not as an error; only transport failures are
// errors, wrapped in [ErrRedisUnavailable]. Delete is idempotent.
//
// # What this package must NOT do
//
//   - Cache records in process memory; Redis is the sole owner.
//   - Validate tokens or interpret record fields.
//   - Import the root authcore package (no import cycles).
package session
