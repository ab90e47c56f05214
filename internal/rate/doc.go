// Package rate provides Redis-backed fixed-window login throttling.
//
// # Window semantics
//
// Fixed-window counters: INCR + conditional EXPIRE on first hit. Key
// prefixes:
//   - al:  — login attempts per email
//   - ali: — login attempts per client IP
//
// Counters live in the shared cache rather than process memory so the
// budget holds across instances.
//
// # What this package must NOT do
//
//   - Decide which operations are throttled (the engine does).
//   - Be imported outside the authcore module.
package rate
