// Package middleware adapts the authcore guard to net/http.
//
// [Guard] wraps a handler, extracts the Bearer token from the Authorization
// header, runs [authcore.Engine.Authorize], and on success stores the
// resolved [authcore.Identity] in the request context for retrieval with
// [IdentityFromContext]. The response status comes from the error's own
// kind: guard failures are 401, infrastructure failures are 5xx.
package middleware
