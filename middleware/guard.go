package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/aabv21/authcore"
)

type identityContextKey struct{}

// IdentityFromContext returns the identity resolved by [Guard] for this
// request. Handlers must use it — never client-supplied ids — for ownership
// decisions.
func IdentityFromContext(ctx context.Context) (*authcore.Identity, bool) {
	identity, ok := ctx.Value(identityContextKey{}).(*authcore.Identity)
	return identity, ok
}

// Guard returns middleware that authorizes every request through the engine
// before the wrapped handler runs.
func Guard(engine *authcore.Engine) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if engine == nil {
				writeError(w, authcore.ErrUnauthorized)
				return
			}

			token, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				writeError(w, authcore.NewError(
					authcore.KindUnauthorized,
					"No token provided. Authorization denied",
				))
				return
			}

			ctx := authcore.WithClientIP(r.Context(), clientIP(r))

			identity, err := engine.Authorize(ctx, token)
			if err != nil {
				writeError(w, err)
				return
			}

			ctx = context.WithValue(ctx, identityContextKey{}, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(value string) (string, bool) {
	const bearer = "Bearer "
	if !strings.HasPrefix(value, bearer) {
		return "", false
	}

	token := value[len(bearer):]
	if token == "" {
		return "", false
	}

	return token, true
}

func clientIP(r *http.Request) string {
	host := r.RemoteAddr
	if i := strings.LastIndexByte(host, ':'); i >= 0 {
		host = host[:i]
	}
	return strings.Trim(host, "[]")
}

func writeError(w http.ResponseWriter, err error) {
	status := authcore.StatusOf(err)

	message := http.StatusText(status)
	var apiErr *authcore.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		message = apiErr.Message
	}

	http.Error(w, message, status)
}
