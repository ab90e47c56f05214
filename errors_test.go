package authcore

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestKindStatusMapping(t *testing.T) {
	cases := []struct {
		kind Kind
		want int
	}{
		{KindBadRequest, http.StatusBadRequest},
		{KindNotFound, http.StatusNotFound},
		{KindUnauthorized, http.StatusUnauthorized},
		{KindForbidden, http.StatusForbidden},
		{KindRateLimited, http.StatusTooManyRequests},
		{KindUnavailable, http.StatusServiceUnavailable},
	}
	for _, tc := range cases {
		if got := tc.kind.HTTPStatus(); got != tc.want {
			t.Fatalf("%v: got %d want %d", tc.kind, got, tc.want)
		}
	}
}

func TestErrorsMatchByKind(t *testing.T) {
	err := unauthorized("Invalid session token")

	if !errors.Is(err, ErrUnauthorized) {
		t.Fatal("an unauthorized error must match the sentinel regardless of message")
	}
	if errors.Is(err, ErrNotFound) {
		t.Fatal("kinds must not cross-match")
	}
}

func TestErrorsMatchThroughWrapping(t *testing.T) {
	err := fmt.Errorf("handling request: %w", notFound("User not found"))

	if !errors.Is(err, ErrNotFound) {
		t.Fatal("expected kind match through fmt.Errorf wrapping")
	}
	if got := StatusOf(err); got != http.StatusNotFound {
		t.Fatalf("expected 404 through wrapping, got %d", got)
	}
}

func TestErrorPreservesCause(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := unavailable("session lookup failed", cause)

	if !errors.Is(err, cause) {
		t.Fatal("expected the infrastructure cause to stay in the chain")
	}
	if !errors.Is(err, ErrStoreUnavailable) {
		t.Fatal("expected the unavailable kind to match")
	}
}

func TestStatusOf(t *testing.T) {
	if got := StatusOf(nil); got != http.StatusOK {
		t.Fatalf("nil: got %d", got)
	}
	if got := StatusOf(errors.New("boom")); got != http.StatusInternalServerError {
		t.Fatalf("untyped: got %d", got)
	}
	if got := StatusOf(ErrLoginRateLimited); got != http.StatusTooManyRequests {
		t.Fatalf("rate limited: got %d", got)
	}
}
