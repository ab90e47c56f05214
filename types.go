package authcore

import "context"

// Projection selects which sensitive fields a [UserStore] lookup must
// include. The zero value excludes both the password hash and the email,
// mirroring a store whose default query projection hides credentials.
type Projection uint8

const (
	// IncludeEmail opts in to the stored email address.
	IncludeEmail Projection = 1 << iota
	// IncludePasswordHash opts in to the stored password hash. Only the
	// login path requests it; the hash never leaves the Engine.
	IncludePasswordHash
)

// Has reports whether the projection includes the given field selector.
func (p Projection) Has(field Projection) bool {
	return p&field != 0
}

// UserRecord is the credential record returned by [UserStore]. PasswordHash
// is the `salt:derivedKey` value produced by the password package and is
// populated only when the lookup requested [IncludePasswordHash].
type UserRecord struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
}

// UserStore is the contract callers implement to connect authcore to their
// user-record store. Lookups return (nil, nil) when no record matches; an
// error indicates the store itself failed and is surfaced to the caller as
// an infrastructure failure, never as a credential failure.
type UserStore interface {
	FindByEmail(ctx context.Context, email string, proj Projection) (*UserRecord, error)
	FindByID(ctx context.Context, id string, proj Projection) (*UserRecord, error)
}

// Identity is the resolved caller identity returned by [Engine.Authorize].
// It merges the session record's cached display fields with the freshly
// fetched user record and is the only identity information downstream
// handlers may trust for ownership decisions.
type Identity struct {
	ID    string
	Name  string
	Email string
}
