package session

// Record is the cache-resident proof of an active login. Token holds the
// exact token string issued at login; the authorization guard compares it
// byte-for-byte against presented tokens, which is what makes overwriting
// or deleting the record an effective revocation.
type Record struct {
	UserID string
	Name   string
	Email  string
	Token  string
}

// Redis hash field names.
const (
	fieldID    = "id"
	fieldName  = "name"
	fieldEmail = "email"
	fieldToken = "token"
)
