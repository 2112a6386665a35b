package ports

// Identity is the verified claim a token carries: which user is calling.
type Identity struct {
	UserID string
	Email  string
}

// TokenIssuer mints signed, expiring tokens for an identity.
type TokenIssuer interface {
	Issue(identity Identity) (string, error)
}

// TokenVerifier validates a token string and returns the identity it
// carries. Verification is a pure function of the token, the shared secret
// and the clock; no storage is consulted.
type TokenVerifier interface {
	Verify(token string) (Identity, error)
}
