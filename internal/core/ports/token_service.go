package ports

// TokenClaims is the identity payload carried by a session token.
type TokenClaims struct {
	UserID string
	Role   string
}

// TokenService issues and verifies stateless, signed, time-limited session
// tokens. Verification is a pure computation; no store is consulted.
type TokenService interface {
	Issue(userID, role string) (string, error)
	Verify(token string) (*TokenClaims, error)
}
