package auth

import "github.com/golang-jwt/jwt/v5"

// Claims is the subset of JWT claims the API relies on
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}

// GetUserID returns the subject claim
func (c *Claims) GetUserID() string {
	return c.Subject
}

// JWTVerifier validates bearer tokens for the auth middleware.
type JWTVerifier interface {
	// VerifyToken validates a JWT and returns its claims. Any failure
	// (bad signature, expired, wrong algorithm, missing subject) yields
	// domain.ErrUnauthorized.
	VerifyToken(tokenString string) (*Claims, error)

	// Close releases resources held by the verifier
	Close() error
}
