package domain

// TokenClaims is the decoded payload of a bearer or refresh token. The expiry
// fields are absolute unix-seconds; exactly one of them is set depending on
// the token kind.
type TokenClaims struct {
	Email      string
	BearerExp  float64
	RefreshExp float64
}

// IssuedToken is one half of a token pair as returned to clients.
type IssuedToken struct {
	Token     string
	TokenType string
	ExpiresIn int
}

// TokenPair is the result of a successful login or refresh.
type TokenPair struct {
	Bearer  IssuedToken
	Refresh IssuedToken
}
