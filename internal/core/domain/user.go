package domain

// User represents a registered account in the domain. The email address is
// the unique identifier; there is no separate surrogate key exposed outside
// the storage layer.
type User struct {
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	DOB          string `json:"dob"`
	Address      string `json:"address"`

	// RefreshToken is the single currently valid refresh token for this
	// account, or empty when the user is logged out. Issuing a new pair
	// overwrites it, which retires the previous token.
	RefreshToken string `json:"-"`
}
