package models

import "database/sql"

// User is the storage representation of an account row. Profile fields and
// the refresh token column are nullable: a freshly registered user has only
// email and password hash, and a logged-out user has no refresh token.
type User struct {
	Email        string         `db:"email"`
	PasswordHash string         `db:"hash"`
	FirstName    sql.NullString `db:"first_name"`
	LastName     sql.NullString `db:"last_name"`
	DOB          sql.NullString `db:"dob"`
	Address      sql.NullString `db:"address"`
	RefreshToken sql.NullString `db:"refresh_token"`
}
