package apperrors

import "errors"

// Token verification failures form a closed set so that handlers can map each
// one to its user-visible message and status code exhaustively.

// ErrAuthHeaderMissing indicates that no "Authorization: Bearer <token>"
// header was supplied.
var ErrAuthHeaderMissing = errors.New("authorization header missing")

// ErrTokenMalformed indicates that a token failed to parse or verify against
// the signing secret.
var ErrTokenMalformed = errors.New("token malformed")

// ErrTokenExpired indicates that a structurally valid token is past its
// embedded expiry.
var ErrTokenExpired = errors.New("token expired")

// ErrRefreshClaimMissing indicates that a verified token carries no refresh
// expiry claim. This is an invalid-token condition, not an expiry one.
var ErrRefreshClaimMissing = errors.New("refresh expiry claim missing")

// ErrRefreshTokenRequired indicates that no refresh token string was supplied
// in the request body.
var ErrRefreshTokenRequired = errors.New("refresh token required")
