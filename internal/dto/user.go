package dto

import "github.com/cinescope/cinescope_backend/internal/core/domain"

// UpdateProfilePayload is the raw body of PUT /user/:email/profile. Fields are
// declared as any so the handler can tell a missing field (nil) apart from a
// field of the wrong type, which produce different error messages.
type UpdateProfilePayload struct {
	FirstName any `json:"firstName"`
	LastName  any `json:"lastName"`
	DOB       any `json:"dob"`
	Address   any `json:"address"`
}

// UpdateProfileRequest is the validated form of UpdateProfilePayload.
type UpdateProfileRequest struct {
	FirstName string
	LastName  string
	DOB       string
	Address   string
}

// PartialProfileResponse is the profile view served to anonymous readers and
// to authenticated readers other than the owner.
type PartialProfileResponse struct {
	Email     string  `json:"email"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
}

// FullProfileResponse is the owner's view, which additionally exposes dob and
// address. The extra fields are present even when null.
type FullProfileResponse struct {
	Email     string  `json:"email"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	DOB       *string `json:"dob"`
	Address   *string `json:"address"`
}

// ToPartialProfileResponse converts a domain user to the restricted view.
func ToPartialProfileResponse(u *domain.User) PartialProfileResponse {
	return PartialProfileResponse{
		Email:     u.Email,
		FirstName: nullable(u.FirstName),
		LastName:  nullable(u.LastName),
	}
}

// ToFullProfileResponse converts a domain user to the owner's view.
func ToFullProfileResponse(u *domain.User) FullProfileResponse {
	return FullProfileResponse{
		Email:     u.Email,
		FirstName: nullable(u.FirstName),
		LastName:  nullable(u.LastName),
		DOB:       nullable(u.DOB),
		Address:   nullable(u.Address),
	}
}

// nullable renders an unset profile field as JSON null rather than "".
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
