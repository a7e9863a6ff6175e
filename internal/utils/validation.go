package utils

import (
	"errors"
	"time"
)

// ErrInvalidDOB indicates a dob string that is not a real calendar date in
// strict YYYY-MM-DD form.
var ErrInvalidDOB = errors.New("dob is not a real date in format YYYY-MM-DD")

// ErrFutureDOB indicates a syntactically valid dob that lies after today.
var ErrFutureDOB = errors.New("dob is in the future")

// ValidateDOB checks a date-of-birth string. time.Parse with the fixed layout
// rejects both malformed strings and impossible dates such as February 31st.
// The boundary is inclusive: today's date is accepted, tomorrow's is not.
func ValidateDOB(dob string) error {
	d, err := time.Parse("2006-01-02", dob)
	if err != nil {
		return ErrInvalidDOB
	}
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if d.After(today) {
		return ErrFutureDOB
	}
	return nil
}
