package models

import "time"

// ResetCode is one password-reset code row. At most one row per email is
// active at a time; consumption stamps VerifiedAt and clears IsActive in a
// single statement so concurrent validations cannot both succeed.
type ResetCode struct {
	ID         int64
	Email      string
	Code       string
	ExpiresAt  time.Time
	IsActive   bool
	VerifiedAt *time.Time
	CreatedAt  time.Time
}
