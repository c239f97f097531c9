package repositories

import (
	"database/sql"
	"time"
)

// ResetCodeRepository owns the password_reset_codes table. Every mutation
// is a single statement so concurrent validations for the same email cannot
// both succeed; there is no in-process locking.
type ResetCodeRepository struct {
	DB *sql.DB
}

// DeactivateActive retires every active code for the email. Called before
// issuing a new one so at most one code is live per email.
func (r ResetCodeRepository) DeactivateActive(email string) error {
	_, err := r.DB.Exec(`
		UPDATE password_reset_codes SET is_active = 0
		WHERE email = ? AND is_active = 1`, email)
	return err
}

func (r ResetCodeRepository) Insert(email, code string, expiresAt time.Time) error {
	_, err := r.DB.Exec(`
		INSERT INTO password_reset_codes (email, code, expires_at, is_active, created_at)
		VALUES (?, ?, ?, 1, UTC_TIMESTAMP())`, email, code, expiresAt)
	return err
}

// Consume atomically deactivates a matching, live, unexpired code and
// stamps verified_at. Returns true only for the caller whose UPDATE landed;
// a second identical call sees zero rows.
func (r ResetCodeRepository) Consume(email, code string, now time.Time) (bool, error) {
	res, err := r.DB.Exec(`
		UPDATE password_reset_codes
		SET is_active = 0, verified_at = ?
		WHERE email = ? AND code = ? AND is_active = 1 AND expires_at > ?`,
		now, email, code, now)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// VerifiedSince reports whether a code for the email was consumed at or
// after cutoff. Gatekeeps password reset.
func (r ResetCodeRepository) VerifiedSince(email string, cutoff time.Time) (bool, error) {
	var count int
	err := r.DB.QueryRow(`
		SELECT COUNT(*) FROM password_reset_codes
		WHERE email = ? AND verified_at IS NOT NULL AND verified_at >= ?`,
		email, cutoff).Scan(&count)
	return count > 0, err
}

// ClearVerified drops the email's verification stamps once a reset has used
// them, so one validated code authorizes exactly one password change.
func (r ResetCodeRepository) ClearVerified(email string) error {
	_, err := r.DB.Exec(`
		UPDATE password_reset_codes SET verified_at = NULL
		WHERE email = ? AND verified_at IS NOT NULL`, email)
	return err
}

// PurgeExpired removes rows past retention. Rows are kept for a day after
// expiry so a just-verified code still backs an in-flight reset.
func (r ResetCodeRepository) PurgeExpired(now time.Time) (int64, error) {
	res, err := r.DB.Exec(`
		DELETE FROM password_reset_codes WHERE expires_at < ?`,
		now.Add(-24*time.Hour))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
