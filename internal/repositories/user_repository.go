package repositories

import (
	"database/sql"
	"errors"

	intdb "newsportal/internal/db"
	"newsportal/internal/domain"
	"newsportal/internal/domain/models"
)

// UserRepository covers accounts: credentials, profiles, listings and the
// admin flag.
type UserRepository struct {
	DB *sql.DB
}

// CredentialByUserName loads the login record including the password hash.
// The comparison happens in the auth service, never in SQL.
func (r UserRepository) CredentialByUserName(userName string) (models.Credential, error) {
	var c models.Credential
	err := r.DB.QueryRow(`
		SELECT user_id, user_name, password_hash, role, is_active
		FROM users
		WHERE user_name = ?`, userName).
		Scan(&c.UserID, &c.UserName, &c.PasswordHash, &c.Role, &c.IsActive)
	if errors.Is(err, sql.ErrNoRows) {
		return c, domain.NotFoundError{Resource: "user", Err: err}
	}
	return c, err
}

func (r UserRepository) Details(userName string) (models.UserDetails, error) {
	var u models.UserDetails
	err := r.DB.QueryRow(`
		SELECT user_id, role, name, user_name, email, COALESCE(phone_number,''),
			COALESCE(profile_picture,''), is_admin, created_date
		FROM users
		WHERE user_name = ?`, userName).
		Scan(&u.UserID, &u.Role, &u.Name, &u.UserName, &u.EmailID,
			&u.PhoneNumber, &u.ProfilePicture, &u.IsAdmin, &u.CreatedDate)
	if errors.Is(err, sql.ErrNoRows) {
		return u, domain.NotFoundError{Resource: "user", Err: err}
	}
	return u, err
}

// UpdateDetails edits a profile. passwordHash and picturePath are optional;
// blank keeps the stored value.
func (r UserRepository) UpdateDetails(u models.UserUpdate, passwordHash, picturePath string) (bool, error) {
	res, err := r.DB.Exec(`
		UPDATE users
		SET name = ?, email = ?, phone_number = ?,
			password_hash = COALESCE(?, password_hash),
			profile_picture = COALESCE(?, profile_picture)
		WHERE user_id = ? AND user_name = ?`,
		u.Name, u.EmailID, u.PhoneNumber,
		intdb.NullIfEmpty(passwordHash), intdb.NullIfEmpty(picturePath),
		u.UserID, u.UserName)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// Register creates an account. Duplicate user name or email is storage
// enforced and surfaced as a ConflictError.
func (r UserRepository) Register(in models.Registration, passwordHash, picturePath string) error {
	var exists int
	err := r.DB.QueryRow(`
		SELECT COUNT(*) FROM users WHERE user_name = ? OR email = ?`,
		in.UserName, in.Email).Scan(&exists)
	if err != nil {
		return err
	}
	if exists > 0 {
		return domain.ConflictError{Resource: "user", Msg: "user name or email already registered"}
	}

	_, err = r.DB.Exec(`
		INSERT INTO users
			(name, user_name, email, password_hash, department_id, phone_number,
			 profile_picture, role, is_admin, is_active, created_date)
		VALUES (?, ?, ?, ?, ?, ?, ?, 0, 0, 1, NOW())`,
		in.Name, in.UserName, in.Email, passwordHash, in.DepartmentID,
		in.PhoneNumber, picturePath)
	return err
}

// RecentUsers returns the five newest accounts, each row carrying the total
// account count.
func (r UserRepository) RecentUsers() ([]models.RecentUser, error) {
	rows, err := r.DB.Query(`
		SELECT user_id, name, COALESCE(profile_picture,''), created_date,
			(SELECT COUNT(*) FROM users) AS total_users
		FROM users
		ORDER BY created_date DESC, user_id DESC
		LIMIT 5`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.RecentUser{}
	for rows.Next() {
		var u models.RecentUser
		if err := rows.Scan(&u.UserID, &u.Name, &u.ProfilePicture, &u.CreatedDate, &u.TotalUsers); err != nil {
			return nil, err
		}
		items = append(items, u)
	}
	return items, rows.Err()
}

// Page returns one page of user records for the admin listing.
func (r UserRepository) Page(pageNumber, pageSize int) ([]models.UserDetails, error) {
	rows, err := r.DB.Query(`
		SELECT user_id, role, name, user_name, email, COALESCE(phone_number,''),
			COALESCE(profile_picture,''), is_admin, created_date
		FROM users
		ORDER BY created_date DESC, user_id DESC
		LIMIT ? OFFSET ?`, pageSize, (pageNumber-1)*pageSize)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.UserDetails{}
	for rows.Next() {
		var u models.UserDetails
		if err := rows.Scan(&u.UserID, &u.Role, &u.Name, &u.UserName, &u.EmailID,
			&u.PhoneNumber, &u.ProfilePicture, &u.IsAdmin, &u.CreatedDate); err != nil {
			return nil, err
		}
		items = append(items, u)
	}
	return items, rows.Err()
}

// SetAdminFlag flips is_admin. Returns false when no such user exists.
func (r UserRepository) SetAdminFlag(userID int64, isAdmin bool) (bool, error) {
	res, err := r.DB.Exec(`UPDATE users SET is_admin = ? WHERE user_id = ?`, isAdmin, userID)
	if err != nil {
		return false, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if n > 0 {
		return true, nil
	}

	// RowsAffected is 0 both for a missing user and for a no-op write of the
	// same value, so distinguish them.
	var exists int
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM users WHERE user_id = ?`, userID).Scan(&exists); err != nil {
		return false, err
	}
	return exists > 0, nil
}

// ResetPassword writes the new hash for the account with the given email.
// Returns false when no account matches.
func (r UserRepository) ResetPassword(email, passwordHash string) (bool, error) {
	res, err := r.DB.Exec(`UPDATE users SET password_hash = ? WHERE email = ?`, passwordHash, email)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
