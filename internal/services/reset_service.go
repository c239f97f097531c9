package services

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
	"strings"
	"time"

	"newsportal/internal/domain"
	"newsportal/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

// ResetCodeStore is the reset-code slice of storage. All checks it performs
// are single atomic statements; the service adds no locking on top.
type ResetCodeStore interface {
	DeactivateActive(email string) error
	Insert(email, code string, expiresAt time.Time) error
	Consume(email, code string, now time.Time) (bool, error)
	VerifiedSince(email string, cutoff time.Time) (bool, error)
	ClearVerified(email string) error
}

// PasswordStore writes the new credential hash.
type PasswordStore interface {
	ResetPassword(email, passwordHash string) (bool, error)
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ResetService drives the password-reset flow: issue a one-time code,
// validate it exactly once, then allow the reset inside a short window
// after validation.
type ResetService struct {
	Codes        ResetCodeStore
	Users        PasswordStore
	CodeTTL      time.Duration
	VerifyWindow time.Duration
	RequestID    string
	Now          func() time.Time
}

// Generate issues a fresh six-digit code for the email, retiring any prior
// active code first so only one code is ever live. The caller is
// responsible for delivering the code.
func (s ResetService) Generate(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", domain.ValidationError{Field: "email", Msg: "is required"}
	}
	if !emailPattern.MatchString(email) {
		return "", domain.ValidationError{Field: "email", Msg: "is not a valid address"}
	}

	code, err := randomCode()
	if err != nil {
		return "", domain.InternalError{Msg: "failed to generate code", Err: err}
	}

	if err := s.Codes.DeactivateActive(email); err != nil {
		return "", err
	}
	if err := s.Codes.Insert(email, code, s.now().Add(s.codeTTL())); err != nil {
		return "", err
	}

	utils.LogEvent(s.RequestID, "reset", "generate", "email="+email)
	return code, nil
}

// Validate consumes the code. Wrong, already-used and expired codes are
// indistinguishable to the caller.
func (s ResetService) Validate(email, code string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	code = strings.TrimSpace(code)
	if email == "" || code == "" {
		return domain.ValidationError{Msg: "email and code are required"}
	}

	ok, err := s.Codes.Consume(email, code, s.now())
	if err != nil {
		return err
	}
	if !ok {
		return domain.AuthError{Msg: "invalid or expired code"}
	}

	utils.LogEvent(s.RequestID, "reset", "validate", "email="+email)
	return nil
}

// Reset writes the new password. It requires a code validated for the same
// email within the verification window; a client cannot skip straight to
// reset, and a successful reset spends the validation.
func (s ResetService) Reset(email, newPassword string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || newPassword == "" {
		return domain.ValidationError{Msg: "email and new password are required"}
	}

	verified, err := s.Codes.VerifiedSince(email, s.now().Add(-s.verifyWindow()))
	if err != nil {
		return err
	}
	if !verified {
		return domain.AuthError{Msg: "invalid or expired code"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return domain.InternalError{Msg: "failed to hash password", Err: err}
	}

	ok, err := s.Users.ResetPassword(email, string(hash))
	if err != nil {
		return err
	}
	if !ok {
		return domain.NotFoundError{Resource: "user"}
	}

	// The validation is spent; a second reset needs a fresh code.
	if err := s.Codes.ClearVerified(email); err != nil {
		return err
	}

	utils.LogEvent(s.RequestID, "reset", "reset", "email="+email)
	return nil
}

// randomCode draws a six-digit code from crypto/rand.
func randomCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

func (s ResetService) codeTTL() time.Duration {
	if s.CodeTTL > 0 {
		return s.CodeTTL
	}
	return 15 * time.Minute
}

func (s ResetService) verifyWindow() time.Duration {
	if s.VerifyWindow > 0 {
		return s.VerifyWindow
	}
	return 10 * time.Minute
}

func (s ResetService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
