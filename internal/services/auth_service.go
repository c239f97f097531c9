package services

import (
	"strings"
	"time"

	"newsportal/internal/domain"
	"newsportal/internal/domain/models"
	"newsportal/internal/utils"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// CredentialStore is the slice of the user repository the auth service needs.
type CredentialStore interface {
	CredentialByUserName(userName string) (models.Credential, error)
}

// AuthService validates logins and issues stateless session tokens.
type AuthService struct {
	Users     CredentialStore
	Secret    []byte
	TokenTTL  time.Duration
	RequestID string
	Now       func() time.Time
}

// LoginResult is the login success payload.
type LoginResult struct {
	IsAuthenticated bool   `json:"isAuthenticated"`
	Token           string `json:"token"`
	Role            int    `json:"role"`
	UserName        string `json:"userName"`
}

// Login checks the credential and issues a token. Every failure cause
// (unknown user, wrong password, inactive account) collapses into the same
// AuthError so callers cannot probe which check failed.
func (s AuthService) Login(userName, password string) (LoginResult, error) {
	userName = strings.TrimSpace(userName)
	if userName == "" || password == "" {
		return LoginResult{}, domain.ValidationError{Msg: "user name and password are required"}
	}

	cred, err := s.Users.CredentialByUserName(userName)
	if err != nil {
		if domain.IsNotFound(err) {
			return LoginResult{}, domain.AuthError{Msg: "invalid user name or password"}
		}
		return LoginResult{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)); err != nil {
		return LoginResult{}, domain.AuthError{Msg: "invalid user name or password"}
	}
	if !cred.IsActive {
		return LoginResult{}, domain.AuthError{Msg: "invalid user name or password"}
	}

	token, err := s.issueToken(cred)
	if err != nil {
		return LoginResult{}, domain.InternalError{Msg: "failed to issue token", Err: err}
	}

	utils.LogEvent(s.RequestID, "auth", "login", "user="+cred.UserName)
	return LoginResult{
		IsAuthenticated: true,
		Token:           token,
		Role:            cred.Role,
		UserName:        cred.UserName,
	}, nil
}

func (s AuthService) issueToken(cred models.Credential) (string, error) {
	now := s.now()
	ttl := s.TokenTTL
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  cred.UserName,
		"role": cred.Role,
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	})
	return token.SignedString(s.Secret)
}

func (s AuthService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
