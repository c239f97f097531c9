package handlers

import (
	"net/http"
	"testing"
	"time"

	"newsportal/internal/domain"
	"newsportal/internal/domain/models"
	"newsportal/internal/services"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type credLookup func(userName string) (models.Credential, error)

func (f credLookup) CredentialByUserName(userName string) (models.Credential, error) {
	return f(userName)
}

func authRoutes(h AuthHandler) func(*gin.Engine) {
	return func(r *gin.Engine) {
		r.POST("/login", h.Login)
		r.POST("/generateOTP", h.GenerateOTP)
		r.POST("/validateOTP", h.ValidateOTP)
		r.POST("/resetPassword", h.ResetPassword)
	}
}

func TestLoginRequiresBothFields(t *testing.T) {
	h := AuthHandler{}

	for _, body := range []map[string]any{
		{"userName": "ann"},
		{"password": "pw"},
		{},
	} {
		w, env := performJSON(t, http.MethodPost, "/login", body, authRoutes(h))
		if w.Code != http.StatusBadRequest || env.Code != 400 {
			t.Fatalf("body %v: expected 400, got http=%d code=%d", body, w.Code, env.Code)
		}
		if env.Message != "Invalid request. Username or password is missing." {
			t.Fatalf("unexpected message %q", env.Message)
		}
	}
}

func TestLoginFailureBodiesAreIdentical(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("right-pw"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash setup: %v", err)
	}

	stores := []credLookup{
		func(string) (models.Credential, error) {
			return models.Credential{}, domain.NotFoundError{Resource: "user"}
		},
		func(u string) (models.Credential, error) {
			return models.Credential{UserName: u, PasswordHash: "not-the-hash", IsActive: true}, nil
		},
		func(u string) (models.Credential, error) {
			return models.Credential{UserName: u, PasswordHash: string(hash), IsActive: false}, nil
		},
	}

	var bodies []string
	for i, store := range stores {
		h := AuthHandler{Auth: services.AuthService{Users: store, Secret: []byte("s")}}
		w, env := performJSON(t, http.MethodPost, "/login",
			map[string]any{"userName": "ann", "password": "right-pw"}, authRoutes(h))
		if w.Code != http.StatusUnauthorized || env.Code != 401 {
			t.Fatalf("case %d: expected 401 envelope, got http=%d code=%d", i, w.Code, env.Code)
		}
		bodies = append(bodies, w.Body.String())
	}
	for _, b := range bodies[1:] {
		if b != bodies[0] {
			t.Fatalf("failure responses differ:\n%s\n%s", bodies[0], b)
		}
	}
}

func TestLoginSuccessCarriesToken(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("right-pw"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash setup: %v", err)
	}
	h := AuthHandler{Auth: services.AuthService{
		Users: credLookup(func(u string) (models.Credential, error) {
			return models.Credential{UserName: u, PasswordHash: string(hash), Role: 1, IsActive: true}, nil
		}),
		Secret: []byte("s"),
		Now:    func() time.Time { return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC) },
	}}

	w, env := performJSON(t, http.MethodPost, "/login",
		map[string]any{"userName": "ann", "password": "right-pw"}, authRoutes(h))
	if w.Code != http.StatusOK || env.Code != 100 {
		t.Fatalf("expected success, got http=%d code=%d body=%s", w.Code, env.Code, w.Body.String())
	}
	if env.Data == nil {
		t.Fatalf("login success must carry the result payload")
	}
}

// resetStoreStub satisfies services.ResetCodeStore for handler-level tests.
type resetStoreStub struct {
	consume func(email, code string, now time.Time) (bool, error)
}

func (s resetStoreStub) DeactivateActive(string) error          { return nil }
func (s resetStoreStub) Insert(string, string, time.Time) error { return nil }
func (s resetStoreStub) ClearVerified(string) error             { return nil }

func (s resetStoreStub) VerifiedSince(string, time.Time) (bool, error) {
	return false, nil
}

func (s resetStoreStub) Consume(email, code string, now time.Time) (bool, error) {
	if s.consume == nil {
		panic("unexpected Consume call")
	}
	return s.consume(email, code, now)
}

func TestGenerateOTPReturnsCode(t *testing.T) {
	h := AuthHandler{Reset: services.ResetService{Codes: resetStoreStub{}}}

	w, env := performJSON(t, http.MethodPost, "/generateOTP",
		map[string]any{"email": "a@b.com"}, authRoutes(h))
	if w.Code != http.StatusOK || env.Code != 100 {
		t.Fatalf("expected success, got http=%d code=%d body=%s", w.Code, env.Code, w.Body.String())
	}
	if env.Data == nil {
		t.Fatalf("generate must return the code payload")
	}
}

func TestGenerateOTPBadEmail(t *testing.T) {
	h := AuthHandler{Reset: services.ResetService{Codes: resetStoreStub{}}}

	w, env := performJSON(t, http.MethodPost, "/generateOTP",
		map[string]any{"email": "not-an-email"}, authRoutes(h))
	if w.Code != http.StatusBadRequest || env.Code != 400 {
		t.Fatalf("expected 400, got http=%d code=%d", w.Code, env.Code)
	}
}

func TestValidateOTPInvalidCodeIsUnauthorized(t *testing.T) {
	h := AuthHandler{Reset: services.ResetService{Codes: resetStoreStub{
		consume: func(string, string, time.Time) (bool, error) { return false, nil },
	}}}

	w, env := performJSON(t, http.MethodPost, "/validateOTP",
		map[string]any{"email": "a@b.com", "otp": "123456"}, authRoutes(h))
	if w.Code != http.StatusUnauthorized || env.Code != 401 {
		t.Fatalf("expected 401, got http=%d code=%d", w.Code, env.Code)
	}
}

func TestResetPasswordWithoutValidation(t *testing.T) {
	h := AuthHandler{Reset: services.ResetService{Codes: resetStoreStub{}}}

	w, env := performJSON(t, http.MethodPost, "/resetPassword",
		map[string]any{"email": "a@b.com", "newPassword": "pw2"}, authRoutes(h))
	if w.Code != http.StatusUnauthorized || env.Code != 401 {
		t.Fatalf("unvalidated reset must be 401, got http=%d code=%d", w.Code, env.Code)
	}
}
