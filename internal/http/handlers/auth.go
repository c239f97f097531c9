package handlers

import (
	"newsportal/internal/domain"
	"newsportal/internal/http/middleware"
	"newsportal/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	Auth  services.AuthService
	Reset services.ResetService
}

type loginRequest struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
}

// POST /login
func (h AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.UserName == "" || req.Password == "" {
		RespondStatus(c, domain.StatusBadRequest, "Invalid request. Username or password is missing.")
		return
	}

	svc := h.Auth
	svc.RequestID = middleware.GetRequestID(c)

	result, err := svc.Login(req.UserName, req.Password)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondData(c, result)
}

type generateOTPRequest struct {
	Email string `json:"email"`
}

// POST /generateOTP
func (h AuthHandler) GenerateOTP(c *gin.Context) {
	var req generateOTPRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.Email == "" {
		RespondStatus(c, domain.StatusBadRequest, "Email is required.")
		return
	}

	svc := h.Reset
	svc.RequestID = middleware.GetRequestID(c)

	code, err := svc.Generate(req.Email)
	if err != nil {
		RespondError(c, err)
		return
	}
	// Delivery belongs to the mail pipeline; this API only produces the code.
	RespondData(c, gin.H{
		"otp":     code,
		"message": "OTP sent successfully to your email!",
	})
}

type validateOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

// POST /validateOTP
func (h AuthHandler) ValidateOTP(c *gin.Context) {
	var req validateOTPRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.Email == "" || req.OTP == "" {
		RespondStatus(c, domain.StatusBadRequest, "Email and OTP are required.")
		return
	}

	svc := h.Reset
	svc.RequestID = middleware.GetRequestID(c)

	if err := svc.Validate(req.Email, req.OTP); err != nil {
		RespondError(c, err)
		return
	}
	RespondStatus(c, domain.StatusSuccess, "OTP validated successfully.")
}

type resetPasswordRequest struct {
	Email       string `json:"email"`
	NewPassword string `json:"newPassword"`
}

// POST /resetPassword
func (h AuthHandler) ResetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.Email == "" || req.NewPassword == "" {
		RespondStatus(c, domain.StatusBadRequest, "Email and New Password are required.")
		return
	}

	svc := h.Reset
	svc.RequestID = middleware.GetRequestID(c)

	if err := svc.Reset(req.Email, req.NewPassword); err != nil {
		RespondError(c, err)
		return
	}
	RespondStatus(c, domain.StatusSuccess, "Password reset successfully.")
}
