package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service  *Service
	facebook *FacebookClient
}

func NewHandler(service *Service, facebook *FacebookClient) *Handler {
	return &Handler{service: service, facebook: facebook}
}

type phoneRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required,len=10"`
}

type otpRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required,len=10"`
	OTP         string `json:"otp" binding:"required,len=6"`
}

type signupRequest struct {
	Name        string `json:"name" binding:"required,min=3,max=255"`
	Password    string `json:"password" binding:"required,min=6,max=255"`
	PhoneNumber string `json:"phone_number" binding:"required,len=10"`
	Email       string `json:"email" binding:"omitempty,max=255"`
}

type signinRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required,len=10"`
	Password    string `json:"password" binding:"required,min=6,max=255"`
}

type changePasswordRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required,len=10"`
	NewPassword string `json:"new_password" binding:"required,min=6,max=255"`
}

// --------------------------------------------------
// OTP
// --------------------------------------------------

func (h *Handler) SendOTP(c *gin.Context) {
	var req phoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.service.SendOTP(c.Request.Context(), req.PhoneNumber); err != nil {
		if errors.Is(err, ErrPhoneRegistered) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "OTP sent successfully"})
}

func (h *Handler) ResendOTP(c *gin.Context) {
	var req phoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.service.ResendOTP(c.Request.Context(), req.PhoneNumber); err != nil {
		if errors.Is(err, ErrPhoneNotRegistered) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "OTP sent successfully"})
}

func (h *Handler) VerifyOTP(c *gin.Context) {
	var req otpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.service.VerifyOTP(c.Request.Context(), req.PhoneNumber, req.OTP); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid OTP"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Phone number verified successfully"})
}

// --------------------------------------------------
// Signup / Signin
// --------------------------------------------------

func (h *Handler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	err := h.service.Signup(c.Request.Context(), req.PhoneNumber, req.Name, req.Password, req.Email)
	switch {
	case errors.Is(err, ErrPhoneNotRegistered):
		c.JSON(http.StatusBadRequest, gin.H{"error": "phone number not registered, send OTP first"})
	case errors.Is(err, ErrNotVerified):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Signup successful. You can now log in."})
	}
}

func (h *Handler) Signin(c *gin.Context) {
	var req signinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	token, err := h.service.Signin(c.Request.Context(), req.PhoneNumber, req.Password)
	switch {
	case errors.Is(err, ErrPhoneNotRegistered):
		c.JSON(http.StatusNotFound, gin.H{"error": "phone number not registered, please sign up"})
	case errors.Is(err, ErrNotVerified), errors.Is(err, ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"access_token": token, "token_type": "bearer"})
	}
}

// --------------------------------------------------
// Social sign-in
// --------------------------------------------------

func (h *Handler) GoogleSignin(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required"`
		Name  string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	token, err := h.service.TokenForEmail(c.Request.Context(), req.Email)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found, sign up with phone number first"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_token": token})
}

func (h *Handler) AppleSignin(c *gin.Context) {
	var req struct {
		AppleID  string `json:"apple_id" binding:"required"`
		Email    string `json:"email"`
		FullName string `json:"full_name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	token, err := h.service.TokenForAppleID(c.Request.Context(), req.AppleID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found, sign up with phone number first"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_token": token})
}

func (h *Handler) FacebookCallback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing code"})
		return
	}

	email, _, err := h.facebook.Exchange(c.Request.Context(), code)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.service.TokenForEmail(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found, sign up with phone number first"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_token": token})
}

// --------------------------------------------------
// Password change
// --------------------------------------------------

func (h *Handler) RequestPasswordChange(c *gin.Context) {
	var req phoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.service.RequestPasswordChange(c.Request.Context(), req.PhoneNumber); err != nil {
		if errors.Is(err, ErrPhoneNotRegistered) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "OTP sent successfully"})
}

func (h *Handler) ChangePassword(c *gin.Context) {
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	err := h.service.ChangePassword(c.Request.Context(), req.PhoneNumber, req.NewPassword)
	switch {
	case errors.Is(err, ErrPhoneNotRegistered), errors.Is(err, ErrSamePassword):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
	}
}
