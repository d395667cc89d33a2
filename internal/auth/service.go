package auth

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrPhoneRegistered    = errors.New("phone number already registered")
	ErrPhoneNotRegistered = errors.New("phone number not registered")
	ErrNotVerified        = errors.New("phone number not verified")
	ErrInvalidOTP         = errors.New("invalid OTP")
	ErrInvalidCredentials = errors.New("invalid phone number or password")
	ErrSamePassword       = errors.New("new password cannot be the same as the current password")
)

type Service struct {
	repo   Repository
	sender Sender
	tokens *TokenManager
	hasher Hasher
}

func NewService(repo Repository, sender Sender, tokens *TokenManager, hasher Hasher) *Service {
	return &Service{repo: repo, sender: sender, tokens: tokens, hasher: hasher}
}

// --------------------------------------------------
// OTP flow
// --------------------------------------------------

// SendOTP registers a fresh unverified account and texts it a code.
func (s *Service) SendOTP(ctx context.Context, phoneNumber string) error {
	if _, err := s.repo.ByPhone(ctx, phoneNumber); err == nil {
		return ErrPhoneRegistered
	}

	code := generateOTP()
	if _, err := s.sender.Send(ctx, phoneNumber, otpMessage(code)); err != nil {
		return fmt.Errorf("send otp: %w", err)
	}

	return s.repo.Create(ctx, &Customer{
		PhoneNumber: phoneNumber,
		Name:        "NA",
		Password:    "NA",
		Verified:    false,
		OTP:         code,
	})
}

func (s *Service) ResendOTP(ctx context.Context, phoneNumber string) error {
	customer, err := s.repo.ByPhone(ctx, phoneNumber)
	if err != nil {
		return ErrPhoneNotRegistered
	}

	code := generateOTP()
	if _, err := s.sender.Send(ctx, phoneNumber, otpMessage(code)); err != nil {
		return fmt.Errorf("send otp: %w", err)
	}

	customer.OTP = code
	return s.repo.Update(ctx, customer)
}

func (s *Service) VerifyOTP(ctx context.Context, phoneNumber, code string) error {
	customer, err := s.repo.ByPhone(ctx, phoneNumber)
	if err != nil || customer.OTP == "" || customer.OTP != code {
		return ErrInvalidOTP
	}

	customer.Verified = true
	customer.OTP = ""
	return s.repo.Update(ctx, customer)
}

// --------------------------------------------------
// Signup / Signin
// --------------------------------------------------

// Signup completes a verified account created by the OTP flow.
func (s *Service) Signup(ctx context.Context, phoneNumber, name, password, email string) error {
	customer, err := s.repo.ByPhone(ctx, phoneNumber)
	if err != nil {
		return ErrPhoneNotRegistered
	}
	if !customer.Verified {
		return ErrNotVerified
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		return err
	}

	customer.Name = name
	customer.Password = hashed
	customer.Email = email
	customer.Verified = true
	return s.repo.Update(ctx, customer)
}

// Signin checks credentials and issues a bearer token bound to the phone number.
func (s *Service) Signin(ctx context.Context, phoneNumber, password string) (string, error) {
	customer, err := s.repo.ByPhone(ctx, phoneNumber)
	if err != nil {
		return "", ErrPhoneNotRegistered
	}
	if !customer.Verified {
		return "", ErrNotVerified
	}
	if !s.hasher.Verify(password, customer.Password) {
		return "", ErrInvalidCredentials
	}

	return s.tokens.Generate(customer.PhoneNumber)
}

// TokenForEmail backs the social sign-ins: the provider proved the email,
// we only map it to an existing account.
func (s *Service) TokenForEmail(ctx context.Context, email string) (string, error) {
	customer, err := s.repo.ByEmail(ctx, email)
	if err != nil {
		return "", ErrNotFound
	}
	return s.tokens.Generate(customer.PhoneNumber)
}

// TokenForAppleID maps an Apple identifier stored as the account name.
func (s *Service) TokenForAppleID(ctx context.Context, appleID string) (string, error) {
	customer, err := s.repo.ByName(ctx, appleID)
	if err != nil {
		return "", ErrNotFound
	}
	return s.tokens.Generate(customer.PhoneNumber)
}

// --------------------------------------------------
// Password change
// --------------------------------------------------

func (s *Service) RequestPasswordChange(ctx context.Context, phoneNumber string) error {
	return s.ResendOTP(ctx, phoneNumber)
}

func (s *Service) ChangePassword(ctx context.Context, phoneNumber, newPassword string) error {
	customer, err := s.repo.ByPhone(ctx, phoneNumber)
	if err != nil {
		return ErrPhoneNotRegistered
	}

	if s.hasher.Verify(newPassword, customer.Password) {
		return ErrSamePassword
	}

	hashed, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}

	customer.Password = hashed
	return s.repo.Update(ctx, customer)
}

// Exists reports whether a phone number belongs to a known account.
func (s *Service) Exists(ctx context.Context, phoneNumber string) (bool, error) {
	_, err := s.repo.ByPhone(ctx, phoneNumber)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
