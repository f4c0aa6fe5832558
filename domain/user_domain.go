package domain

import (
	"errors"
	"regexp"
)

// PhonePattern is the strict international recipient format: a plus sign,
// a 1-3 digit country code, then exactly ten digits.
var PhonePattern = regexp.MustCompile(`^\+\d{1,3}\d{10}$`)

var (
	MessageSuccessRegister = "registration successful"
	MessageSuccessLogin    = "login successful"

	MessageFailedRegister = "failed to register user"
	MessageFailedLogin    = "failed to login"

	ErrUserNotFound           = errors.New("user not found")
	ErrPhoneAlreadyRegistered = errors.New("phone number already registered")
	ErrInvalidPhoneFormat     = errors.New("invalid phone format, example: +911234567890")
	ErrWeakPassword           = errors.New("password must be at least 6 characters and include 1 uppercase letter, 1 lowercase letter, 1 digit, and 1 special character")
	ErrIncorrectPassword      = errors.New("incorrect password")
)

type (
	RegisterRequest struct {
		Name     string `json:"name" validate:"required"`
		Phone    string `json:"phone" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	RegisterResponse struct {
		ID    uint   `json:"id"`
		Name  string `json:"name"`
		Phone string `json:"phone"`
	}

	LoginRequest struct {
		Phone    string `json:"phone" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		UserID uint   `json:"user_id"`
		Name   string `json:"name"`
		Token  string `json:"token"`
	}
)
