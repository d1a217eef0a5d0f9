package auth

import (
	"errors"
	"strings"

	"github.com/xyz-asif/charityhub/internal/pkg/validator"
)

// ValidateRegister trims fields in place and checks them
func ValidateRegister(req *RegisterRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = NormalizeEmail(req.Email)
	req.Role = strings.ToLower(strings.TrimSpace(req.Role))

	if req.Name == "" || req.Email == "" || req.Password == "" {
		return errors.New("Name, email and password are required")
	}
	if len(req.Name) > 100 {
		return errors.New("name cannot exceed 100 characters")
	}
	if !validator.IsValidEmail(req.Email) {
		return errors.New("Please provide a valid email address")
	}
	return nil
}

// ValidateLogin normalizes the email. The password is compared as given.
func ValidateLogin(req *LoginRequest) error {
	req.Email = NormalizeEmail(req.Email)
	if req.Email == "" || req.Password == "" {
		return errors.New("Email and password are required")
	}
	return nil
}
