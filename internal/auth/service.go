package auth

import (
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid password")

// Service checks the shared admin credential. When a bcrypt hash is
// configured it takes precedence over the plain-text password.
type Service struct {
	password     string
	passwordHash string
}

func NewService(password, passwordHash string) *Service {
	return &Service{password: password, passwordHash: passwordHash}
}

// Login verifies the submitted password.
func (s *Service) Login(password string) error {
	if s.passwordHash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
			return ErrInvalidCredentials
		}
		return nil
	}

	if subtle.ConstantTimeCompare([]byte(s.password), []byte(password)) != 1 {
		return ErrInvalidCredentials
	}
	return nil
}
