package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionCookie is the cookie carrying the admin session token.
const SessionCookie = "kiosk_session"

const sessionTTL = 24 * time.Hour

// GenerateSessionToken issues the admin session token.
func GenerateSessionToken(secret string) (string, error) {
	if secret == "" {
		return "", errors.New("empty session secret")
	}

	claims := jwt.MapClaims{
		"role": "admin",
		"exp":  time.Now().Add(sessionTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateSessionToken checks a session token and returns the role claim.
func ValidateSessionToken(secret, tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid session token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}

	role, _ := claims["role"].(string)
	if role != "admin" {
		return "", errors.New("not an admin session")
	}

	return role, nil
}
