package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

var ErrInvalidRecoveryToken = errors.New("invalid recovery token")

// SignRecoveryToken issues the break-glass credential returned once from PIN
// setup. The token is bound to the settings row, so it dies with a reset.
func SignRecoveryToken(secret string, settingsID uuid.UUID) (string, error) {
	if secret == "" {
		return "", errors.New("recovery token secret is not configured")
	}

	claims := jwt.MapClaims{
		"purpose":     "pin_reset",
		"settings_id": settingsID.String(),
		"iat":         time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseRecoveryToken verifies a recovery token and returns the settings id it
// was issued for.
func ParseRecoveryToken(secret, tokenString string) (uuid.UUID, error) {
	if secret == "" {
		return uuid.Nil, ErrInvalidRecoveryToken
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, ErrInvalidRecoveryToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["purpose"] != "pin_reset" {
		return uuid.Nil, ErrInvalidRecoveryToken
	}

	raw, ok := claims["settings_id"].(string)
	if !ok {
		return uuid.Nil, ErrInvalidRecoveryToken
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, ErrInvalidRecoveryToken
	}
	return id, nil
}
