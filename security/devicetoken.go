package security

import (
	"encoding/base64"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DeviceIdentity is the identity the agent authenticates with: the employee
// bound to the device plus the device itself.
type DeviceIdentity struct {
	FuncionarioID int
	DeviceID      string
	Nome          string
}

type DeviceClaims struct {
	FuncionarioID int    `json:"funcionario_id"`
	DeviceID      string `json:"device_id"`
	Nome          string `json:"nome"`
	jwt.RegisteredClaims
}

// CreateDeviceToken signs a short-lived HS256 token for the device identity.
// base64Secret is the shared signing secret, base64 encoded.
func CreateDeviceToken(identity *DeviceIdentity, base64Secret string, expiresInSeconds int64) (string, error) {
	secretBytes, err := base64.StdEncoding.DecodeString(base64Secret)
	if err != nil {
		return "", fmt.Errorf("decode signing secret: %w", err)
	}

	claims := DeviceClaims{
		FuncionarioID: identity.FuncionarioID,
		DeviceID:      identity.DeviceID,
		Nome:          identity.Nome,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "irbana",
			Subject:   identity.DeviceID,
			Audience:  []string{"pontosync"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(expiresInSeconds) * time.Second)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretBytes)
}

// ParseDeviceToken validates the token signature and expiry and returns the
// embedded identity.
func ParseDeviceToken(tokenStr string, base64Secret string) (*DeviceIdentity, error) {
	secretBytes, err := base64.StdEncoding.DecodeString(base64Secret)
	if err != nil {
		return nil, fmt.Errorf("decode signing secret: %w", err)
	}

	var claims DeviceClaims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secretBytes, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return &DeviceIdentity{
		FuncionarioID: claims.FuncionarioID,
		DeviceID:      claims.DeviceID,
		Nome:          claims.Nome,
	}, nil
}
