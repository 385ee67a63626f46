package jwtutil

import (
	"time"

	"github.com/golang-jwt/jwt/v4"

	"sales-service/pkg/config"
)

var (
	secret          []byte
	expirationHours int
)

// Initialize configures the JWT utility from application configuration.
// Must be called before tokens are generated or validated.
func Initialize(cfg *config.JWTConfig) {
	secret = []byte(cfg.SigningKey)
	expirationHours = cfg.ExpirationHours
}

// UserClaims represents the JWT claims for API callers. Role gates
// administrative operations such as catalog reloads.
type UserClaims struct {
	Subject string `json:"sub_name,omitempty"`
	Role    string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// GenerateToken creates a signed token for the given subject and role.
func GenerateToken(subject, role string) (string, error) {
	claims := &UserClaims{
		Subject: subject,
		Role:    role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(expirationHours) * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ValidateToken validates and parses the JWT token
func ValidateToken(tokenString string) (*UserClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*UserClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, jwt.ErrSignatureInvalid
}
