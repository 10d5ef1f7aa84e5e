package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is fixed at 7 days; there is no refresh flow.
const TokenTTL = 7 * 24 * time.Hour

// GenerateToken creates a signed JWT carrying only the admin ID.
func GenerateToken(secret string, adminID string) (string, error) {
	claims := jwt.MapClaims{
		"sub": adminID,
		"exp": time.Now().Add(TokenTTL).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateToken parses a token string and returns the admin ID it was
// issued for. Expired or malformed tokens come back as errors.
func ValidateToken(secret string, tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		adminID, ok := claims["sub"].(string)
		if !ok || adminID == "" {
			return "", errors.New("invalid subject claim")
		}
		return adminID, nil
	}

	return "", errors.New("invalid token")
}
