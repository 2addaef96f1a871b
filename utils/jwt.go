package utils

import (
	"errors"
	"time"

	"schedly/config"

	"github.com/golang-jwt/jwt"
)

func secretKey() []byte {
	secret := config.AppConfig.JWTSecret
	if secret == "" {
		secret = "schedly-dev"
	}
	return []byte(secret)
}

// GenerateToken creates a signed JWT for the given subject, tenant and role.
// The token expires after the specified duration.
func GenerateToken(subject, tenantID, role string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":    subject,
		"tenant": tenantID,
		"role":   role,
		"iat":    time.Now().Unix(),
		"exp":    time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
}

// ExtractTenantFromToken extracts the tenant ID and role claims from a valid
// JWT token string.
func ExtractTenantFromToken(tokenString string) (tenantID string, role string, err error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return "", "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", "", errors.New("invalid token")
	}

	tenantID, ok = claims["tenant"].(string)
	if !ok || tenantID == "" {
		return "", "", errors.New("token does not contain a valid 'tenant' claim")
	}
	role, _ = claims["role"].(string)
	return tenantID, role, nil
}
