package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pventura/stockroom/internal/models"
)

var jwtSecret = []byte("dev-secret-change-me")

// SetSecret installs the signing secret from configuration. Must be
// called before any token is issued or verified.
func SetSecret(secret string) {
	jwtSecret = []byte(secret)
}

// ErrInvalidToken is returned for missing, malformed, expired or
// wrongly-signed bearer tokens.
var ErrInvalidToken = errors.New("invalid token")

// GenerateToken issues an HS256 access token whose subject is the
// account id, which the API layer uses as the tenant id.
func GenerateToken(account models.Account) (string, error) {
	claims := jwt.MapClaims{
		"sub":      account.ID,
		"username": account.Username,
		"exp":      time.Now().Add(15 * time.Minute).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// TenantFromBearer extracts and verifies the tenant id from an
// "Authorization: Bearer <token>" header value.
func TenantFromBearer(authorization string) (string, error) {
	if !strings.HasPrefix(authorization, "Bearer ") {
		return "", ErrInvalidToken
	}
	tokenStr := strings.TrimPrefix(authorization, "Bearer ")

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", ErrInvalidToken
	}
	return sub, nil
}
