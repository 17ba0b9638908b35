package jwt

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/safetrail/safetrail/internal/pkg/models"
)

// ErrMissingToken is returned when a request carries no token at all
var ErrMissingToken = errors.New("missing token")

// GenerateToken generates a signed token for the given user. Used by tooling and tests;
// issuing tokens for real users belongs to the identity provider.
func GenerateToken(userID, role string, cfg models.JWTConfig) (string, int64, error) {
	expirationTime := time.Now().Add(time.Duration(cfg.Expiration) * time.Minute)

	claims := models.WebSocketClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expirationTime),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", 0, err
	}

	return tokenString, expirationTime.Unix(), nil
}

// ValidateToken validates a token signed with HMAC and returns its claims
func ValidateToken(tokenString string, secret string) (*models.WebSocketClaims, error) {
	if tokenString == "" {
		return nil, ErrMissingToken
	}

	claims := &models.WebSocketClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// TokenFromRequest extracts a bearer token from the Authorization header or, since
// browsers cannot set headers on a WebSocket upgrade, from the "token" query parameter.
func TokenFromRequest(r *http.Request) string {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}
	return r.URL.Query().Get("token")
}
