package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ServiceClaims identify the gateway to the writeback proxy. The proxy
// only needs to know which spreadsheet the caller is allowed to touch.
type ServiceClaims struct {
	SpreadsheetID string `json:"spreadsheet_id"`
	jwt.RegisteredClaims
}

// GenerateServiceToken signs a short-lived HS256 token attached to
// writeback requests when a shared secret is configured.
func GenerateServiceToken(secret, spreadsheetID string) (string, error) {
	claims := ServiceClaims{
		SpreadsheetID: spreadsheetID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "easyrokra-gateway",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(5 * time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateServiceToken verifies a token produced by GenerateServiceToken.
func ValidateServiceToken(secret, tokenStr string) (*ServiceClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &ServiceClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*ServiceClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
