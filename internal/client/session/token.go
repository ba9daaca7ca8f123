package session

import (
	"fmt"

	"filmoteka/internal/common"

	"github.com/golang-jwt/jwt/v5"
)

// DecodeEmail extracts the email claim from an identity token without
// verifying its signature. The token is issued by an external identity
// provider and the client has no key material for it; every subsequent
// request carries the token, and the server re-checks it, so an undetected
// forgery here buys nothing. Decode failures abort login before any
// persistence or network call.
func DecodeEmail(token string) (string, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return "", fmt.Errorf("%w: missing email claim", common.ErrInvalidToken)
	}
	return email, nil
}
