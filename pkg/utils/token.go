package utils

import (
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// TokenExpiry extracts the expiry time of an access token without verifying
// its signature. The backend signs its own tokens; the portal only needs the
// exp claim to bound the session lifetime.
func TokenExpiry(tokenString string) (time.Time, error) {
	parser := jwt.Parser{}

	token, _, err := parser.ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return time.Time{}, errors.New("invalid token claims")
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return time.Time{}, errors.New("exp claim missing")
	}

	return time.Unix(int64(exp), 0), nil
}
