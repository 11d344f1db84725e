package util

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const StateTokenIssuer = "movie_vault"

// StateClaims is the payload of the oauth state parameter. RedirectTo is optional and
// only carried through the provider round trip.
type StateClaims struct {
	RedirectTo string `json:"redirectTo,omitempty"`
	jwt.RegisteredClaims
}

// SignStateToken returns the signed state and its id. The id is kept in the browser
// session so the callback only accepts the state issued to that browser.
func SignStateToken(secret string, ttl time.Duration, redirectTo string) (string, string, error) {
	if secret == "" {
		return "", "", errors.New("empty state token secret")
	}
	now := time.Now()
	id := uuid.NewString()
	claims := StateClaims{
		RedirectTo: redirectTo,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        id,
			Issuer:    StateTokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", "", err
	}
	return token, id, nil
}

func VerifyStateToken(secret string, tokenString string) (*StateClaims, error) {
	claims := StateClaims{}
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signature method")
		}
		return []byte(secret), nil
	}, jwt.WithIssuer(StateTokenIssuer), jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}
	return &claims, nil
}
