// Package auth issues and parses the HS256 session tokens handed out after
// a successful login. The frontend sends them back either as a Bearer header
// or the auth_token cookie.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionMaxAge mirrors the 30-day session window of the web frontend.
const SessionMaxAge = 30 * 24 * time.Hour

type SessionClaims struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type SessionIssuer struct {
	secret []byte
}

func NewSessionIssuer(secret string) *SessionIssuer {
	return &SessionIssuer{secret: []byte(secret)}
}

// Issue creates a signed session token for the given identity. Subject is
// the user id; email rides along as a private claim because profile lookups
// key on it.
func (s *SessionIssuer) Issue(userID, email, name string) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		Name:  name,
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(SessionMaxAge)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Parse validates the signature and expiry and returns the claims.
func (s *SessionIssuer) Parse(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid session token")
	}
	return claims, nil
}
