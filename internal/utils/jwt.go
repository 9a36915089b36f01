package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Tokens are effectively non-expiring for practical purposes; there is no
// server-side revocation, the auth guard re-checks the doctor still exists.
const tokenLifetime = 365 * 24 * time.Hour

var ErrInvalidToken = errors.New("token is invalid or expired")

// Claims is the payload minted at registration and login.
type Claims struct {
	DoctorID string `json:"doctorId"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies auth tokens with a server-held secret.
type TokenIssuer struct {
	secret []byte
}

func NewTokenIssuer(secret string) (*TokenIssuer, error) {
	if secret == "" {
		return nil, errors.New("token secret must not be empty")
	}
	return &TokenIssuer{secret: []byte(secret)}, nil
}

// Generate mints a signed token for the given doctor identity.
func (t *TokenIssuer) Generate(doctorID, email string) (string, error) {
	claims := &Claims{
		DoctorID: doctorID,
		Email:    email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenLifetime)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Verify checks the signature and expiry and returns the embedded claims.
func (t *TokenIssuer) Verify(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return t.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
