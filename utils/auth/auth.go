package auth

import (
	"fmt"

	"github.com/dgrijalva/jwt-go"
	"github.com/pkg/errors"
)

// ErrInvalidSeal is returned when a sealed token was not signed with the expected secret
var ErrInvalidSeal = errors.New("sealed token is invalid")

// SessionClaims are the claims of the JWT used to seal a session token
type SessionClaims struct {
	jwt.StandardClaims
	Token string `json:"tok"`
}

// SealToken wraps an API token in a JWT signed with secret so it can be kept in a cookie.
// expiresAt is a unix timestamp, 0 means the seal does not expire
func SealToken(token string, issuedAt, expiresAt int64, secret []byte) (string, error) {
	if len(secret) == 0 {
		return "", errors.New("session secret undefined")
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, SessionClaims{
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  issuedAt,
			ExpiresAt: expiresAt,
		},
		Token: token,
	}).SignedString(secret)
}

// ErrExpiredSeal is returned when a sealed token expired before now
var ErrExpiredSeal = errors.New("sealed token is expired")

// OpenToken returns the API token sealed by SealToken.
// Expiry is checked against now, a unix timestamp, rather than the wall clock
func OpenToken(sealed string, now int64, secret []byte) (string, error) {
	if len(secret) == 0 {
		return "", errors.New("session secret undefined")
	}

	claims := &SessionClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	parsed, err := parser.ParseWithClaims(sealed, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return "", errors.Wrap(ErrInvalidSeal, err.Error())
	}
	if !parsed.Valid || claims.Token == "" {
		return "", ErrInvalidSeal
	}
	if !claims.VerifyExpiresAt(now, false) {
		return "", errors.Wrap(ErrInvalidSeal, ErrExpiredSeal.Error())
	}

	return claims.Token, nil
}
