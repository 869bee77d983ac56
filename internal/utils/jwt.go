// Package utils provides helpers for password hashing and token creation.
package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AccessToken is a signed HS256 JWT along with its expiry. The subject claim
// carries the worker id and the adm claim carries the owning admin id so
// downstream handlers can scope requests without another lookup.
type AccessToken struct {
	Token string    // the serialized JWT string
	Exp   time.Time // the UTC expiration time
}

// NewAccessToken builds and signs an HS256 JWT for a worker account. Claims:
// subject (sub) = worker id, adm = admin id, name = display name, plus the
// standard exp/iat timestamps.
func NewAccessToken(secret, workerID, adminID, fullName string, ttlMin int) (AccessToken, error) {
	now := time.Now().UTC()
	exp := now.Add(time.Duration(ttlMin) * time.Minute)
	claims := jwt.MapClaims{
		"sub":  workerID,
		"adm":  adminID,
		"name": fullName,
		"exp":  exp.Unix(),
		"iat":  now.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return AccessToken{}, err
	}
	return AccessToken{Token: signed, Exp: exp}, nil
}
