package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/goliatone/go-admin-data/pkg/interfaces"
)

var (
	ErrTokenMalformed = errors.New("auth: token is not a well-formed JWT")
	ErrTokenNoExpiry  = errors.New("auth: token carries no expiry claim")
)

// parseClaims decodes the claim set without verifying the signature. The
// data layer never trusts the token for authorization, only for display and
// expiry scheduling; the backend re-verifies every request.
func parseClaims(token string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, ErrTokenMalformed
	}
	return claims, nil
}

// Expiry extracts the exp claim as wall-clock time.
func Expiry(token string) (time.Time, error) {
	claims, err := parseClaims(token)
	if err != nil {
		return time.Time{}, err
	}
	expiry, err := claims.GetExpirationTime()
	if err != nil || expiry == nil {
		return time.Time{}, ErrTokenNoExpiry
	}
	return expiry.Time, nil
}

// Expired reports whether the token has lapsed at the given instant. The
// check fails closed: a token that cannot be decoded, or that carries no
// expiry claim, counts as expired.
func Expired(token string, now time.Time) bool {
	if token == "" {
		return true
	}
	expiry, err := Expiry(token)
	if err != nil {
		return true
	}
	return !now.Before(expiry)
}

// identityFromClaims maps the conventional claim names onto the operator
// identity. Missing claims leave fields empty rather than failing.
func identityFromClaims(claims jwt.MapClaims) *interfaces.Identity {
	identity := &interfaces.Identity{}
	if sub, err := claims.GetSubject(); err == nil {
		identity.Subject = sub
	}
	if email, ok := claims["email"].(string); ok {
		identity.Email = email
	}
	if name, ok := claims["name"].(string); ok {
		identity.Name = name
	}
	return identity
}
