package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-forum/models"
)

// ErrInvalidSessionParams is returned by [GenerateSessionJWT] when a
// required parameter is empty or zero.
var ErrInvalidSessionParams = errors.New("invalid params for generating session JWT")

// GenerateSessionJWT wraps an opaque session token into a signed
// HMAC-SHA256 JWT envelope.
//
// The envelope includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the session
//   - Subject   (sub): the opaque session token stored on the account
//   - IssuedAt  (iat): now
//   - ExpiresAt (exp): now plus duration
//
// Example usage:
//
//	signed, expiresAt, err := utils.GenerateSessionJWT("go-forum", token, 24*time.Hour, "secret", time.Now())
func GenerateSessionJWT(issuer, sessionToken string, duration time.Duration, signKey string, now time.Time) (string, time.Time, error) {
	if issuer == "" || sessionToken == "" || duration <= 0 || signKey == "" {
		return "", time.Time{}, ErrInvalidSessionParams
	}

	expiresAt := now.Add(duration)
	claims := models.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   sessionToken,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("error occurred during signing session JWT: %w", err)
	}

	return signed, expiresAt, nil
}

// ParseSessionJWT validates a signed session envelope and returns the
// session token it carries.
//
// Validation includes signature verification with signKey (HS256 only),
// the issuer claim, expiry, and presence of a non-empty subject.
func ParseSessionJWT(signed, signKey, issuer string) (string, error) {
	var claims models.SessionClaims
	_, err := jwt.ParseWithClaims(signed, &claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return "", fmt.Errorf("error occurred validating and parsing session JWT: %w", err)
	}

	sessionToken, err := claims.SessionToken()
	if err != nil {
		return "", fmt.Errorf("error occurred during getting subject from session JWT: %w", err)
	}
	if sessionToken == "" {
		return "", errors.New("empty subject error")
	}

	return sessionToken, nil
}

// ParseBearerToken extracts the credential from an "Authorization: Bearer <x>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
