package security

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	errs "github.com/romeopeter/payment-orchestrator/internal/domain/error"
	coreport "github.com/romeopeter/payment-orchestrator/internal/domain/port/core"
	secport "github.com/romeopeter/payment-orchestrator/internal/domain/port/security"
)

// DefaultTokenTTL is used when no token lifetime is configured
const DefaultTokenTTL = 24 * time.Hour

// JWTIssuer issues HS256 access tokens whose subject is the user ID
type JWTIssuer struct {
	secret       []byte
	issuer       string
	ttl          time.Duration
	timeProvider coreport.TimeProvider
}

// NewJWTIssuer creates a token issuer. The secret must not be empty.
func NewJWTIssuer(secret, issuer string, ttl time.Duration, timeProvider coreport.TimeProvider) (secport.TokenIssuer, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is required")
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	return &JWTIssuer{
		secret:       []byte(secret),
		issuer:       issuer,
		ttl:          ttl,
		timeProvider: timeProvider,
	}, nil
}

// Issue returns a signed token for userID and its expiry
func (j *JWTIssuer) Issue(userID uint64) (string, time.Time, error) {
	now := j.timeProvider.Now()
	expiresAt := now.Add(j.ttl)

	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(userID, 10),
		Issuer:    j.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// Validate checks signature, algorithm and expiry and returns the user ID.
// Every failure is reported as ErrUnauthorized.
func (j *JWTIssuer) Validate(token string) (uint64, error) {
	opts := []jwt.ParserOption{
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithTimeFunc(j.timeProvider.Now),
	}
	if j.issuer != "" {
		opts = append(opts, jwt.WithIssuer(j.issuer))
	}

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return j.secret, nil
	}, opts...)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrUnauthorized, err.Error())
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || userID == 0 {
		return 0, fmt.Errorf("%w: invalid subject", errs.ErrUnauthorized)
	}
	return userID, nil
}
