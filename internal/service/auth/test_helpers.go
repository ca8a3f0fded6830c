package auth

import "time"

// NewTestJWTService creates a JWT service with an injectable clock, letting
// tests mint tokens at a fixed instant and validate them "later" without
// sleeping.
func NewTestJWTService(
	secret string,
	tokenLifetime time.Duration,
	timeFunc func() time.Time,
) JWTService {
	if timeFunc == nil {
		timeFunc = time.Now
	}

	return &hmacJWTService{
		signingKey:    []byte(secret),
		tokenLifetime: tokenLifetime,
		timeFunc:      timeFunc,
		clockSkew:     0, // No leeway in tests; expiry boundaries stay exact
	}
}
