package authenticator

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/skillpath/roadmapper/internal/config"
)

// Authenticator issues and verifies the stateless bearer tokens the API
// hands out on login. Tokens are HS256-signed with the process-wide secret
// and carry the user's email as subject.
type Authenticator struct {
	secret []byte
	expiry time.Duration
}

func New(conf *config.Config) *Authenticator {
	return &Authenticator{
		secret: []byte(conf.SECRET_KEY),
		expiry: time.Duration(conf.ACCESS_TOKEN_EXPIRE_MINUTES) * time.Minute,
	}
}

func (a *Authenticator) CreateAccessToken(subject string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(a.expiry)),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

// VerifyAccessToken checks signature and expiry and returns the subject.
func (a *Authenticator) VerifyAccessToken(token string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", errors.New("token subject missing")
	}

	return claims.Subject, nil
}
