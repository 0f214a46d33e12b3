package service

//go:generate mockgen -destination=../../mocks/mock_token_codec.go -package=mocks github.com/triquetrx/auth-microservice-sbm/internal/auth/service TokenCodec

import (
	"errors"
	"fmt"
	"time"

	autherror "github.com/triquetrx/auth-microservice-sbm/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

type TokenCodec interface {
	Issue(email string) (string, error)
	Decode(tokenString string) (*AuthClaims, error)
	IsExpired(claims *AuthClaims) bool
	Validate(tokenString, email string) bool
}

// TokenService signs and verifies the access token carrying the whole
// session state. There is no server-side session record.
type TokenService struct {
	Secret string
	TTL    time.Duration
}

type AuthClaims struct {
	jwt.RegisteredClaims
}

func NewTokenService(secret string, ttlMinutes int) *TokenService {
	return &TokenService{
		Secret: secret,
		TTL:    time.Duration(ttlMinutes) * time.Minute,
	}
}

// Issue signs a token whose subject is the user's email, expiring at
// now + TTL.
func (ts *TokenService) Issue(email string) (string, error) {
	now := time.Now()

	claims := AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.TTL)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ts.Secret))
}

// Decode parses and verifies the token string. A well-formed token past its
// expiry yields ErrTokenInvalidOrExpired; anything unparseable or with a bad
// signature yields ErrInvalidToken.
func (ts *TokenService) Decode(tokenString string) (*AuthClaims, error) {
	claims := &AuthClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Ensure the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(ts.Secret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, autherror.ErrTokenInvalidOrExpired
		}
		return nil, autherror.ErrInvalidToken
	}

	if !token.Valid {
		return nil, autherror.ErrInvalidToken
	}

	return claims, nil
}

func (ts *TokenService) IsExpired(claims *AuthClaims) bool {
	if claims.ExpiresAt == nil {
		return true
	}
	return !time.Now().Before(claims.ExpiresAt.Time)
}

// Validate reports whether the token decodes, carries the presented email as
// its subject, and has not expired.
func (ts *TokenService) Validate(tokenString, email string) bool {
	claims, err := ts.Decode(tokenString)
	if err != nil {
		return false
	}

	return claims.Subject == email && !ts.IsExpired(claims)
}
