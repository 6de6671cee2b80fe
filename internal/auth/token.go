package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenGenerator generates a signed token for the specified subject.
type TokenGenerator interface {
	GenerateToken(subject string, expire time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns its subject.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// JWTTokenGen generates a JWT token.
type JWTTokenGen struct {
	key     string
	issuer  string
	nowFunc func() time.Time
}

// NewJWTTokenGen creates a JWTTokenGen.
func NewJWTTokenGen(issuer, key string) *JWTTokenGen {
	return &JWTTokenGen{
		issuer:  issuer,
		key:     key,
		nowFunc: time.Now,
	}
}

// GenerateToken generates a token.
func (t *JWTTokenGen) GenerateToken(subject string, expire time.Duration) (string, error) {
	nowTime := t.nowFunc()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    t.issuer,
		IssuedAt:  jwt.NewNumericDate(nowTime),
		ExpiresAt: jwt.NewNumericDate(nowTime.Add(expire)),
		Subject:   subject,
	})
	return token.SignedString([]byte(t.key))
}

// JWTTokenVerifier verifies JWT tokens signed with a shared key.
type JWTTokenVerifier struct {
	key     string
	nowFunc func() time.Time
}

func NewJWTTokenVerifier(key string) *JWTTokenVerifier {
	return &JWTTokenVerifier{
		key:     key,
		nowFunc: time.Now,
	}
}

func (j *JWTTokenVerifier) Verify(token string) (string, error) {
	t, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{},
		func(token *jwt.Token) (interface{}, error) {
			return []byte(j.key), nil
		},
		jwt.WithTimeFunc(func() time.Time {
			return j.nowFunc()
		}),
	)
	if err != nil {
		return "", fmt.Errorf("cannot parse token: %v", err)
	}

	clm, ok := t.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return "", fmt.Errorf("token claim is not RegisteredClaims")
	}

	if !t.Valid {
		return "", fmt.Errorf("token not valid")
	}

	return clm.Subject, nil
}
