package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims 令牌只携带会话引用；身份以会话存储中的记录为准
type Claims struct {
	Login string `json:"login"`
	jwt.RegisteredClaims
}

// SessionID 即 jti
func (c *Claims) SessionID() string { return c.ID }

// UserID 即 sub
func (c *Claims) UserID() int {
	id, _ := strconv.Atoi(c.Subject)
	return id
}

type JWTer struct {
	Secret []byte
	Issuer string
	TTL    time.Duration
}

func (j *JWTer) Issue(uid int, login, sid string) (string, error) {
	now := time.Now()
	claims := Claims{
		Login: login,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sid,
			Subject:   strconv.Itoa(uid),
			Issuer:    j.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.TTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.Secret)
}

func (j *JWTer) Parse(tokenStr string) (*Claims, error) {
	t, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected alg")
		}
		return j.Secret, nil
	}, jwt.WithIssuer(j.Issuer), jwt.WithLeeway(60*time.Second))

	if err != nil {
		return nil, err
	}
	if c, ok := t.Claims.(*Claims); ok && t.Valid && c.ID != "" {
		return c, nil
	}
	return nil, errors.New("invalid token")
}
