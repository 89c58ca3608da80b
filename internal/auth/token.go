package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/user/reelfind/internal/model"
)

// Claims is the identity embedded in a session token.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

// Session is the verified view of a token.
type Session struct {
	User      model.PublicUser
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// GenerateToken mints an HS256 session token for the user. Expiry is the
// only invalidation mechanism; there is no server-side revocation list.
func GenerateToken(user *model.PublicUser, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken verifies a token and returns its claims. Expired,
// tampered, re-signed, and malformed tokens all fail.
func ParseToken(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return claims, nil
}

// CurrentSession resolves a raw token to a session. Missing, expired, and
// invalid-signature tokens all yield nil; this never panics.
func CurrentSession(tokenString, secret string) *Session {
	if tokenString == "" {
		return nil
	}

	claims, err := ParseToken(tokenString, secret)
	if err != nil {
		return nil
	}

	s := &Session{
		User: model.PublicUser{
			ID:    claims.UserID,
			Email: claims.Email,
			Name:  claims.Name,
		},
	}
	if claims.IssuedAt != nil {
		s.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		s.ExpiresAt = claims.ExpiresAt.Time
	}
	return s
}
