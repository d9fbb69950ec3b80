package middleware

import (
	"time"

	"github.com/SscSPs/polifund_ledger/internal/core/domain"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateActorJWT signs an HS256 token carrying the actor id as subject and
// its role, in the shape AuthMiddleware accepts.
func GenerateActorJWT(actor domain.Actor, secret string, expiryDuration time.Duration, issuer string) (string, error) {
	now := time.Now()
	claims := ActorClaims{
		Role: string(actor.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   actor.UserID,
			ExpiresAt: jwt.NewNumericDate(now.Add(expiryDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
