package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/softpro2020/foodland/entity"
)

// Claims are the custom JWT claims carried by every issued token.
type Claims struct {
	UserID uint        `json:"userId"`
	Role   entity.Role `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken issues a signed JWT for the given account.
func GenerateToken(userID uint, role entity.Role, secret string, ttl time.Duration) (string, error) {
	claims := &Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
