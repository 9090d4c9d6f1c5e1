package util

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Claims 匿名与邮箱身份共用同一种令牌载荷，下游只关心 AnonID
type Claims struct {
	AnonID   string `json:"anon_id"`
	Provider string `json:"provider"`
	jwt.RegisteredClaims
}

func GenerateJWT(anonID, provider, secret string, expiration time.Duration) (string, error) {
	expirationTime := time.Now().Add(expiration)

	claims := &Claims{
		AnonID:   anonID,
		Provider: provider,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ParseJWT(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, err
}

func GetIdentityFromContext(c *gin.Context) *Claims {
	identity, exists := c.Get("identity")
	if !exists {
		return nil
	}
	claims, ok := identity.(*Claims)
	if !ok {
		return nil
	}
	return claims
}
