package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/d60-Lab/microblog/pkg/response"
)

// context keys set by Auth
const (
	CtxUserID   = "user_id"
	CtxUsername = "username"
)

type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// IssueToken signs a JWT for the user.
func IssueToken(secret string, ttl time.Duration, userID, username string) (string, error) {
	claims := Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// Auth parses the Bearer token and stores the caller's identity in the gin
// context. With required=false an anonymous request passes through with no
// identity set, so public reads can still tell who (if anyone) is viewing.
func Auth(secret string, required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			if required {
				response.Unauthorized(c, "authentication required")
				c.Abort()
				return
			}
			c.Next()
			return
		}
		raw := strings.TrimPrefix(header, "Bearer ")
		claims := &Claims{}
		token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid {
			if required {
				response.Unauthorized(c, "invalid token")
				c.Abort()
				return
			}
			c.Next()
			return
		}
		c.Set(CtxUserID, claims.Subject)
		c.Set(CtxUsername, claims.Username)
		c.Next()
	}
}

// UserID returns the authenticated user id, or "" for anonymous callers.
func UserID(c *gin.Context) string {
	return c.GetString(CtxUserID)
}
