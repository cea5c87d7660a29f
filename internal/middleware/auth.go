package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/ankietdev/api/config"
	"github.com/ankietdev/api/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// userIDKey is where the authenticated user id lives in the gin context.
// The id is always passed explicitly from here into services; nothing below
// the controllers reads ambient request state.
const userIDKey = "authUserID"

// RequireAuth rejects requests without a valid bearer token.
func RequireAuth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := bearerUserID(c, cfg)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
			return
		}
		c.Set(userIDKey, userID)
		c.Next()
	}
}

// OptionalAuth resolves the user id when a valid token is present and lets
// anonymous requests through untouched.
func OptionalAuth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, ok := bearerUserID(c, cfg); ok {
			c.Set(userIDKey, userID)
		}
		c.Next()
	}
}

// UserID returns the authenticated user id, or ok=false for anonymous requests.
func UserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(userIDKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

func bearerUserID(c *gin.Context, cfg *config.Config) (uint, bool) {
	header := c.GetHeader("Authorization")
	raw, found := strings.CutPrefix(header, "Bearer ")
	if !found || raw == "" {
		return 0, false
	}

	token, err := jwt.ParseWithClaims(raw, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(cfg.JWT.Secret), nil
	})
	if err != nil || !token.Valid {
		return 0, false
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseUint(claims.Subject, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
