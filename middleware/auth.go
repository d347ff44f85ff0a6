package middleware

import (
	"net/http"
	"strings"
	"time"

	"little-lemon-api/config"
	"little-lemon-api/models"
	"little-lemon-api/policy"
	"little-lemon-api/services"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// GenerateToken creates a signed JWT for a given user. The token carries
// identity only; the role is resolved from group membership on every request
// so that membership changes take effect immediately.
func GenerateToken(user *models.User) (string, error) {
	claims := Claims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWTSecret)
}

// Authenticate validates the JWT, loads the user and resolves its role once
// for the rest of the request.
func Authenticate(users services.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required (Bearer <token>)"})
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			return config.JWTSecret, nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		user, err := users.GetByID(claims.UserID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}
		c.Set("userID", user.ID)
		c.Set("username", user.Username)
		c.Set("role", policy.Resolve(user))
		c.Next()
	}
}

// Require gates a route on a policy predicate over the resolved role.
func Require(allowed func(policy.Role) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			c.JSON(http.StatusForbidden, gin.H{"error": "Role not found in context"})
			c.Abort()
			return
		}
		if !allowed(role.(policy.Role)) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied for role " + role.(policy.Role).String()})
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetUserID extracts the caller's user ID from context.
func GetUserID(c *gin.Context) uint {
	val, _ := c.Get("userID")
	return val.(uint)
}

// GetRole extracts the caller's resolved role from context.
func GetRole(c *gin.Context) policy.Role {
	val, _ := c.Get("role")
	return val.(policy.Role)
}
