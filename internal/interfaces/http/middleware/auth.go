package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/crediario/backend/internal/infrastructure/auth"
	"github.com/crediario/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Auth context keys
const (
	ClaimsKey     = "jwt_claims"
	AuthHeaderKey = "Authorization"
	BearerPrefix  = "Bearer "
)

// Authenticate validates the bearer token and stores its claims in the
// request context. It does not restrict by role; pair it with RequireAdmin
// or RequireCustomer on the route groups.
func Authenticate(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(AuthHeaderKey)
		if header == "" {
			abortUnauthorized(c, "Missing authorization header")
			return
		}
		if !strings.HasPrefix(header, BearerPrefix) {
			abortUnauthorized(c, "Invalid authorization header format")
			return
		}

		token := strings.TrimPrefix(header, BearerPrefix)
		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) {
				abortUnauthorized(c, "Token has expired")
				return
			}
			abortUnauthorized(c, "Invalid token")
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// RequireAdmin allows only back-office tokens through
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil || claims.Role != auth.RoleAdmin {
			abortForbidden(c, "Admin access required")
			return
		}
		c.Next()
	}
}

// RequireCustomer allows only customer portal tokens through
func RequireCustomer() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil || claims.Role != auth.RoleCustomer {
			abortForbidden(c, "Customer access required")
			return
		}
		c.Next()
	}
}

// GetClaims returns the validated claims for the request, or nil
func GetClaims(c *gin.Context) *auth.Claims {
	value, exists := c.Get(ClaimsKey)
	if !exists {
		return nil
	}
	claims, ok := value.(*auth.Claims)
	if !ok {
		return nil
	}
	return claims
}

// GetCustomerID returns the customer id a portal token is scoped to
func GetCustomerID(c *gin.Context) (uuid.UUID, bool) {
	claims := GetClaims(c)
	if claims == nil || claims.CustomerID == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(claims.CustomerID)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewErrorResponse(dto.ErrCodeUnauthorized, message))
}

func abortForbidden(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusForbidden,
		dto.NewErrorResponse(dto.ErrCodeForbidden, message))
}
