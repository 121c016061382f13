package users_middleware

import (
	"net/http"
	"strings"

	users_services "teamhub/internal/features/users/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const claimsContextKey = "auth_claims"

// AuthMiddleware validates the bearer access token and stores its claims
// in the request context. Tokens are stateless; no user row is loaded here.
func AuthMiddleware(tokenService *users_services.TokenService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")
		if authHeader == "" {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization token required"})
			ctx.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			ctx.Abort()
			return
		}

		claims, err := tokenService.ValidateAccessToken(parts[1])
		if err != nil {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			ctx.Abort()
			return
		}

		ctx.Set(claimsContextKey, claims)
		ctx.Next()
	}
}

func GetClaimsFromContext(ctx *gin.Context) (*users_services.Claims, bool) {
	claimsInterface, exists := ctx.Get(claimsContextKey)
	if !exists {
		return nil, false
	}

	claims, ok := claimsInterface.(*users_services.Claims)

	return claims, ok
}

func GetUserIDFromContext(ctx *gin.Context) (uuid.UUID, bool) {
	claims, ok := GetClaimsFromContext(ctx)
	if !ok {
		return uuid.Nil, false
	}

	return claims.UserID, true
}
