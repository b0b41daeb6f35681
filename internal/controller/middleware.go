package controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ndmanh/learnhub/internal/dto"
	"github.com/ndmanh/learnhub/internal/service"
	"github.com/rs/zerolog/log"
)

const claimsContextKey = "auth_claims"

// AuthMiddleware parses the Bearer token and stores its claims in the
// request context. Requests without a valid token are rejected.
func AuthMiddleware(tokens service.TokenService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing or malformed Authorization header"})
			return
		}

		claims, err := tokens.Parse(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			log.Warn().Err(err).Str("path", ctx.FullPath()).Msg("AuthMiddleware: token rejected")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid or expired token"})
			return
		}

		ctx.Set(claimsContextKey, claims)
		ctx.Next()
	}
}

// RequireRole guards a route group to the given roles. Must run after
// AuthMiddleware.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		value, ok := ctx.Get(claimsContextKey)
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication required"})
			return
		}
		claims := value.(*service.TokenClaims)
		for _, role := range roles {
			if claims.Role == role {
				ctx.Next()
				return
			}
		}
		ctx.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Message: "Insufficient role"})
	}
}
