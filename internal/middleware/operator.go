package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/mchandler/agency-site-api/internal/api/dto"
	"github.com/mchandler/agency-site-api/internal/config"
	"github.com/mchandler/agency-site-api/internal/utils"
)

// OperatorMiddleware guards the operator surface (submission stream, admin
// reindex/export). Visitor-facing content routes stay anonymous.
type OperatorMiddleware struct {
	config *config.Config
}

func NewOperatorMiddleware(config *config.Config) *OperatorMiddleware {
	return &OperatorMiddleware{
		config: config,
	}
}

// OperatorAuth validates the operator bearer token. Websocket clients
// cannot set headers from a browser, so a token query parameter is accepted
// as a fallback.
func (m *OperatorMiddleware) OperatorAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			token = c.Query("token")
		}
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Error{Error: "Operator token is required"})
			return
		}

		claims := jwt.MapClaims{}
		_, err := jwt.ParseWithClaims(token, &claims, func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(m.config.OperatorSecretKey), nil
		})
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Error{Error: "Invalid or expired token"})
			return
		}

		if scope, _ := claims["scope"].(string); scope != "operator" {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.Error{Error: "Insufficient permissions"})
			return
		}

		c.Set(string(utils.ClaimsKey), claims)
		c.Next()
	}
}

func (m *OperatorMiddleware) GenerateToken(subject string) (string, error) {
	claims := jwt.MapClaims{
		"sub":   subject,
		"scope": "operator",
		"exp":   time.Now().Add(time.Duration(m.config.OperatorTokenHours) * time.Hour).Unix(),
		"iat":   time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.config.OperatorSecretKey))
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return ""
	}
	return parts[1]
}
