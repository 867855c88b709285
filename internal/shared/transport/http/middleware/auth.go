package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"KingdomsMap/internal/shared/security"
	"KingdomsMap/internal/shared/transport"
)

const ctxKeyOperator = "operator"

// Auth 校验 Authorization: Bearer <jwt>，通过后把操作人写入 gin.Context。
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			transport.SetErrorReason(c.Request.Context(), "missing_token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": transport.Unauthorized, "msg": "缺少令牌"})
			return
		}
		claims, err := security.ParseToken(secret, strings.TrimSpace(token))
		if err != nil {
			transport.SetErrorReason(c.Request.Context(), "invalid_token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": transport.Unauthorized, "msg": "令牌无效"})
			return
		}
		c.Set(ctxKeyOperator, claims.Operator)
		c.Next()
	}
}

// Operator 返回 Auth 写入的操作人。
func Operator(c *gin.Context) string {
	return c.GetString(ctxKeyOperator)
}
