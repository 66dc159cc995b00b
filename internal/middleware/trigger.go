package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"trello-sheets-sync/pkg/response"
)

// SecretHeader carries the shared trigger secret. "Authorization: Bearer <secret>" is accepted too.
const SecretHeader = "X-Trigger-Secret"

// Trigger guards the sync endpoints: per-client rate limit first, then the
// shared secret when one is configured.
func (m Middleware) Trigger() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		if err := m.limiter.Allow(c.ClientIP()); err != nil {
			m.l.Warnf(ctx, "middleware.Trigger: %v", err)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.Resp{
				ErrorCode: http.StatusTooManyRequests,
				Message:   "Too Many Requests",
			})
			return
		}

		if m.secret != "" {
			got := presentedSecret(c.Request)
			if got == "" {
				m.l.Warnf(ctx, "middleware.Trigger: no secret from %s", c.ClientIP())
				response.Unauthorized(c)
				c.Abort()
				return
			}
			if subtle.ConstantTimeCompare([]byte(got), []byte(m.secret)) != 1 {
				m.l.Warnf(ctx, "middleware.Trigger: wrong secret from %s", c.ClientIP())
				response.Forbidden(c)
				c.Abort()
				return
			}
		}

		c.Next()
	}
}

func presentedSecret(r *http.Request) string {
	if got := r.Header.Get(SecretHeader); got != "" {
		return got
	}
	return strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
}
