package middleware

import (
	"net/http"
	"strings"

	"github.com/stpnv0/GymOps/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

const principalKey = "principal"

type tokenParser interface {
	Parse(token string) (domain.Principal, error)
}

// Auth verifies the bearer token and stores the caller's principal. Requests
// without a valid token never reach the handlers.
func Auth(parser tokenParser) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "missing bearer token", "code": "UNAUTHENTICATED"},
			)
			return
		}

		p, err := parser.Parse(strings.TrimSpace(token))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "invalid or expired token", "code": "UNAUTHENTICATED"},
			)
			return
		}

		c.Set(principalKey, p)
		c.Next()
	}
}

// Principal returns the caller stored by Auth.
func Principal(c *ginext.Context) (domain.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return domain.Principal{}, false
	}
	p, ok := v.(domain.Principal)
	return p, ok
}
