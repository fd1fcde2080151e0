package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eduverse/internal/catalog"
	"eduverse/internal/domain"
	"eduverse/internal/guard"
)

// RequireRoles gates a route group on the access guard. An empty role list
// admits any authenticated identity. Guard decisions map onto HTTP: the
// loading placeholder becomes 503, a redirect to sign-in 401, a redirect to
// the role's home 403 with the target route in the body.
func RequireRoles(g *guard.Guard, roles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		decision := g.Decide(roles)
		switch decision.Kind {
		case guard.DecisionLoading:
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"status": "loading"})
		case guard.DecisionRedirect:
			status := http.StatusForbidden
			if decision.Target == guard.LoginRoute {
				status = http.StatusUnauthorized
			}
			c.AbortWithStatusJSON(status, gin.H{"redirect": decision.Target})
		case guard.DecisionNone:
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		default:
			c.Next()
		}
	}
}

// RequireCatalog holds course routes off until the catalog snapshot restore
// has completed, mirroring the guard's loading placeholder.
func RequireCatalog(courses *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if courses.Loading() {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"status": "loading"})
			return
		}
		c.Next()
	}
}
