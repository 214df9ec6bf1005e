// gymserra/internal/routes/router.go
package routes

import (
	"github.com/BimaSantiago/GymSerra-sub000/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires every route of the application. Public routes (session,
// marketing site, contact form) go first; everything else sits behind the
// auth middleware.
func SetupRoutes(r *gin.Engine) {
	RegisterPublicRoutes(r)

	authRequired := r.Group("/")
	authRequired.Use(middleware.AuthMiddleware())
	{
		RegisterAPIRoutes(authRequired)
	}
}
