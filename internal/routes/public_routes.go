// gymserra/internal/routes/public_routes.go
package routes

import (
	"github.com/BimaSantiago/GymSerra-sub000/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterPublicRoutes registers everything reachable without a session:
// authentication endpoints, the marketing site's read endpoints and the
// contact form.
func RegisterPublicRoutes(r *gin.Engine) {
	r.POST("/api/login", handlers.LoginHandler)
	r.POST("/api/logout", handlers.LogoutHandler)
	r.GET("/api/check_session", handlers.CheckSessionHandler)

	publico := r.Group("/api/public")
	{
		publico.GET("/noticias", handlers.ListNoticiasHandler)
		publico.GET("/noticias/:id", handlers.GetNoticiaHandler)
		publico.GET("/eventos", handlers.ListEventosHandler)
		publico.GET("/eventos/:id", handlers.GetEventoHandler)
		publico.GET("/deportes", handlers.ListDeportesHandler)
		publico.GET("/horarios", handlers.ListHorariosHandler)
		publico.GET("/productos", handlers.ListProductosPublicoHandler)
		publico.POST("/contacto", handlers.CreateContactoHandler)
	}

	// Uploaded images (fotos, avatares, imágenes de noticias y artículos).
	r.Static("/static", "./static")
}
