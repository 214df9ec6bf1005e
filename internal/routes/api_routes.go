// gymserra/internal/routes/api_routes.go
package routes

import (
	"github.com/BimaSantiago/GymSerra-sub000/internal/handlers"
	"github.com/BimaSantiago/GymSerra-sub000/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterAPIRoutes registers the dashboard API. Every group is gated on a
// module permission; the admin role passes all of them.
func RegisterAPIRoutes(api *gin.RouterGroup) {
	apiGroup := api.Group("/api")
	{
		// --- ALUMNOS ---
		alumnos := apiGroup.Group("/alumnos")
		alumnos.Use(middleware.PermissionMiddleware("alumnos_view"))
		{
			alumnos.GET("", handlers.ListAlumnosHandler)
			alumnos.GET("/:id", handlers.GetAlumnoHandler)
			alumnos.POST("", middleware.PermissionMiddleware("alumnos_create"), handlers.CreateAlumnoHandler)
			alumnos.PUT("/:id", middleware.PermissionMiddleware("alumnos_edit"), handlers.UpdateAlumnoHandler)
			alumnos.POST("/inscripcion", middleware.PermissionMiddleware("alumnos_create"), handlers.InscripcionHandler)
		}

		// --- TUTORES ---
		tutores := apiGroup.Group("/tutores")
		tutores.Use(middleware.PermissionMiddleware("alumnos_view"))
		{
			tutores.GET("", handlers.ListTutoresHandler)
			tutores.GET("/:id", handlers.GetTutorHandler)
			tutores.POST("", middleware.PermissionMiddleware("alumnos_create"), handlers.CreateTutorHandler)
			tutores.PUT("/:id", middleware.PermissionMiddleware("alumnos_edit"), handlers.UpdateTutorHandler)
		}

		// --- MENSUALIDADES Y PLANES ---
		mensualidades := apiGroup.Group("/mensualidades")
		mensualidades.Use(middleware.PermissionMiddleware("pagos_view"))
		{
			mensualidades.GET("", handlers.ListMensualidadesHandler)
			mensualidades.GET("/export", handlers.ExportMensualidadesHandler)
			mensualidades.GET("/:id", handlers.GetMensualidadHandler)
			mensualidades.POST("", middleware.PermissionMiddleware("pagos_create"), handlers.CreateMensualidadHandler)
			mensualidades.PUT("/:id", middleware.PermissionMiddleware("pagos_edit"), handlers.UpdateMensualidadHandler)
		}

		planes := apiGroup.Group("/planes")
		planes.Use(middleware.PermissionMiddleware("pagos_view"))
		{
			planes.GET("", handlers.ListPlanesHandler)
			planes.GET("/:id", handlers.GetPlanHandler)
			planes.POST("", middleware.PermissionMiddleware("pagos_create"), handlers.CreatePlanHandler)
			planes.PUT("/:id", middleware.PermissionMiddleware("pagos_edit"), handlers.UpdatePlanHandler)
		}

		// --- INVENTARIO ---
		articulos := apiGroup.Group("/articulos")
		articulos.Use(middleware.PermissionMiddleware("inventario_view"))
		{
			articulos.GET("", handlers.ListArticulosHandler)
			articulos.GET("/:id", handlers.GetArticuloHandler)
			articulos.POST("", middleware.PermissionMiddleware("inventario_create"), handlers.CreateArticuloHandler)
			articulos.PUT("/:id", middleware.PermissionMiddleware("inventario_edit"), handlers.UpdateArticuloHandler)
		}

		categorias := apiGroup.Group("/categorias")
		categorias.Use(middleware.PermissionMiddleware("inventario_view"))
		{
			categorias.GET("", handlers.ListCategoriasHandler)
			categorias.POST("", middleware.PermissionMiddleware("inventario_create"), handlers.CreateCategoriaHandler)
			categorias.PUT("/:id", middleware.PermissionMiddleware("inventario_edit"), handlers.UpdateCategoriaHandler)
			categorias.DELETE("/:id", middleware.PermissionMiddleware("inventario_edit"), handlers.DeleteCategoriaHandler)
		}

		unidades := apiGroup.Group("/unidades")
		unidades.Use(middleware.PermissionMiddleware("inventario_view"))
		{
			unidades.GET("", handlers.ListUnidadesHandler)
			unidades.POST("", middleware.PermissionMiddleware("inventario_create"), handlers.CreateUnidadHandler)
			unidades.PUT("/:id", middleware.PermissionMiddleware("inventario_edit"), handlers.UpdateUnidadHandler)
			unidades.DELETE("/:id", middleware.PermissionMiddleware("inventario_edit"), handlers.DeleteUnidadHandler)
		}

		proveedores := apiGroup.Group("/proveedores")
		proveedores.Use(middleware.PermissionMiddleware("inventario_view"))
		{
			proveedores.GET("", handlers.ListProveedoresHandler)
			proveedores.GET("/:id", handlers.GetProveedorHandler)
			proveedores.POST("", middleware.PermissionMiddleware("inventario_create"), handlers.CreateProveedorHandler)
			proveedores.PUT("/:id", middleware.PermissionMiddleware("inventario_edit"), handlers.UpdateProveedorHandler)
			proveedores.DELETE("/:id", middleware.PermissionMiddleware("inventario_edit"), handlers.DeleteProveedorHandler)
		}

		compras := apiGroup.Group("/compras")
		compras.Use(middleware.PermissionMiddleware("inventario_view"))
		{
			compras.GET("", handlers.ListComprasHandler)
			compras.GET("/:id", handlers.GetCompraHandler)
			compras.POST("", middleware.PermissionMiddleware("inventario_create"), handlers.CreateCompraHandler)
		}

		ventas := apiGroup.Group("/ventas")
		ventas.Use(middleware.PermissionMiddleware("ventas_view"))
		{
			ventas.GET("", handlers.ListVentasHandler)
			ventas.GET("/export", handlers.ExportVentasHandler)
			ventas.GET("/:id", handlers.GetVentaHandler)
			ventas.POST("", middleware.PermissionMiddleware("ventas_create"), handlers.CreateVentaHandler)
		}

		ajustes := apiGroup.Group("/ajustes")
		ajustes.Use(middleware.PermissionMiddleware("inventario_view"))
		{
			ajustes.GET("", handlers.ListAjustesHandler)
			ajustes.POST("", middleware.PermissionMiddleware("inventario_edit"), handlers.CreateAjusteHandler)
		}

		// --- EVENTOS Y NOTICIAS ---
		eventos := apiGroup.Group("/eventos")
		eventos.Use(middleware.PermissionMiddleware("eventos_view"))
		{
			eventos.GET("", handlers.ListEventosHandler)
			eventos.GET("/calendario", handlers.GetCalendarioHandler)
			eventos.GET("/:id", handlers.GetEventoHandler)
			eventos.POST("", middleware.PermissionMiddleware("eventos_create"), handlers.CreateEventoHandler)
			eventos.PUT("/:id", middleware.PermissionMiddleware("eventos_edit"), handlers.UpdateEventoHandler)
		}

		noticias := apiGroup.Group("/noticias")
		noticias.Use(middleware.PermissionMiddleware("noticias_view"))
		{
			noticias.GET("", handlers.ListNoticiasHandler)
			noticias.GET("/:id", handlers.GetNoticiaHandler)
			noticias.POST("", middleware.PermissionMiddleware("noticias_create"), handlers.CreateNoticiaHandler)
			noticias.PUT("/:id", middleware.PermissionMiddleware("noticias_edit"), handlers.UpdateNoticiaHandler)
		}

		// --- CATÁLOGOS ---
		deportes := apiGroup.Group("/deportes")
		deportes.Use(middleware.PermissionMiddleware("catalogos_view"))
		{
			deportes.GET("", handlers.ListDeportesHandler)
			deportes.POST("", middleware.PermissionMiddleware("catalogos_edit"), handlers.CreateDeporteHandler)
			deportes.PUT("/:id", middleware.PermissionMiddleware("catalogos_edit"), handlers.UpdateDeporteHandler)
			deportes.DELETE("/:id", middleware.PermissionMiddleware("catalogos_edit"), handlers.DeleteDeporteHandler)
		}

		horarios := apiGroup.Group("/horarios")
		horarios.Use(middleware.PermissionMiddleware("catalogos_view"))
		{
			horarios.GET("", handlers.ListHorariosHandler)
			horarios.POST("", middleware.PermissionMiddleware("catalogos_edit"), handlers.CreateHorarioHandler)
			horarios.PUT("/:id", middleware.PermissionMiddleware("catalogos_edit"), handlers.UpdateHorarioHandler)
			horarios.DELETE("/:id", middleware.PermissionMiddleware("catalogos_edit"), handlers.DeleteHorarioHandler)
		}

		// --- CONTACTOS ---
		contactos := apiGroup.Group("/contactos")
		contactos.Use(middleware.PermissionMiddleware("contactos_view"))
		{
			contactos.GET("", handlers.ListContactosHandler)
			contactos.PUT("/:id/atendido", handlers.MarkContactoAtendidoHandler)
		}

		// --- USUARIOS Y ROLES ---
		usuarios := apiGroup.Group("/usuarios")
		usuarios.Use(middleware.PermissionMiddleware("usuarios_view"))
		{
			usuarios.GET("", handlers.ListUsuariosHandler)
			usuarios.GET("/:id", handlers.GetUsuarioHandler)
			usuarios.POST("", middleware.PermissionMiddleware("usuarios_create"), handlers.CreateUsuarioHandler)
			usuarios.PUT("/:id", middleware.PermissionMiddleware("usuarios_edit"), handlers.UpdateUsuarioHandler)
			usuarios.DELETE("/:id", middleware.PermissionMiddleware("usuarios_delete"), handlers.DeleteUsuarioHandler)
		}

		roles := apiGroup.Group("/roles")
		roles.Use(middleware.PermissionMiddleware("usuarios_view"))
		{
			roles.GET("", handlers.ListRolesHandler)
			roles.GET("/permisos", handlers.ListPermisosHandler)
			roles.POST("", middleware.PermissionMiddleware("usuarios_edit"), handlers.CreateRolHandler)
			roles.PUT("/:id", middleware.PermissionMiddleware("usuarios_edit"), handlers.UpdateRolHandler)
			roles.DELETE("/:id", middleware.PermissionMiddleware("usuarios_edit"), handlers.DeleteRolHandler)
		}
	}
}
