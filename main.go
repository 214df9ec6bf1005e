// gymserra/main.go

package main

import (
	"log/slog"
	"os"

	"github.com/BimaSantiago/GymSerra-sub000/config"
	"github.com/BimaSantiago/GymSerra-sub000/internal/routes"
	"github.com/BimaSantiago/GymSerra-sub000/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("No .env file found, relying on the environment")
	}

	config.ConnectDB()
	config.ConnectRedis()
	config.LoadJWTKey()

	if err := migrate(); err != nil {
		slog.Error("Database migration failed", "error", err)
		os.Exit(1)
	}
	seedPermisos()
	seedAdmin()

	r := gin.Default()

	// The SPA runs on its own origin and sends the session cookie with
	// credentials: include.
	corsConfig := cors.DefaultConfig()
	if origin := os.Getenv("FRONTEND_ORIGIN"); origin != "" {
		corsConfig.AllowOrigins = []string{origin}
	} else {
		corsConfig.AllowOrigins = []string{"http://localhost:5173"}
	}
	corsConfig.AllowCredentials = true
	r.Use(cors.New(corsConfig))

	routes.SetupRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	slog.Info("Starting server", "port", port)
	if err := r.Run(":" + port); err != nil {
		slog.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}

func migrate() error {
	return config.DB.AutoMigrate(
		&models.Deporte{},
		&models.Horario{},
		&models.Tutor{},
		&models.Alumno{},
		&models.PlanPago{},
		&models.Mensualidad{},
		&models.Categoria{},
		&models.UnidadMedida{},
		&models.Articulo{},
		&models.Proveedor{},
		&models.Compra{},
		&models.CompraDetalle{},
		&models.Venta{},
		&models.VentaDetalle{},
		&models.Ajuste{},
		&models.Evento{},
		&models.Noticia{},
		&models.Contacto{},
		&models.Permiso{},
		&models.Rol{},
		&models.Usuario{},
	)
}

// permisosBase lists every permission the routes check. Kept in sync with
// internal/routes/api_routes.go.
var permisosBase = []string{
	"alumnos_view", "alumnos_create", "alumnos_edit",
	"pagos_view", "pagos_create", "pagos_edit",
	"inventario_view", "inventario_create", "inventario_edit",
	"ventas_view", "ventas_create",
	"eventos_view", "eventos_create", "eventos_edit",
	"noticias_view", "noticias_create", "noticias_edit",
	"catalogos_view", "catalogos_edit",
	"contactos_view",
	"usuarios_view", "usuarios_create", "usuarios_edit", "usuarios_delete",
}

// seedPermisos fills the permissions catalog so roles can be assembled from
// the complete list. Already-present names are left untouched.
func seedPermisos() {
	for _, nombre := range permisosBase {
		p := models.Permiso{Nombre: nombre}
		if err := config.DB.Where(models.Permiso{Nombre: nombre}).FirstOrCreate(&p).Error; err != nil {
			slog.Error("Failed to seed permission", "permiso", nombre, "error", err)
		}
	}
}

// seedAdmin guarantees there is always a way into the dashboard: when the
// users table is empty it creates the admin role and an admin account with
// the password from ADMIN_PASSWORD (default "admin").
func seedAdmin() {
	var count int64
	config.DB.Model(&models.Usuario{}).Count(&count)
	if count > 0 {
		return
	}

	rol := models.Rol{Nombre: "admin", Descripcion: "Acceso total"}
	if err := config.DB.Where(models.Rol{Nombre: "admin"}).FirstOrCreate(&rol).Error; err != nil {
		slog.Error("Failed to seed admin role", "error", err)
		return
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin"
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		slog.Error("Failed to hash admin password", "error", err)
		return
	}

	admin := models.Usuario{
		Username: "admin",
		Password: string(hashed),
		Nombre:   "Administrador",
		RolID:    &rol.ID,
		Status:   "activo",
	}
	if err := config.DB.Create(&admin).Error; err != nil {
		slog.Error("Failed to seed admin user", "error", err)
		return
	}
	slog.Info("Seeded initial admin user", "username", admin.Username)
}
