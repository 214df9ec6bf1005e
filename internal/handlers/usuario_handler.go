// internal/handlers/usuario_handler.go
package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/BimaSantiago/GymSerra-sub000/config"
	"github.com/BimaSantiago/GymSerra-sub000/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// UsuarioResponse keeps password hashes out of API responses.
type UsuarioResponse struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	Nombre    string `json:"nombre"`
	Rol       string `json:"rol"`
	Status    string `json:"status"`
	AvatarURL string `json:"avatarUrl"`
}

func toUsuarioResponse(u *models.Usuario) UsuarioResponse {
	rol := ""
	if u.Rol != nil {
		rol = u.Rol.Nombre
	}
	return UsuarioResponse{
		ID:        u.ID,
		Username:  u.Username,
		Nombre:    u.Nombre,
		Rol:       rol,
		Status:    u.Status,
		AvatarURL: u.AvatarURL,
	}
}

func ListUsuariosHandler(c *gin.Context) {
	var usuarios []models.Usuario
	var totalRows int64

	baseQuery := config.DB.Model(&models.Usuario{}).Preload("Rol")
	if search := c.Query("search"); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		baseQuery = baseQuery.Where("LOWER(username) LIKE ? OR LOWER(nombre) LIKE ?", pattern, pattern)
	}

	if err := baseQuery.Count(&totalRows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "No se pudo contar los usuarios"})
		return
	}
	if err := baseQuery.Scopes(Paginate(c)).Order("username").Find(&usuarios).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "No se pudo obtener los usuarios"})
		return
	}

	responseData := make([]UsuarioResponse, 0, len(usuarios))
	for i := range usuarios {
		responseData = append(responseData, toUsuarioResponse(&usuarios[i]))
	}
	c.JSON(http.StatusOK, listResponse(c, "usuarios", responseData, totalRows))
}

func GetUsuarioHandler(c *gin.Context) {
	var usuario models.Usuario
	if err := config.DB.Preload("Rol").First(&usuario, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Usuario no encontrado"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "usuario": toUsuarioResponse(&usuario)})
}

// CreateUsuarioHandler creates a dashboard account from multipart form data
// (the form may carry an avatar image).
func CreateUsuarioHandler(c *gin.Context) {
	usuario := models.Usuario{
		Username: c.PostForm("username"),
		Nombre:   c.PostForm("nombre"),
		Status:   "activo",
	}
	if status := c.PostForm("status"); status != "" {
		usuario.Status = status
	}
	if usuario.Username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "El nombre de usuario es requerido"})
		return
	}

	password := c.PostForm("password")
	if password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "La contraseña es requerida para usuarios nuevos"})
		return
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "No se pudo procesar la contraseña"})
		return
	}
	usuario.Password = string(hashed)

	if s := c.PostForm("rolId"); s != "" {
		if val, err := strconv.ParseUint(s, 10, 64); err == nil {
			var rol models.Rol
			if err := config.DB.First(&rol, val).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "El rol indicado no existe"})
				return
			}
			v := uint(val)
			usuario.RolID = &v
		}
	}

	var existing models.Usuario
	if err := config.DB.Where("username = ?", usuario.Username).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"success": false, "error": "Ya existe un usuario con ese nombre"})
		return
	}

	if avatarURL, err := saveUploadedImage(c, "usuarios", "avatar"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Avatar inválido: " + err.Error()})
		return
	} else if avatarURL != "" {
		usuario.AvatarURL = avatarURL
	}

	if err := config.DB.Create(&usuario).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "No se pudo crear el usuario: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "id": usuario.ID, "usuario": toUsuarioResponse(&usuario)})
}

func UpdateUsuarioHandler(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "ID de usuario inválido"})
		return
	}

	var usuario models.Usuario
	if err := config.DB.First(&usuario, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Usuario no encontrado"})
		return
	}

	if nombre := c.PostForm("nombre"); nombre != "" {
		usuario.Nombre = nombre
	}
	if status := c.PostForm("status"); status != "" {
		usuario.Status = status
	}
	if password := c.PostForm("password"); password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "No se pudo procesar la contraseña"})
			return
		}
		usuario.Password = string(hashed)
	}
	if s := c.PostForm("rolId"); s != "" {
		if val, err := strconv.ParseUint(s, 10, 64); err == nil {
			var rol models.Rol
			if err := config.DB.First(&rol, val).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "El rol indicado no existe"})
				return
			}
			v := uint(val)
			usuario.RolID = &v
		}
	}

	if avatarURL, err := saveUploadedImage(c, "usuarios", "avatar"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Avatar inválido: " + err.Error()})
		return
	} else if avatarURL != "" {
		usuario.AvatarURL = avatarURL
	}

	if err := config.DB.Save(&usuario).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "No se pudo actualizar el usuario"})
		return
	}

	// The cached session may now carry a stale role.
	if config.RDB != nil {
		config.RDB.Del(config.Ctx, sessionCacheKey(usuario.ID))
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "usuario": toUsuarioResponse(&usuario)})
}

func DeleteUsuarioHandler(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "ID de usuario inválido"})
		return
	}
	if uint(id) == c.GetUint("user_id") {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "No puedes eliminar tu propia cuenta"})
		return
	}

	if err := config.DB.Delete(&models.Usuario{}, id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "No se pudo eliminar el usuario"})
		return
	}
	if config.RDB != nil {
		config.RDB.Del(config.Ctx, sessionCacheKey(uint(id)))
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
