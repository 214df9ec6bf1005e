// internal/handlers/rol_handler.go
package handlers

import (
	"net/http"

	"github.com/BimaSantiago/GymSerra-sub000/config"
	"github.com/BimaSantiago/GymSerra-sub000/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RolInput struct {
	Nombre      string `json:"nombre" binding:"required"`
	Descripcion string `json:"descripcion"`
	PermisoIDs  []uint `json:"permisoIds"`
}

func ListRolesHandler(c *gin.Context) {
	var roles []models.Rol
	if err := config.DB.Preload("Permisos").Order("nombre").Find(&roles).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "No se pudo obtener los roles"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "roles": roles, "total": len(roles)})
}

func ListPermisosHandler(c *gin.Context) {
	var permisos []models.Permiso
	if err := config.DB.Order("nombre").Find(&permisos).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "No se pudo obtener los permisos"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "permisos": permisos, "total": len(permisos)})
}

func CreateRolHandler(c *gin.Context) {
	var input RolInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "El nombre del rol es requerido"})
		return
	}

	rol := models.Rol{Nombre: input.Nombre, Descripcion: input.Descripcion}
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&rol).Error; err != nil {
			return err
		}
		if len(input.PermisoIDs) > 0 {
			var permisos []models.Permiso
			if err := tx.Where("id IN ?", input.PermisoIDs).Find(&permisos).Error; err != nil {
				return err
			}
			return tx.Model(&rol).Association("Permisos").Replace(permisos)
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"success": false, "error": "No se pudo crear el rol: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "id": rol.ID, "rol": rol})
}

func UpdateRolHandler(c *gin.Context) {
	var rol models.Rol
	if err := config.DB.First(&rol, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Rol no encontrado"})
		return
	}

	var input RolInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "El nombre del rol es requerido"})
		return
	}

	rol.Nombre = input.Nombre
	rol.Descripcion = input.Descripcion
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&rol).Error; err != nil {
			return err
		}
		var permisos []models.Permiso
		if len(input.PermisoIDs) > 0 {
			if err := tx.Where("id IN ?", input.PermisoIDs).Find(&permisos).Error; err != nil {
				return err
			}
		}
		return tx.Model(&rol).Association("Permisos").Replace(permisos)
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "No se pudo actualizar el rol"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "rol": rol})
}

func DeleteRolHandler(c *gin.Context) {
	var count int64
	config.DB.Model(&models.Usuario{}).Where("rol_id = ?", c.Param("id")).Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"success": false, "error": "El rol tiene usuarios asignados"})
		return
	}
	if err := config.DB.Delete(&models.Rol{}, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "No se pudo eliminar el rol"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
