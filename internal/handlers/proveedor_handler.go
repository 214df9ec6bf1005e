// internal/handlers/proveedor_handler.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/BimaSantiago/GymSerra-sub000/config"
	"github.com/BimaSantiago/GymSerra-sub000/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProveedorInput struct {
	RazonSocial string `json:"razonSocial" binding:"required"`
	RFC         string `json:"rfc"`
	Telefono    string `json:"telefono"`
	Email       string `json:"email"`
	Direccion   string `json:"direccion"`
}

func ListProveedoresHandler(c *gin.Context) {
	var proveedores []models.Proveedor
	var totalRows int64

	baseQuery := config.DB.Model(&models.Proveedor{})
	if search := c.Query("search"); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		baseQuery = baseQuery.Where("LOWER(razon_social) LIKE ? OR LOWER(rfc) LIKE ?", pattern, pattern)
	}

	if err := baseQuery.Count(&totalRows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "No se pudo contar los proveedores"})
		return
	}
	if err := baseQuery.Scopes(Paginate(c)).Order("razon_social").Find(&proveedores).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "No se pudo obtener los proveedores"})
		return
	}

	if proveedores == nil {
		proveedores = make([]models.Proveedor, 0)
	}
	c.JSON(http.StatusOK, listResponse(c, "proveedores", proveedores, totalRows))
}

func GetProveedorHandler(c *gin.Context) {
	var proveedor models.Proveedor
	if err := config.DB.First(&proveedor, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Proveedor no encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Error al obtener el proveedor"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "proveedor": proveedor})
}

func CreateProveedorHandler(c *gin.Context) {
	var input ProveedorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "La razón social es requerida"})
		return
	}

	proveedor := models.Proveedor{
		RazonSocial: input.RazonSocial,
		RFC:         input.RFC,
		Telefono:    input.Telefono,
		Email:       input.Email,
		Direccion:   input.Direccion,
	}
	if err := config.DB.Create(&proveedor).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "No se pudo crear el proveedor: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "id": proveedor.ID, "proveedor": proveedor})
}

func UpdateProveedorHandler(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "ID de proveedor inválido"})
		return
	}

	var proveedor models.Proveedor
	if err := config.DB.First(&proveedor, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Proveedor no encontrado"})
		return
	}

	var input ProveedorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "La razón social es requerida"})
		return
	}

	proveedor.RazonSocial = input.RazonSocial
	proveedor.RFC = input.RFC
	proveedor.Telefono = input.Telefono
	proveedor.Email = input.Email
	proveedor.Direccion = input.Direccion

	if err := config.DB.Save(&proveedor).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "No se pudo actualizar el proveedor"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "proveedor": proveedor})
}

func DeleteProveedorHandler(c *gin.Context) {
	var count int64
	config.DB.Model(&models.Compra{}).Where("proveedor_id = ?", c.Param("id")).Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"success": false, "error": "El proveedor tiene compras registradas"})
		return
	}
	if err := config.DB.Delete(&models.Proveedor{}, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "No se pudo eliminar el proveedor"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
