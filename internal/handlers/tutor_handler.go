// internal/handlers/tutor_handler.go
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

type TutorInput struct {
	Nombre           string `json:"nombre" binding:"required"`
	ApellidoPaterno  string `json:"apellidoPaterno" binding:"required"`
	ApellidoMaterno  string `json:"apellidoMaterno"`
	CURP             string `json:"curp"`
	Telefono         string `json:"telefono" binding:"required"`
	Email            string `json:"email"`
	Parentesco       string `json:"parentesco"`
	DocumentosStatus string `json:"documentosStatus"`
}

func ListTutoresHandler(c *gin.Context) {
	var tutores []models.Tutor
	var totalRows int64

	baseQuery := config.DB.Model(&models.Tutor{})
	if search := c.Query("search"); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		baseQuery = baseQuery.Where(
			"LOWER(nombre) LIKE ? OR LOWER(apellido_paterno) LIKE ? OR LOWER(curp) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	if err := baseQuery.Count(&totalRows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "No se pudo contar los tutores"})
		return
	}
	if err := baseQuery.Scopes(Paginate(c)).Order("apellido_paterno, nombre").Find(&tutores).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "No se pudo obtener la lista de tutores"})
		return
	}

	if tutores == nil {
		tutores = make([]models.Tutor, 0)
	}
	c.JSON(http.StatusOK, listResponse(c, "tutores", tutores, totalRows))
}

func GetTutorHandler(c *gin.Context) {
	var tutor models.Tutor
	if err := config.DB.First(&tutor, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Tutor no encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Error al obtener el tutor"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "tutor": tutor})
}

func CreateTutorHandler(c *gin.Context) {
	var input TutorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Nombre, apellido paterno y teléfono son requeridos"})
		return
	}

	tutor := models.Tutor{
		Nombre:          input.Nombre,
		ApellidoPaterno: input.ApellidoPaterno,
		ApellidoMaterno: input.ApellidoMaterno,
		CURP:            input.CURP,
		Telefono:        input.Telefono,
		Email:           input.Email,
		Parentesco:      input.Parentesco,
	}
	if input.DocumentosStatus != "" {
		tutor.DocumentosStatus = input.DocumentosStatus
	}

	if err := config.DB.Create(&tutor).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "No se pudo crear el tutor: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "id": tutor.ID, "tutor": tutor})
}

func UpdateTutorHandler(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "ID de tutor inválido"})
		return
	}

	var tutor models.Tutor
	if err := config.DB.First(&tutor, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Tutor no encontrado"})
		return
	}

	var input TutorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Nombre, apellido paterno y teléfono son requeridos"})
		return
	}

	tutor.Nombre = input.Nombre
	tutor.ApellidoPaterno = input.ApellidoPaterno
	tutor.ApellidoMaterno = input.ApellidoMaterno
	tutor.CURP = input.CURP
	tutor.Telefono = input.Telefono
	tutor.Email = input.Email
	tutor.Parentesco = input.Parentesco
	if input.DocumentosStatus != "" {
		tutor.DocumentosStatus = input.DocumentosStatus
	}

	if err := config.DB.Save(&tutor).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "No se pudo actualizar el tutor: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "tutor": tutor})
}
