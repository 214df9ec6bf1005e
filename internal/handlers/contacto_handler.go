// internal/handlers/contacto_handler.go
package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/BimaSantiago/GymSerra-sub000/config"
	"github.com/BimaSantiago/GymSerra-sub000/models"

	"github.com/gin-gonic/gin"
)

// Age bounds accepted on the public contact form.
const (
	EdadMinima = 3
	EdadMaxima = 100
)

type ContactoInput struct {
	Nombre    string `json:"nombre"`
	Email     string `json:"email"`
	Telefono  string `json:"telefono"`
	Edad      int    `json:"edad"`
	DeporteID *uint  `json:"deporteId"`
	Mensaje   string `json:"mensaje"`
}

// validarContacto applies the form's own rules: required fields plus the
// age range used by the gym's enrollment policy.
func validarContacto(in *ContactoInput) error {
	if strings.TrimSpace(in.Nombre) == "" || strings.TrimSpace(in.Email) == "" || strings.TrimSpace(in.Mensaje) == "" {
		return errors.New("Nombre, email y mensaje son requeridos")
	}
	if !strings.Contains(in.Email, "@") {
		return errors.New("El email no es válido")
	}
	if in.Edad < EdadMinima || in.Edad > EdadMaxima {
		return errors.New("La edad debe estar entre 3 y 100 años")
	}
	return nil
}

// CreateContactoHandler receives a message from the public contact form.
func CreateContactoHandler(c *gin.Context) {
	var input ContactoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Datos de contacto inválidos"})
		return
	}
	if err := validarContacto(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	contacto := models.Contacto{
		Nombre:    input.Nombre,
		Email:     input.Email,
		Telefono:  input.Telefono,
		Edad:      input.Edad,
		DeporteID: input.DeporteID,
		Mensaje:   input.Mensaje,
	}
	if err := config.DB.Create(&contacto).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "No se pudo enviar el mensaje"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "id": contacto.ID})
}

// ListContactosHandler lists received messages for the dashboard.
func ListContactosHandler(c *gin.Context) {
	var contactos []models.Contacto
	var totalRows int64

	baseQuery := config.DB.Model(&models.Contacto{}).Preload("Deporte")
	if c.Query("pendientes") == "true" {
		baseQuery = baseQuery.Where("atendido = false")
	}
	if search := c.Query("search"); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		baseQuery = baseQuery.Where("LOWER(nombre) LIKE ? OR LOWER(email) LIKE ?", pattern, pattern)
	}

	if err := baseQuery.Count(&totalRows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "No se pudo contar los mensajes"})
		return
	}
	if err := baseQuery.Scopes(Paginate(c)).Order("created_at desc").Find(&contactos).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "No se pudo obtener los mensajes"})
		return
	}

	if contactos == nil {
		contactos = make([]models.Contacto, 0)
	}
	c.JSON(http.StatusOK, listResponse(c, "contactos", contactos, totalRows))
}

// MarkContactoAtendidoHandler flags a message as handled.
func MarkContactoAtendidoHandler(c *gin.Context) {
	var contacto models.Contacto
	if err := config.DB.First(&contacto, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Mensaje no encontrado"})
		return
	}

	atendido := true
	contacto.Atendido = &atendido
	if err := config.DB.Save(&contacto).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "No se pudo actualizar el mensaje"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "contacto": contacto})
}
