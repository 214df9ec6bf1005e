// internal/handlers/ajuste_handler.go
package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/BimaSantiago/GymSerra-sub000/config"
	"github.com/BimaSantiago/GymSerra-sub000/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AjusteInput struct {
	ArticuloID uint   `json:"articuloId" binding:"required"`
	Tipo       string `json:"tipo" binding:"required"` // entrada / salida
	Cantidad   int    `json:"cantidad" binding:"required"`
	Motivo     string `json:"motivo" binding:"required"`
	Fecha      string `json:"fecha"`
}

func ListAjustesHandler(c *gin.Context) {
	var ajustes []models.Ajuste
	var totalRows int64

	baseQuery := config.DB.Model(&models.Ajuste{}).
		Joins("JOIN articulos ON articulos.id = ajustes.articulo_id").
		Preload("Articulo")

	if search := c.Query("search"); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		baseQuery = baseQuery.Where("LOWER(articulos.nombre) LIKE ? OR LOWER(ajustes.motivo) LIKE ?", pattern, pattern)
	}

	if err := baseQuery.Count(&totalRows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "No se pudo contar los ajustes"})
		return
	}
	if err := baseQuery.Scopes(Paginate(c)).Order("ajustes.fecha desc").Find(&ajustes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "No se pudo obtener los ajustes"})
		return
	}

	if ajustes == nil {
		ajustes = make([]models.Ajuste, 0)
	}
	c.JSON(http.StatusOK, listResponse(c, "ajustes", ajustes, totalRows))
}

// CreateAjusteHandler applies a manual stock correction. An adjustment that
// would leave negative stock is rejected.
func CreateAjusteHandler(c *gin.Context) {
	var input AjusteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Artículo, tipo, cantidad y motivo son requeridos"})
		return
	}
	if input.Tipo != "entrada" && input.Tipo != "salida" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "El tipo debe ser entrada o salida"})
		return
	}
	if input.Cantidad <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "La cantidad debe ser mayor a cero"})
		return
	}

	fecha := time.Now()
	if input.Fecha != "" {
		t, err := time.Parse("2006-01-02", input.Fecha)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Fecha inválida, se espera AAAA-MM-DD"})
			return
		}
		fecha = t
	}

	userID := c.GetUint("user_id")
	var ajuste models.Ajuste

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var articulo models.Articulo
		if err := tx.First(&articulo, input.ArticuloID).Error; err != nil {
			return errors.New("el artículo indicado no existe")
		}

		if input.Tipo == "salida" {
			if err := descontarStock(tx, input.ArticuloID, input.Cantidad); err != nil {
				return err
			}
		} else if err := tx.Model(&articulo).Update("stock", gorm.Expr("stock + ?", input.Cantidad)).Error; err != nil {
			return err
		}

		ajuste = models.Ajuste{
			ArticuloID: input.ArticuloID,
			Tipo:       input.Tipo,
			Cantidad:   input.Cantidad,
			Motivo:     input.Motivo,
			Fecha:      fecha,
		}
		if userID != 0 {
			ajuste.UsuarioID = &userID
		}
		return tx.Create(&ajuste).Error
	})
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "id": ajuste.ID, "ajuste": ajuste})
}
