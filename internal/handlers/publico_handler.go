// internal/handlers/publico_handler.go
package handlers

import (
	"net/http"
	"strings"

	"github.com/BimaSantiago/GymSerra-sub000/config"
	"github.com/BimaSantiago/GymSerra-sub000/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ProductoPublico is the storefront view of an article: sale price only,
// no cost or margin.
type ProductoPublico struct {
	ID          uint            `json:"id"`
	Nombre      string          `json:"nombre"`
	Descripcion string          `json:"descripcion"`
	Categoria   string          `json:"categoria"`
	Precio      decimal.Decimal `json:"precio"`
	ImagenURL   string          `json:"imagenUrl"`
}

// ListProductosPublicoHandler serves the public product catalog. Articles
// out of stock are not shown.
func ListProductosPublicoHandler(c *gin.Context) {
	var articulos []models.Articulo
	var totalRows int64

	baseQuery := config.DB.Model(&models.Articulo{}).Preload("Categoria").Where("stock > 0")
	if search := c.Query("search"); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		baseQuery = baseQuery.Where("LOWER(nombre) LIKE ?", pattern)
	}

	if err := baseQuery.Count(&totalRows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "No se pudo obtener los productos"})
		return
	}
	if err := baseQuery.Scopes(Paginate(c)).Order("nombre").Find(&articulos).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "No se pudo obtener los productos"})
		return
	}

	productos := make([]ProductoPublico, 0, len(articulos))
	for i := range articulos {
		a := &articulos[i]
		categoria := ""
		if a.Categoria != nil {
			categoria = a.Categoria.Nombre
		}
		productos = append(productos, ProductoPublico{
			ID:          a.ID,
			Nombre:      a.Nombre,
			Descripcion: a.Descripcion,
			Categoria:   categoria,
			Precio:      a.PrecioVenta,
			ImagenURL:   a.ImagenURL,
		})
	}

	c.JSON(http.StatusOK, listResponse(c, "productos", productos, totalRows))
}
