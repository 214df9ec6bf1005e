// internal/handlers/articulo_handler.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/BimaSantiago/GymSerra-sub000/config"
	"github.com/BimaSantiago/GymSerra-sub000/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ListArticulosHandler returns a paginated catalog page; search matches name,
// barcode and description.
func ListArticulosHandler(c *gin.Context) {
	var articulos []models.Articulo
	var totalRows int64

	baseQuery := config.DB.Model(&models.Articulo{}).Preload("Categoria").Preload("Unidad")

	if search := c.Query("search"); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		baseQuery = baseQuery.Where(
			"LOWER(nombre) LIKE ? OR LOWER(codigo_barras) LIKE ? OR LOWER(descripcion) LIKE ?",
			pattern, pattern, pattern,
		)
	}
	if categoriaID := c.Query("categoriaId"); categoriaID != "" {
		if id, err := strconv.Atoi(categoriaID); err == nil {
			baseQuery = baseQuery.Where("categoria_id = ?", id)
		}
	}
	// bajoStock=true narrows to articles at or below their minimum.
	if c.Query("bajoStock") == "true" {
		baseQuery = baseQuery.Where("stock <= stock_minimo")
	}

	if err := baseQuery.Count(&totalRows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "No se pudo contar los artículos"})
		return
	}
	if err := baseQuery.Scopes(Paginate(c)).Order("nombre").Find(&articulos).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "No se pudo obtener los artículos"})
		return
	}

	if articulos == nil {
		articulos = make([]models.Articulo, 0)
	}
	c.JSON(http.StatusOK, listResponse(c, "articulos", articulos, totalRows))
}

func GetArticuloHandler(c *gin.Context) {
	var articulo models.Articulo
	if err := config.DB.Preload("Categoria").Preload("Unidad").First(&articulo, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Artículo no encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Error al obtener el artículo"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "articulo": articulo})
}

// CreateArticuloHandler creates an article from multipart form data (the
// form may carry an image). Without an explicit precioVenta the recommended
// price from cost, margin and IVA applies.
func CreateArticuloHandler(c *gin.Context) {
	var articulo models.Articulo
	if err := bindArticuloFormData(c, &articulo); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if err := checkCodigoBarrasDisponible(articulo.CodigoBarras, 0); err != nil {
		c.JSON(http.StatusConflict, gin.H{"success": false, "error": err.Error()})
		return
	}

	if imagenURL, err := saveUploadedImage(c, "articulos", "imagen"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Imagen inválida: " + err.Error()})
		return
	} else if imagenURL != "" {
		articulo.ImagenURL = imagenURL
	}

	if err := config.DB.Create(&articulo).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "No se pudo crear el artículo: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "id": articulo.ID, "articulo": articulo})
}

func UpdateArticuloHandler(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "ID de artículo inválido"})
		return
	}

	var articulo models.Articulo
	if err := config.DB.First(&articulo, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Artículo no encontrado"})
		return
	}

	oldCodigo := articulo.CodigoBarras
	if err := bindArticuloFormData(c, &articulo); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if articulo.CodigoBarras != oldCodigo {
		if err := checkCodigoBarrasDisponible(articulo.CodigoBarras, articulo.ID); err != nil {
			c.JSON(http.StatusConflict, gin.H{"success": false, "error": err.Error()})
			return
		}
	}

	if imagenURL, err := saveUploadedImage(c, "articulos", "imagen"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Imagen inválida: " + err.Error()})
		return
	} else if imagenURL != "" {
		articulo.ImagenURL = imagenURL
	}

	if err := config.DB.Save(&articulo).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "No se pudo actualizar el artículo: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "articulo": articulo})
}

// --- helpers ---

func checkCodigoBarrasDisponible(codigo string, selfID uint) error {
	if codigo == "" {
		return nil
	}
	var existing models.Articulo
	query := config.DB.Where("codigo_barras = ?", codigo)
	if selfID != 0 {
		query = query.Where("id != ?", selfID)
	}
	if err := query.First(&existing).Error; err == nil {
		return errors.New("Ya existe un artículo con ese código de barras")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return errors.New("Error al verificar el código de barras")
	}
	return nil
}

func bindArticuloFormData(c *gin.Context, a *models.Articulo) error {
	a.Nombre = c.PostForm("nombre")
	if a.Nombre == "" {
		return errors.New("El nombre del artículo es requerido")
	}
	a.CodigoBarras = c.PostForm("codigoBarras")
	a.Descripcion = c.PostForm("descripcion")

	if s := c.PostForm("categoriaId"); s != "" {
		if val, err := strconv.ParseUint(s, 10, 64); err == nil {
			v := uint(val)
			a.CategoriaID = &v
		}
	}
	if s := c.PostForm("unidadId"); s != "" {
		if val, err := strconv.ParseUint(s, 10, 64); err == nil {
			v := uint(val)
			a.UnidadID = &v
		}
	}
	if s := c.PostForm("stock"); s != "" {
		val, err := strconv.Atoi(s)
		if err != nil || val < 0 {
			return errors.New("Stock inválido")
		}
		a.Stock = val
	}
	if s := c.PostForm("stockMinimo"); s != "" {
		if val, err := strconv.Atoi(s); err == nil && val >= 0 {
			a.StockMinimo = val
		}
	}

	costo, err := decimal.NewFromString(c.PostForm("costo"))
	if err != nil || costo.IsNegative() {
		return errors.New("Costo inválido")
	}
	a.Costo = costo

	if s := c.PostForm("margenPct"); s != "" {
		margen, err := decimal.NewFromString(s)
		if err != nil || margen.IsNegative() {
			return errors.New("Margen inválido")
		}
		a.MargenPct = margen
	}

	aplicaIVA, err := strconv.ParseBool(c.PostForm("aplicaIva"))
	if err == nil {
		a.AplicaIVA = &aplicaIVA
	} else if a.AplicaIVA == nil {
		b := false
		a.AplicaIVA = &b
	}

	if s := c.PostForm("precioVenta"); s != "" {
		precio, err := decimal.NewFromString(s)
		if err != nil || precio.IsNegative() {
			return errors.New("Precio de venta inválido")
		}
		a.PrecioVenta = precio
	} else {
		a.PrecioVenta = PrecioRecomendado(a.Costo, a.MargenPct, a.AplicaIVA != nil && *a.AplicaIVA)
	}
	return nil
}
