// internal/handlers/compra_handler.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/BimaSantiago/GymSerra-sub000/config"
	"github.com/BimaSantiago/GymSerra-sub000/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CompraInput carries a purchase header plus its lines. The supplier may be
// an existing one (proveedorId) or a new one created in the same transaction
// (the new-supplier flow of the purchases screen).
type CompraInput struct {
	ProveedorID    *uint           `json:"proveedorId"`
	NuevoProveedor *ProveedorInput `json:"nuevoProveedor"`
	Fecha          string          `json:"fecha"`
	Detalles       []struct {
		ArticuloID     uint   `json:"articuloId" binding:"required"`
		Cantidad       int    `json:"cantidad" binding:"required"`
		PrecioUnitario string `json:"precioUnitario" binding:"required"`
	} `json:"detalles" binding:"required"`
}

func ListComprasHandler(c *gin.Context) {
	var compras []models.Compra
	var totalRows int64

	baseQuery := config.DB.Model(&models.Compra{}).
		Joins("JOIN proveedors ON proveedors.id = compras.proveedor_id").
		Preload("Proveedor").Preload("Detalles.Articulo")

	if search := c.Query("search"); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		baseQuery = baseQuery.Where("LOWER(proveedors.razon_social) LIKE ?", pattern)
	}

	if err := baseQuery.Count(&totalRows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "No se pudo contar las compras"})
		return
	}
	if err := baseQuery.Scopes(Paginate(c)).Order("compras.fecha desc").Find(&compras).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "No se pudo obtener las compras"})
		return
	}

	if compras == nil {
		compras = make([]models.Compra, 0)
	}
	c.JSON(http.StatusOK, listResponse(c, "compras", compras, totalRows))
}

func GetCompraHandler(c *gin.Context) {
	var compra models.Compra
	if err := config.DB.Preload("Proveedor").Preload("Detalles.Articulo").First(&compra, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Compra no encontrada"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Error al obtener la compra"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "compra": compra})
}

// CreateCompraHandler registers a purchase. Supplier creation (when inline),
// the header, the detail lines and the stock increments commit in a single
// transaction.
func CreateCompraHandler(c *gin.Context) {
	var input CompraInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Se requiere al menos un detalle de compra"})
		return
	}
	if len(input.Detalles) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Se requiere al menos un detalle de compra"})
		return
	}
	if input.ProveedorID == nil && (input.NuevoProveedor == nil || input.NuevoProveedor.RazonSocial == "") {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Se requiere un proveedor existente o los datos de uno nuevo"})
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
	var compra models.Compra

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		proveedorID := input.ProveedorID
		if proveedorID == nil {
			proveedor := models.Proveedor{
				RazonSocial: input.NuevoProveedor.RazonSocial,
				RFC:         input.NuevoProveedor.RFC,
				Telefono:    input.NuevoProveedor.Telefono,
				Email:       input.NuevoProveedor.Email,
				Direccion:   input.NuevoProveedor.Direccion,
			}
			if err := tx.Create(&proveedor).Error; err != nil {
				return fmt.Errorf("no se pudo registrar el proveedor: %w", err)
			}
			proveedorID = &proveedor.ID
		} else {
			var existing models.Proveedor
			if err := tx.First(&existing, *proveedorID).Error; err != nil {
				return errors.New("el proveedor indicado no existe")
			}
		}

		total := decimal.Zero
		var detalles []models.CompraDetalle
		for _, d := range input.Detalles {
			if d.Cantidad <= 0 {
				return errors.New("la cantidad de cada detalle debe ser mayor a cero")
			}
			precio, err := decimal.NewFromString(d.PrecioUnitario)
			if err != nil || precio.IsNegative() {
				return errors.New("precio unitario inválido")
			}

			var articulo models.Articulo
			if err := tx.First(&articulo, d.ArticuloID).Error; err != nil {
				return fmt.Errorf("el artículo %d no existe", d.ArticuloID)
			}

			subtotal := precio.Mul(decimal.NewFromInt(int64(d.Cantidad)))
			total = total.Add(subtotal)
			detalles = append(detalles, models.CompraDetalle{
				ArticuloID:     d.ArticuloID,
				Cantidad:       d.Cantidad,
				PrecioUnitario: precio,
				Subtotal:       subtotal,
			})

			if err := tx.Model(&articulo).Update("stock", gorm.Expr("stock + ?", d.Cantidad)).Error; err != nil {
				return fmt.Errorf("no se pudo actualizar el stock del artículo %d", d.ArticuloID)
			}
		}

		compra = models.Compra{
			ProveedorID: *proveedorID,
			Fecha:       fecha,
			Total:       total,
			Detalles:    detalles,
		}
		if userID != 0 {
			compra.UsuarioID = &userID
		}
		return tx.Create(&compra).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "id": compra.ID, "compra": compra})
}
