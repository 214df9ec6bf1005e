// internal/handlers/venta_handler.go
package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/BimaSantiago/GymSerra-sub000/config"
	"github.com/BimaSantiago/GymSerra-sub000/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type VentaInput struct {
	Fecha    string `json:"fecha"`
	Detalles []struct {
		ArticuloID     uint   `json:"articuloId" binding:"required"`
		Cantidad       int    `json:"cantidad" binding:"required"`
		PrecioUnitario string `json:"precioUnitario"` // defaults to the article's sale price
	} `json:"detalles" binding:"required"`
}

func ListVentasHandler(c *gin.Context) {
	var ventas []models.Venta
	var totalRows int64

	baseQuery := config.DB.Model(&models.Venta{}).Preload("Detalles.Articulo")

	if desde := c.Query("desde"); desde != "" {
		if t, err := time.Parse("2006-01-02", desde); err == nil {
			baseQuery = baseQuery.Where("fecha >= ?", t)
		}
	}
	if hasta := c.Query("hasta"); hasta != "" {
		if t, err := time.Parse("2006-01-02", hasta); err == nil {
			baseQuery = baseQuery.Where("fecha < ?", t.AddDate(0, 0, 1))
		}
	}

	if err := baseQuery.Count(&totalRows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "No se pudo contar las ventas"})
		return
	}
	if err := baseQuery.Scopes(Paginate(c)).Order("fecha desc").Find(&ventas).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "No se pudo obtener las ventas"})
		return
	}

	if ventas == nil {
		ventas = make([]models.Venta, 0)
	}
	c.JSON(http.StatusOK, listResponse(c, "ventas", ventas, totalRows))
}

func GetVentaHandler(c *gin.Context) {
	var venta models.Venta
	if err := config.DB.Preload("Detalles.Articulo").First(&venta, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Venta no encontrada"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Error al obtener la venta"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "venta": venta})
}

// CreateVentaHandler registers a sale. Stock is checked and decremented per
// line inside the transaction; any shortage aborts the whole sale.
func CreateVentaHandler(c *gin.Context) {
	var input VentaInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Se requiere al menos un detalle de venta"})
		return
	}
	if len(input.Detalles) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Se requiere al menos un detalle de venta"})
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
	var venta models.Venta

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		total := decimal.Zero
		var detalles []models.VentaDetalle

		for _, d := range input.Detalles {
			if d.Cantidad <= 0 {
				return errors.New("la cantidad de cada detalle debe ser mayor a cero")
			}

			var articulo models.Articulo
			if err := tx.First(&articulo, d.ArticuloID).Error; err != nil {
				return fmt.Errorf("el artículo %d no existe", d.ArticuloID)
			}

			precio := articulo.PrecioVenta
			if d.PrecioUnitario != "" {
				p, err := decimal.NewFromString(d.PrecioUnitario)
				if err != nil || p.IsNegative() {
					return errors.New("precio unitario inválido")
				}
				precio = p
			}

			subtotal := precio.Mul(decimal.NewFromInt(int64(d.Cantidad)))
			total = total.Add(subtotal)
			detalles = append(detalles, models.VentaDetalle{
				ArticuloID:     d.ArticuloID,
				Cantidad:       d.Cantidad,
				PrecioUnitario: precio,
				Subtotal:       subtotal,
			})

			if err := descontarStock(tx, d.ArticuloID, d.Cantidad); err != nil {
				return err
			}
		}

		venta = models.Venta{Fecha: fecha, Total: total, Detalles: detalles}
		if userID != 0 {
			venta.UsuarioID = &userID
		}
		return tx.Create(&venta).Error
	})
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "id": venta.ID, "venta": venta})
}

// ExportVentasHandler streams the sales register as an xlsx file, one row
// per detail line.
func ExportVentasHandler(c *gin.Context) {
	query := config.DB.Preload("Detalles.Articulo").Order("fecha")

	if desde := c.Query("desde"); desde != "" {
		if t, err := time.Parse("2006-01-02", desde); err == nil {
			query = query.Where("fecha >= ?", t)
		}
	}
	if hasta := c.Query("hasta"); hasta != "" {
		if t, err := time.Parse("2006-01-02", hasta); err == nil {
			query = query.Where("fecha < ?", t.AddDate(0, 0, 1))
		}
	}

	var ventas []models.Venta
	if err := query.Find(&ventas).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "No se pudo obtener las ventas"})
		return
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Ventas"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Folio", "Fecha", "Artículo", "Cantidad", "Precio", "Subtotal", "Total venta"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, v := range ventas {
		for _, d := range v.Detalles {
			nombre := ""
			if d.Articulo != nil {
				nombre = d.Articulo.Nombre
			}
			values := []interface{}{
				v.ID,
				v.Fecha.Format("2006-01-02"),
				nombre,
				d.Cantidad,
				d.PrecioUnitario.InexactFloat64(),
				d.Subtotal.InexactFloat64(),
				v.Total.InexactFloat64(),
			}
			for col, val := range values {
				cell, _ := excelize.CoordinatesToCellName(col+1, row)
				f.SetCellValue(sheet, cell, val)
			}
			row++
		}
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=ventas_%s.xlsx", time.Now().Format("20060102")))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		slog.Error("Failed to write sales export", "error", err)
	}
}
