// internal/handlers/mensualidad_handler.go
package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/BimaSantiago/GymSerra-sub000/config"
	"github.com/BimaSantiago/GymSerra-sub000/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type MensualidadInput struct {
	AlumnoID   uint   `json:"alumnoId" binding:"required"`
	PlanID     uint   `json:"planId" binding:"required"`
	FechaPago  string `json:"fechaPago"`
	MontoPago  string `json:"montoPago"` // optional; tier price applies when empty
	Status     string `json:"status"`
	MetodoPago string `json:"metodoPago"`
}

// ListMensualidadesHandler returns paginated payments; search matches the
// student's name or CURP through a join.
func ListMensualidadesHandler(c *gin.Context) {
	var mensualidades []models.Mensualidad
	var totalRows int64

	baseQuery := config.DB.Model(&models.Mensualidad{}).
		Joins("JOIN alumnos ON alumnos.id = mensualidads.alumno_id").
		Preload("Alumno").Preload("Plan.Deporte")

	if search := c.Query("search"); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		baseQuery = baseQuery.Where(
			"LOWER(alumnos.nombre) LIKE ? OR LOWER(alumnos.apellido_paterno) LIKE ? OR LOWER(alumnos.curp) LIKE ?",
			pattern, pattern, pattern,
		)
	}
	if status := c.Query("status"); status != "" {
		baseQuery = baseQuery.Where("mensualidads.status = ?", status)
	}

	if err := baseQuery.Count(&totalRows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "No se pudo contar las mensualidades"})
		return
	}
	if err := baseQuery.Scopes(Paginate(c)).Order("mensualidads.fecha_pago desc").Find(&mensualidades).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "No se pudo obtener las mensualidades"})
		return
	}

	if mensualidades == nil {
		mensualidades = make([]models.Mensualidad, 0)
	}
	c.JSON(http.StatusOK, listResponse(c, "mensualidades", mensualidades, totalRows))
}

func GetMensualidadHandler(c *gin.Context) {
	var m models.Mensualidad
	if err := config.DB.Preload("Alumno").Preload("Plan.Deporte").First(&m, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Mensualidad no encontrada"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Error al obtener la mensualidad"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "mensualidad": m})
}

// CreateMensualidadHandler registers a payment. When no explicit amount comes
// in, the plan tier for the payment date applies. The student's last-payment
// and due dates advance in the same transaction.
func CreateMensualidadHandler(c *gin.Context) {
	var input MensualidadInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Alumno y plan son requeridos"})
		return
	}

	fechaPago := time.Now()
	if input.FechaPago != "" {
		t, err := time.Parse("2006-01-02", input.FechaPago)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Fecha de pago inválida, se espera AAAA-MM-DD"})
			return
		}
		fechaPago = t
	}

	var alumno models.Alumno
	if err := config.DB.First(&alumno, input.AlumnoID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "El alumno indicado no existe"})
		return
	}
	var plan models.PlanPago
	if err := config.DB.First(&plan, input.PlanID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "El plan indicado no existe"})
		return
	}

	monto := CostoMensualidad(&plan, fechaPago)
	if input.MontoPago != "" {
		m, err := decimal.NewFromString(input.MontoPago)
		if err != nil || m.IsNegative() {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Monto de pago inválido"})
			return
		}
		monto = m
	}

	mensualidad := models.Mensualidad{
		AlumnoID:  input.AlumnoID,
		PlanID:    input.PlanID,
		FechaPago: fechaPago,
		MontoPago: monto,
		Status:    "pagada",
	}
	if input.Status != "" {
		mensualidad.Status = input.Status
	}
	if input.MetodoPago != "" {
		mensualidad.MetodoPago = input.MetodoPago
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&mensualidad).Error; err != nil {
			return err
		}
		if mensualidad.Status == "pagada" {
			vencimiento := fechaPago.AddDate(0, 1, 0)
			return tx.Model(&alumno).Updates(map[string]interface{}{
				"fecha_ultimo_pago": fechaPago,
				"fecha_vencimiento": vencimiento,
			}).Error
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "No se pudo registrar la mensualidad: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "id": mensualidad.ID, "mensualidad": mensualidad})
}

// UpdateMensualidadHandler edits status, method or amount of a payment.
func UpdateMensualidadHandler(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "ID de mensualidad inválido"})
		return
	}

	var m models.Mensualidad
	if err := config.DB.First(&m, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Mensualidad no encontrada"})
		return
	}

	var input struct {
		MontoPago  string `json:"montoPago"`
		Status     string `json:"status"`
		MetodoPago string `json:"metodoPago"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Datos inválidos"})
		return
	}

	if input.MontoPago != "" {
		monto, err := decimal.NewFromString(input.MontoPago)
		if err != nil || monto.IsNegative() {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Monto de pago inválido"})
			return
		}
		m.MontoPago = monto
	}
	if input.Status != "" {
		m.Status = input.Status
	}
	if input.MetodoPago != "" {
		m.MetodoPago = input.MetodoPago
	}

	if err := config.DB.Save(&m).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "No se pudo actualizar la mensualidad"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "mensualidad": m})
}

// ExportMensualidadesHandler streams the payment register as an xlsx file.
// Optional desde/hasta (AAAA-MM-DD) bound the payment date.
func ExportMensualidadesHandler(c *gin.Context) {
	query := config.DB.Preload("Alumno").Preload("Plan.Deporte").Order("fecha_pago")

	if desde := c.Query("desde"); desde != "" {
		if t, err := time.Parse("2006-01-02", desde); err == nil {
			query = query.Where("fecha_pago >= ?", t)
		}
	}
	if hasta := c.Query("hasta"); hasta != "" {
		if t, err := time.Parse("2006-01-02", hasta); err == nil {
			query = query.Where("fecha_pago <= ?", t.AddDate(0, 0, 1))
		}
	}

	var mensualidades []models.Mensualidad
	if err := query.Find(&mensualidades).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "No se pudo obtener las mensualidades"})
		return
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Mensualidades"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Fecha", "Alumno", "CURP", "Deporte", "Monto", "Estatus", "Método"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, m := range mensualidades {
		nombre, curp, deporte := "", "", ""
		if m.Alumno != nil {
			nombre = m.Alumno.Nombre + " " + m.Alumno.ApellidoPaterno
			curp = m.Alumno.CURP
		}
		if m.Plan != nil && m.Plan.Deporte != nil {
			deporte = m.Plan.Deporte.Nombre
		}
		values := []interface{}{
			m.FechaPago.Format("2006-01-02"),
			nombre, curp, deporte,
			m.MontoPago.InexactFloat64(),
			m.Status, m.MetodoPago,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=mensualidades_%s.xlsx", time.Now().Format("20060102")))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		slog.Error("Failed to write payments export", "error", err)
	}
}
