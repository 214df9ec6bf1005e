// internal/handlers/plan_handler.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/BimaSantiago/GymSerra-sub000/config"
	"github.com/BimaSantiago/GymSerra-sub000/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PlanPagoInput struct {
	DeporteID      uint   `json:"deporteId" binding:"required"`
	DiasPorSemana  int    `json:"diasPorSemana" binding:"required"`
	CostoBase      string `json:"costoBase" binding:"required"`
	CostoPromocion string `json:"costoPromocion" binding:"required"`
	CostoRecargo   string `json:"costoRecargo" binding:"required"`
}

func (in *PlanPagoInput) toModel() (*models.PlanPago, error) {
	if in.DiasPorSemana < 1 || in.DiasPorSemana > 7 {
		return nil, errors.New("Los días por semana deben estar entre 1 y 7")
	}

	base, err := decimal.NewFromString(in.CostoBase)
	if err != nil || base.IsNegative() {
		return nil, errors.New("Costo base inválido")
	}
	promo, err := decimal.NewFromString(in.CostoPromocion)
	if err != nil || promo.IsNegative() {
		return nil, errors.New("Costo de promoción inválido")
	}
	recargo, err := decimal.NewFromString(in.CostoRecargo)
	if err != nil || recargo.IsNegative() {
		return nil, errors.New("Costo con recargo inválido")
	}

	return &models.PlanPago{
		DeporteID:      in.DeporteID,
		DiasPorSemana:  in.DiasPorSemana,
		CostoBase:      base,
		CostoPromocion: promo,
		CostoRecargo:   recargo,
	}, nil
}

func ListPlanesHandler(c *gin.Context) {
	var planes []models.PlanPago
	var totalRows int64

	baseQuery := config.DB.Model(&models.PlanPago{}).Preload("Deporte")
	if deporteID := c.Query("deporteId"); deporteID != "" {
		if id, err := strconv.Atoi(deporteID); err == nil {
			baseQuery = baseQuery.Where("deporte_id = ?", id)
		}
	}

	if err := baseQuery.Count(&totalRows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "No se pudo contar los planes"})
		return
	}
	if err := baseQuery.Scopes(Paginate(c)).Order("deporte_id, dias_por_semana").Find(&planes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "No se pudo obtener los planes"})
		return
	}

	if planes == nil {
		planes = make([]models.PlanPago, 0)
	}
	c.JSON(http.StatusOK, listResponse(c, "planes", planes, totalRows))
}

func GetPlanHandler(c *gin.Context) {
	var plan models.PlanPago
	if err := config.DB.Preload("Deporte").First(&plan, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Plan no encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Error al obtener el plan"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "plan": plan})
}

func CreatePlanHandler(c *gin.Context) {
	var input PlanPagoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Todos los costos y el deporte son requeridos"})
		return
	}

	plan, err := input.toModel()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if err := config.DB.Create(plan).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "No se pudo crear el plan: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "id": plan.ID, "plan": plan})
}

func UpdatePlanHandler(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "ID de plan inválido"})
		return
	}

	var plan models.PlanPago
	if err := config.DB.First(&plan, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Plan no encontrado"})
		return
	}

	var input PlanPagoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Todos los costos y el deporte son requeridos"})
		return
	}

	updated, err := input.toModel()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	plan.DeporteID = updated.DeporteID
	plan.DiasPorSemana = updated.DiasPorSemana
	plan.CostoBase = updated.CostoBase
	plan.CostoPromocion = updated.CostoPromocion
	plan.CostoRecargo = updated.CostoRecargo

	if err := config.DB.Save(&plan).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "No se pudo actualizar el plan"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "plan": plan})
}
