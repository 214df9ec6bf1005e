package handlers

import (
	"testing"
	"time"

	"github.com/BimaSantiago/GymSerra-sub000/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func testPlan() *models.PlanPago {
	return &models.PlanPago{
		CostoBase:      decimal.NewFromInt(500),
		CostoPromocion: decimal.NewFromInt(450),
		CostoRecargo:   decimal.NewFromInt(550),
	}
}

func TestCostoMensualidadTiers(t *testing.T) {
	plan := testPlan()

	cases := []struct {
		day  int
		want decimal.Decimal
	}{
		{5, plan.CostoPromocion},
		{10, plan.CostoPromocion}, // boundary: last promo day
		{11, plan.CostoBase},
		{15, plan.CostoBase},
		{20, plan.CostoBase}, // boundary: last base day
		{21, plan.CostoRecargo},
		{25, plan.CostoRecargo},
	}
	for _, tc := range cases {
		fecha := time.Date(2025, time.March, tc.day, 0, 0, 0, 0, time.UTC)
		got := CostoMensualidad(plan, fecha)
		assert.True(t, tc.want.Equal(got), "day %d: want %s, got %s", tc.day, tc.want, got)
	}
}

func TestPrecioRecomendado(t *testing.T) {
	costo := decimal.NewFromInt(100)
	margen := decimal.NewFromInt(20)

	sinIVA := PrecioRecomendado(costo, margen, false)
	assert.True(t, decimal.NewFromInt(120).Equal(sinIVA), "got %s", sinIVA)

	// 100 * 1.20 * 1.16 = 139.20
	conIVA := PrecioRecomendado(costo, margen, true)
	assert.True(t, decimal.NewFromFloat(139.2).Equal(conIVA), "got %s", conIVA)
}

func TestPrecioRecomendadoRounds(t *testing.T) {
	// 99.99 * 1.155 = 115.48845 -> 115.49
	got := PrecioRecomendado(decimal.NewFromFloat(99.99), decimal.NewFromFloat(15.5), false)
	assert.True(t, decimal.NewFromFloat(115.49).Equal(got), "got %s", got)
}

func TestPrecioRecomendadoZeroMargin(t *testing.T) {
	got := PrecioRecomendado(decimal.NewFromInt(100), decimal.Zero, false)
	assert.True(t, decimal.NewFromInt(100).Equal(got), "got %s", got)
}
