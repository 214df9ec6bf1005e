// internal/handlers/pricing.go
package handlers

import (
	"time"

	"github.com/BimaSantiago/GymSerra-sub000/models"
	"github.com/shopspring/decimal"
)

// IVA rate applied to taxed articles.
var tasaIVA = decimal.NewFromFloat(0.16)

// CostoMensualidad picks the plan tier by the day of the payment date:
// through the 10th the promotional price applies, through the 20th the base
// price, afterwards the price with late fee.
func CostoMensualidad(plan *models.PlanPago, fechaPago time.Time) decimal.Decimal {
	day := fechaPago.Day()
	switch {
	case day <= 10:
		return plan.CostoPromocion
	case day <= 20:
		return plan.CostoBase
	default:
		return plan.CostoRecargo
	}
}

// PrecioRecomendado computes the suggested sale price:
// costo * (1 + margen/100), times 1.16 when the article is taxed.
// The result is rounded to 2 decimal places.
func PrecioRecomendado(costo, margenPct decimal.Decimal, aplicaIVA bool) decimal.Decimal {
	cien := decimal.NewFromInt(100)
	precio := costo.Mul(decimal.NewFromInt(1).Add(margenPct.Div(cien)))
	if aplicaIVA {
		precio = precio.Mul(decimal.NewFromInt(1).Add(tasaIVA))
	}
	return precio.Round(2)
}
