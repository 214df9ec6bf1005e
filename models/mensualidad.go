// gymserra/models/mensualidad.go

package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PlanPago is a pricing plan for a discipline. The three costs form the
// day-of-month tiers applied when a monthly payment is registered: paying by
// the 10th gets the promotional price, by the 20th the base price, and later
// the price with late fee.
type PlanPago struct {
	gorm.Model
	DeporteID      uint            `json:"deporteId" gorm:"not null"`
	DiasPorSemana  int             `json:"diasPorSemana" gorm:"not null"`
	CostoBase      decimal.Decimal `json:"costoBase" gorm:"type:decimal(10,2);not null"`
	CostoPromocion decimal.Decimal `json:"costoPromocion" gorm:"type:decimal(10,2);not null"`
	CostoRecargo   decimal.Decimal `json:"costoRecargo" gorm:"type:decimal(10,2);not null"`

	Deporte *Deporte `gorm:"foreignKey:DeporteID" json:"deporte,omitempty"`
}

// Mensualidad is one monthly payment by a student under a plan.
type Mensualidad struct {
	gorm.Model
	AlumnoID   uint            `json:"alumnoId" gorm:"not null"`
	PlanID     uint            `json:"planId" gorm:"not null"`
	FechaPago  time.Time       `json:"fechaPago" gorm:"not null"`
	MontoPago  decimal.Decimal `json:"montoPago" gorm:"type:decimal(10,2);not null"`
	Status     string          `json:"status" gorm:"default:'pagada'"` // pagada / pendiente
	MetodoPago string          `json:"metodoPago" gorm:"default:'efectivo'"`

	Alumno *Alumno   `gorm:"foreignKey:AlumnoID" json:"alumno,omitempty"`
	Plan   *PlanPago `gorm:"foreignKey:PlanID" json:"plan,omitempty"`
}
