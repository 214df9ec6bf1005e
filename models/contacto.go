// gymserra/models/contacto.go

package models

import "gorm.io/gorm"

// Contacto is a message submitted through the public contact form.
type Contacto struct {
	gorm.Model
	Nombre    string `json:"nombre" gorm:"not null"`
	Email     string `json:"email" gorm:"not null"`
	Telefono  string `json:"telefono"`
	Edad      int    `json:"edad"`
	DeporteID *uint  `json:"deporteId"`
	Mensaje   string `json:"mensaje" gorm:"not null"`
	Atendido  *bool  `json:"atendido" gorm:"default:false"`

	Deporte *Deporte `gorm:"foreignKey:DeporteID" json:"deporte,omitempty"`
}
