// gymserra/models/deporte.go

package models

import "gorm.io/gorm"

// Deporte is a discipline offered by the gym (box, karate, zumba...).
// Color is the hex color used for this discipline's calendar entries.
type Deporte struct {
	gorm.Model
	Nombre string `json:"nombre" gorm:"unique;not null"`
	Color  string `json:"color" gorm:"default:'#3788d8'"`
	Activo *bool  `json:"activo" gorm:"default:true"`
}

// Horario is a weekly class slot for a discipline, shown on the public
// schedule page. Dia is 0-6 starting on Sunday, times are "HH:MM".
type Horario struct {
	gorm.Model
	DeporteID  uint   `json:"deporteId" gorm:"not null"`
	Dia        int    `json:"dia" gorm:"not null"`
	HoraInicio string `json:"horaInicio" gorm:"not null"`
	HoraFin    string `json:"horaFin" gorm:"not null"`
	Cupo       int    `json:"cupo" gorm:"default:20"`
	Instructor string `json:"instructor"`

	Deporte *Deporte `gorm:"foreignKey:DeporteID" json:"deporte,omitempty"`
}
