// gymserra/models/evento.go

package models

import (
	"time"

	"gorm.io/gorm"
)

// Evento is a gym event (tournament, exhibition, open class) shown on the
// public site and the dashboard calendar.
type Evento struct {
	gorm.Model
	Titulo      string     `json:"titulo" gorm:"not null"`
	Descripcion string     `json:"descripcion"`
	Lugar       string     `json:"lugar"`
	DeporteID   *uint      `json:"deporteId"`
	FechaInicio time.Time  `json:"fechaInicio" gorm:"not null"`
	FechaFin    *time.Time `json:"fechaFin"`
	TodoElDia   *bool      `json:"todoElDia" gorm:"default:false"`
	ImagenURL   string     `json:"imagenUrl"`

	Deporte *Deporte `gorm:"foreignKey:DeporteID" json:"deporte,omitempty"`
}

// Noticia is a news post for the public site.
type Noticia struct {
	gorm.Model
	Titulo           string    `json:"titulo" gorm:"not null"`
	Contenido        string    `json:"contenido" gorm:"not null"`
	FechaPublicacion time.Time `json:"fechaPublicacion" gorm:"not null"`
	ImagenURL        string    `json:"imagenUrl"`
	AutorID          *uint     `json:"autorId"`

	Autor *Usuario `gorm:"foreignKey:AutorID" json:"autor,omitempty"`
}
