// gymserra/models/alumno.go

package models

import (
	"time"

	"gorm.io/gorm"
)

// Tutor is the legal guardian of a minor student. Students over 18 may be
// enrolled without one.
type Tutor struct {
	gorm.Model
	Nombre           string `json:"nombre" gorm:"not null"`
	ApellidoPaterno  string `json:"apellidoPaterno" gorm:"not null"`
	ApellidoMaterno  string `json:"apellidoMaterno"`
	CURP             string `json:"curp" gorm:"unique"`
	Telefono         string `json:"telefono"`
	Email            string `json:"email"`
	Parentesco       string `json:"parentesco"`
	DocumentosStatus string `json:"documentosStatus" gorm:"default:'pendiente'"`
}

// Alumno is an enrolled student.
type Alumno struct {
	gorm.Model
	CURP            string     `json:"curp" gorm:"unique;not null"`
	Nombre          string     `json:"nombre" gorm:"not null"`
	ApellidoPaterno string     `json:"apellidoPaterno" gorm:"not null"`
	ApellidoMaterno string     `json:"apellidoMaterno"`
	FechaNacimiento *time.Time `json:"fechaNacimiento"`
	Sexo            string     `json:"sexo"`
	Telefono        string     `json:"telefono"`
	Email           string     `json:"email"`

	// activo / inactivo; students are never hard-deleted.
	Status           string `json:"status" gorm:"default:'activo'"`
	DocumentosStatus string `json:"documentosStatus" gorm:"default:'pendiente'"`

	// normal / promocion / beca, chosen on the last enrollment step.
	TipoInscripcion string `json:"tipoInscripcion" gorm:"default:'normal'"`

	// Payment tracking, maintained by the mensualidad handlers.
	FechaUltimoPago  *time.Time `json:"fechaUltimoPago"`
	FechaVencimiento *time.Time `json:"fechaVencimiento"`

	FotoURL   string `json:"fotoUrl"`
	TutorID   *uint  `json:"tutorId"`
	DeporteID *uint  `json:"deporteId"`

	Tutor   *Tutor   `gorm:"foreignKey:TutorID" json:"tutor,omitempty"`
	Deporte *Deporte `gorm:"foreignKey:DeporteID" json:"deporte,omitempty"`
}

// Edad returns the student's age in full years at the given instant, or -1
// when the birth date is unknown.
func (a *Alumno) Edad(now time.Time) int {
	if a.FechaNacimiento == nil {
		return -1
	}
	return EdadEnAnios(*a.FechaNacimiento, now)
}

// EdadEnAnios computes full years elapsed between birth and now.
func EdadEnAnios(birth, now time.Time) int {
	years := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		years--
	}
	return years
}
