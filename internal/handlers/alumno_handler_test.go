package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// now fixed so age arithmetic in the tests is deterministic.
var ahora = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

func inscripcionBase(nacimiento string) *InscripcionInput {
	input := &InscripcionInput{}
	input.Alumno.Nombre = "Ana"
	input.Alumno.ApellidoPaterno = "García"
	input.Alumno.CURP = "GAGA080101MDFRRN01"
	input.Alumno.FechaNacimiento = nacimiento
	return input
}

func TestValidarInscripcionMenorSinTutor(t *testing.T) {
	// 17 years old at `ahora`: tutor data is mandatory.
	input := inscripcionBase("2008-01-01")

	_, err := validarInscripcion(input, ahora)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tutor")
}

func TestValidarInscripcionMenorConTutor(t *testing.T) {
	input := inscripcionBase("2008-01-01")
	input.Tutor = &struct {
		Nombre          string `json:"nombre"`
		ApellidoPaterno string `json:"apellidoPaterno"`
		ApellidoMaterno string `json:"apellidoMaterno"`
		CURP            string `json:"curp"`
		Telefono        string `json:"telefono"`
		Email           string `json:"email"`
		Parentesco      string `json:"parentesco"`
	}{
		Nombre:          "Luis",
		ApellidoPaterno: "García",
		Telefono:        "5551234567",
	}

	nacimiento, err := validarInscripcion(input, ahora)
	require.NoError(t, err)
	assert.Equal(t, 2008, nacimiento.Year())
}

func TestValidarInscripcionTipoPorDefecto(t *testing.T) {
	input := inscripcionBase("2000-01-01")
	_, err := validarInscripcion(input, ahora)
	require.NoError(t, err)
	assert.Equal(t, "normal", input.TipoInscripcion)
}

func TestValidarInscripcionTipoInvalido(t *testing.T) {
	input := inscripcionBase("2000-01-01")
	input.TipoInscripcion = "vip"
	_, err := validarInscripcion(input, ahora)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tipo de inscripción")

	for _, tipo := range []string{"normal", "promocion", "beca"} {
		input := inscripcionBase("2000-01-01")
		input.TipoInscripcion = tipo
		_, err := validarInscripcion(input, ahora)
		assert.NoError(t, err, "tipo %q", tipo)
	}
}

func TestValidarInscripcionMenorConTutorExistente(t *testing.T) {
	input := inscripcionBase("2010-12-31")
	tutorID := uint(7)
	input.TutorID = &tutorID

	_, err := validarInscripcion(input, ahora)
	assert.NoError(t, err)
}

func TestValidarInscripcionAdultoSinTutor(t *testing.T) {
	// 19 years old: no tutor required.
	input := inscripcionBase("2006-01-01")

	_, err := validarInscripcion(input, ahora)
	assert.NoError(t, err)
}

func TestValidarInscripcionCumpleDieciochoHoy(t *testing.T) {
	// Turns 18 exactly at `ahora`: already an adult, no tutor required.
	input := inscripcionBase("2007-06-15")

	_, err := validarInscripcion(input, ahora)
	assert.NoError(t, err)
}

func TestValidarInscripcionCamposRequeridos(t *testing.T) {
	input := inscripcionBase("2000-01-01")
	input.Alumno.CURP = ""

	_, err := validarInscripcion(input, ahora)
	require.Error(t, err)

	input = inscripcionBase("")
	_, err = validarInscripcion(input, ahora)
	require.Error(t, err)

	input = inscripcionBase("31/12/2000")
	_, err = validarInscripcion(input, ahora)
	assert.Error(t, err)
}
