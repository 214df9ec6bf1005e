package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/BimaSantiago/GymSerra-sub000/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contactoValido() *ContactoInput {
	return &ContactoInput{
		Nombre:  "María López",
		Email:   "maria@example.com",
		Edad:    8,
		Mensaje: "Quiero información sobre las clases de karate",
	}
}

func TestValidarContactoOK(t *testing.T) {
	assert.NoError(t, validarContacto(contactoValido()))
}

func TestValidarContactoCamposRequeridos(t *testing.T) {
	in := contactoValido()
	in.Nombre = "   "
	assert.Error(t, validarContacto(in))

	in = contactoValido()
	in.Email = ""
	assert.Error(t, validarContacto(in))

	in = contactoValido()
	in.Mensaje = ""
	assert.Error(t, validarContacto(in))

	in = contactoValido()
	in.Email = "sin-arroba"
	assert.Error(t, validarContacto(in))
}

func TestListContactosBusquedaIgnoraMayusculas(t *testing.T) {
	db := newTestDB(t)
	useTestDB(t, db)

	require.NoError(t, db.Create(&models.Contacto{
		Nombre: "María López", Email: "maria@example.com", Edad: 8, Mensaje: "Info de karate",
	}).Error)
	require.NoError(t, db.Create(&models.Contacto{
		Nombre: "Pedro Ruiz", Email: "pedro@example.com", Edad: 30, Mensaje: "Horarios de box",
	}).Error)

	c, w := recordedContext(t, "GET", "/api/contactos?search=PEDRO")
	ListContactosHandler(c)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Contactos []models.Contacto `json:"contactos"`
		Total     int64             `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, int64(1), body.Total)
	require.Len(t, body.Contactos, 1)
	assert.Equal(t, "Pedro Ruiz", body.Contactos[0].Nombre)
}

func TestValidarContactoEdad(t *testing.T) {
	cases := []struct {
		edad int
		ok   bool
	}{
		{2, false},
		{3, true},
		{8, true},
		{100, true},
		{101, false},
		{0, false},
		{-1, false},
	}
	for _, tc := range cases {
		in := contactoValido()
		in.Edad = tc.edad
		err := validarContacto(in)
		if tc.ok {
			assert.NoError(t, err, "edad %d", tc.edad)
		} else {
			assert.Error(t, err, "edad %d", tc.edad)
		}
	}
}
