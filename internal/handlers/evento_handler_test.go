package handlers

import (
	"testing"
	"time"

	"github.com/BimaSantiago/GymSerra-sub000/models"

	"github.com/stretchr/testify/assert"
)

func timedEvento(inicio, fin time.Time) *models.Evento {
	allDay := false
	return &models.Evento{FechaInicio: inicio, FechaFin: &fin, TodoElDia: &allDay}
}

func TestEventoFinalizadoConHora(t *testing.T) {
	now := time.Date(2025, time.June, 15, 18, 0, 0, 0, time.UTC)

	terminado := timedEvento(
		time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC),
		time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC),
	)
	assert.True(t, eventoFinalizado(terminado, now))

	enCurso := timedEvento(
		time.Date(2025, time.June, 15, 17, 0, 0, 0, time.UTC),
		time.Date(2025, time.June, 15, 20, 0, 0, 0, time.UTC),
	)
	assert.False(t, eventoFinalizado(enCurso, now))
}

func TestEventoFinalizadoSinFechaFin(t *testing.T) {
	now := time.Date(2025, time.June, 15, 18, 0, 0, 0, time.UTC)
	allDay := false
	pasado := &models.Evento{
		FechaInicio: time.Date(2025, time.June, 14, 10, 0, 0, 0, time.UTC),
		TodoElDia:   &allDay,
	}
	assert.True(t, eventoFinalizado(pasado, now))
}

func TestEventoFinalizadoTodoElDia(t *testing.T) {
	// At 18:00 an all-day event ending today is still ongoing.
	now := time.Date(2025, time.June, 15, 18, 0, 0, 0, time.UTC)
	allDay := true

	hoy := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	enCurso := &models.Evento{FechaInicio: hoy, FechaFin: &hoy, TodoElDia: &allDay}
	assert.False(t, eventoFinalizado(enCurso, now))

	ayer := time.Date(2025, time.June, 14, 0, 0, 0, 0, time.UTC)
	terminado := &models.Evento{FechaInicio: ayer, FechaFin: &ayer, TodoElDia: &allDay}
	assert.True(t, eventoFinalizado(terminado, now))
}

func TestParseFechaHora(t *testing.T) {
	d, err := parseFechaHora("2025-06-15")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC), d)

	d, err = parseFechaHora("2025-06-15T19:30:00Z")
	assert.NoError(t, err)
	assert.Equal(t, 19, d.Hour())

	_, err = parseFechaHora("15/06/2025")
	assert.Error(t, err)
}
