package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEdadEnAnios(t *testing.T) {
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name  string
		birth time.Time
		want  int
	}{
		{"cumple hoy", time.Date(2007, time.June, 15, 0, 0, 0, 0, time.UTC), 18},
		{"cumple manana", time.Date(2007, time.June, 16, 0, 0, 0, 0, time.UTC), 17},
		{"cumple ayer", time.Date(2007, time.June, 14, 0, 0, 0, 0, time.UTC), 18},
		{"mes anterior", time.Date(2000, time.May, 1, 0, 0, 0, 0, time.UTC), 25},
		{"mes posterior", time.Date(2000, time.July, 1, 0, 0, 0, 0, time.UTC), 24},
		{"recien nacido", time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, EdadEnAnios(tc.birth, now))
		})
	}
}

func TestAlumnoEdad(t *testing.T) {
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

	sinFecha := &Alumno{}
	assert.Equal(t, -1, sinFecha.Edad(now))

	nacimiento := time.Date(2010, time.March, 3, 0, 0, 0, 0, time.UTC)
	alumno := &Alumno{FechaNacimiento: &nacimiento}
	assert.Equal(t, 15, alumno.Edad(now))
}
