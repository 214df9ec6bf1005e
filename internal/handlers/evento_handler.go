// internal/handlers/evento_handler.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/BimaSantiago/GymSerra-sub000/config"
	"github.com/BimaSantiago/GymSerra-sub000/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CalendarEntry is the shape consumed by the dashboard's calendar widget
// (FullCalendar-compatible).
type CalendarEntry struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Start      time.Time  `json:"start"`
	End        *time.Time `json:"end,omitempty"`
	AllDay     bool       `json:"allDay"`
	Color      string     `json:"color,omitempty"`
	Editable   bool       `json:"editable"`
	Location   string     `json:"location,omitempty"`
	Finalizado bool       `json:"finalizado"`
}

const defaultEventColor = "#3788d8"

// eventoFinalizado reports whether the event already ended at the given
// instant. All-day events compare against the start of the current day, so
// an event ending today still counts as ongoing.
func eventoFinalizado(e *models.Evento, now time.Time) bool {
	end := e.FechaInicio
	if e.FechaFin != nil {
		end = *e.FechaFin
	}
	if e.TodoElDia != nil && *e.TodoElDia {
		startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		return end.Before(startOfToday)
	}
	return end.Before(now)
}

func ListEventosHandler(c *gin.Context) {
	var eventos []models.Evento
	var totalRows int64

	baseQuery := config.DB.Model(&models.Evento{}).Preload("Deporte")
	if search := c.Query("search"); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		baseQuery = baseQuery.Where("LOWER(titulo) LIKE ? OR LOWER(lugar) LIKE ?", pattern, pattern)
	}

	if err := baseQuery.Count(&totalRows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "No se pudo contar los eventos"})
		return
	}
	if err := baseQuery.Scopes(Paginate(c)).Order("fecha_inicio desc").Find(&eventos).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "No se pudo obtener los eventos"})
		return
	}

	if eventos == nil {
		eventos = make([]models.Evento, 0)
	}
	c.JSON(http.StatusOK, listResponse(c, "eventos", eventos, totalRows))
}

func GetEventoHandler(c *gin.Context) {
	var evento models.Evento
	if err := config.DB.Preload("Deporte").First(&evento, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Evento no encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Error al obtener el evento"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "evento": evento})
}

// GetCalendarioHandler maps events to calendar entries. Color comes from the
// event's discipline; events without one use the default blue.
func GetCalendarioHandler(c *gin.Context) {
	var eventos []models.Evento
	if err := config.DB.Preload("Deporte").Find(&eventos).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "No se pudo obtener los eventos"})
		return
	}

	now := time.Now()
	entries := make([]CalendarEntry, 0, len(eventos))
	for i := range eventos {
		e := &eventos[i]
		color := defaultEventColor
		if e.Deporte != nil && e.Deporte.Color != "" {
			color = e.Deporte.Color
		}
		entries = append(entries, CalendarEntry{
			ID:         strconv.FormatUint(uint64(e.ID), 10),
			Title:      e.Titulo,
			Start:      e.FechaInicio,
			End:        e.FechaFin,
			AllDay:     e.TodoElDia != nil && *e.TodoElDia,
			Color:      color,
			Editable:   true,
			Location:   e.Lugar,
			Finalizado: eventoFinalizado(e, now),
		})
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "eventos": entries})
}

func CreateEventoHandler(c *gin.Context) {
	var evento models.Evento
	if err := bindEventoFormData(c, &evento); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if imagenURL, err := saveUploadedImage(c, "eventos", "imagen"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Imagen inválida: " + err.Error()})
		return
	} else if imagenURL != "" {
		evento.ImagenURL = imagenURL
	}

	if err := config.DB.Create(&evento).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "No se pudo crear el evento: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "id": evento.ID, "evento": evento})
}

func UpdateEventoHandler(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "ID de evento inválido"})
		return
	}

	var evento models.Evento
	if err := config.DB.First(&evento, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Evento no encontrado"})
		return
	}

	if err := bindEventoFormData(c, &evento); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if imagenURL, err := saveUploadedImage(c, "eventos", "imagen"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Imagen inválida: " + err.Error()})
		return
	} else if imagenURL != "" {
		evento.ImagenURL = imagenURL
	}

	if err := config.DB.Save(&evento).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "No se pudo actualizar el evento"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "evento": evento})
}

func bindEventoFormData(c *gin.Context, e *models.Evento) error {
	e.Titulo = c.PostForm("titulo")
	if e.Titulo == "" {
		return errors.New("El título del evento es requerido")
	}
	e.Descripcion = c.PostForm("descripcion")
	e.Lugar = c.PostForm("lugar")

	inicio := c.PostForm("fechaInicio")
	if inicio == "" {
		return errors.New("La fecha de inicio es requerida")
	}
	t, err := parseFechaHora(inicio)
	if err != nil {
		return errors.New("Fecha de inicio inválida")
	}
	e.FechaInicio = t

	if fin := c.PostForm("fechaFin"); fin != "" {
		t, err := parseFechaHora(fin)
		if err != nil {
			return errors.New("Fecha de fin inválida")
		}
		if t.Before(e.FechaInicio) {
			return errors.New("La fecha de fin no puede ser anterior a la de inicio")
		}
		e.FechaFin = &t
	} else {
		e.FechaFin = nil
	}

	todoElDia, err := strconv.ParseBool(c.PostForm("todoElDia"))
	if err == nil {
		e.TodoElDia = &todoElDia
	} else if e.TodoElDia == nil {
		b := false
		e.TodoElDia = &b
	}

	if s := c.PostForm("deporteId"); s != "" {
		if val, err := strconv.ParseUint(s, 10, 64); err == nil {
			v := uint(val)
			e.DeporteID = &v
		}
	} else {
		e.DeporteID = nil
	}
	return nil
}

// parseFechaHora accepts either a date or a date-time in RFC 3339 form.
func parseFechaHora(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
