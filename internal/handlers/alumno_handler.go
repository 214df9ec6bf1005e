// internal/handlers/alumno_handler.go
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

// MayoriaEdad is the age from which a student may enroll without a tutor.
const MayoriaEdad = 18

// ListAlumnosHandler returns a paginated page of students. Search matches
// name, both surnames and CURP, case-insensitively.
func ListAlumnosHandler(c *gin.Context) {
	var alumnos []models.Alumno
	var totalRows int64

	baseQuery := config.DB.Model(&models.Alumno{}).Preload("Tutor").Preload("Deporte")

	if search := c.Query("search"); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		baseQuery = baseQuery.Where(
			"LOWER(nombre) LIKE ? OR LOWER(apellido_paterno) LIKE ? OR LOWER(apellido_materno) LIKE ? OR LOWER(curp) LIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}
	if status := c.Query("status"); status != "" {
		baseQuery = baseQuery.Where("status = ?", status)
	}

	if err := baseQuery.Count(&totalRows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "No se pudo contar los alumnos"})
		return
	}

	if err := baseQuery.Scopes(Paginate(c)).
		Order("apellido_paterno, apellido_materno, nombre").
		Find(&alumnos).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "No se pudo obtener la lista de alumnos"})
		return
	}

	if alumnos == nil {
		alumnos = make([]models.Alumno, 0)
	}
	c.JSON(http.StatusOK, listResponse(c, "alumnos", alumnos, totalRows))
}

// GetAlumnoHandler returns one student with tutor and discipline preloaded.
func GetAlumnoHandler(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "ID de alumno inválido"})
		return
	}

	var alumno models.Alumno
	if err := config.DB.Preload("Tutor").Preload("Deporte").First(&alumno, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Alumno no encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Error al obtener el alumno"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "alumno": alumno})
}

// CreateAlumnoHandler registers a single student (no tutor step). Minors must
// go through the enrollment endpoint so the tutor is created atomically.
func CreateAlumnoHandler(c *gin.Context) {
	var alumno models.Alumno
	if err := bindAlumnoFormData(c, &alumno); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	if err := validarAlumno(&alumno); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if alumno.TutorID == nil && alumno.Edad(time.Now()) < MayoriaEdad {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Un alumno menor de edad requiere tutor"})
		return
	}

	if err := checkCURPDisponible(alumno.CURP, 0); err != nil {
		c.JSON(http.StatusConflict, gin.H{"success": false, "error": err.Error()})
		return
	}

	if fotoURL, err := saveUploadedImage(c, "alumnos", "foto"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Foto inválida: " + err.Error()})
		return
	} else if fotoURL != "" {
		alumno.FotoURL = fotoURL
	}

	if err := config.DB.Create(&alumno).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "No se pudo crear el alumno: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "id": alumno.ID, "alumno": alumno})
}

// UpdateAlumnoHandler updates a student in place.
func UpdateAlumnoHandler(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "ID de alumno inválido"})
		return
	}

	var alumno models.Alumno
	if err := config.DB.First(&alumno, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Alumno no encontrado"})
		return
	}

	oldCURP := alumno.CURP
	if err := bindAlumnoFormData(c, &alumno); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	if err := validarAlumno(&alumno); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if alumno.CURP != oldCURP {
		if err := checkCURPDisponible(alumno.CURP, alumno.ID); err != nil {
			c.JSON(http.StatusConflict, gin.H{"success": false, "error": err.Error()})
			return
		}
	}

	if fotoURL, err := saveUploadedImage(c, "alumnos", "foto"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Foto inválida: " + err.Error()})
		return
	} else if fotoURL != "" {
		alumno.FotoURL = fotoURL
	}

	if err := config.DB.Save(&alumno).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "No se pudo actualizar el alumno: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "alumno": alumno})
}

// --- ENROLLMENT (student + tutor in one transaction) ---

// InscripcionInput carries the accumulated wizard state: the student fields,
// the optional tutor (by id or as new data), and the registration type.
type InscripcionInput struct {
	Alumno struct {
		CURP            string `json:"curp"`
		Nombre          string `json:"nombre"`
		ApellidoPaterno string `json:"apellidoPaterno"`
		ApellidoMaterno string `json:"apellidoMaterno"`
		FechaNacimiento string `json:"fechaNacimiento"`
		Sexo            string `json:"sexo"`
		Telefono        string `json:"telefono"`
		Email           string `json:"email"`
		DeporteID       *uint  `json:"deporteId"`
	} `json:"alumno"`
	TutorID *uint `json:"tutorId"`
	Tutor   *struct {
		Nombre          string `json:"nombre"`
		ApellidoPaterno string `json:"apellidoPaterno"`
		ApellidoMaterno string `json:"apellidoMaterno"`
		CURP            string `json:"curp"`
		Telefono        string `json:"telefono"`
		Email           string `json:"email"`
		Parentesco      string `json:"parentesco"`
	} `json:"tutor"`
	TipoInscripcion string `json:"tipoInscripcion"` // normal / promocion / beca
}

// validarInscripcion enforces the wizard's transition guards server-side:
// the student step requires name, CURP and birth date; the tutor step is
// required in full only when the student is a minor at enrollment time.
func validarInscripcion(input *InscripcionInput, now time.Time) (time.Time, error) {
	a := &input.Alumno
	if a.Nombre == "" || a.ApellidoPaterno == "" || a.CURP == "" {
		return time.Time{}, errors.New("Nombre, apellido paterno y CURP del alumno son requeridos")
	}
	if a.FechaNacimiento == "" {
		return time.Time{}, errors.New("La fecha de nacimiento es requerida")
	}
	nacimiento, err := time.Parse("2006-01-02", a.FechaNacimiento)
	if err != nil {
		return time.Time{}, errors.New("Fecha de nacimiento inválida, se espera AAAA-MM-DD")
	}

	esMenor := models.EdadEnAnios(nacimiento, now) < MayoriaEdad
	tieneTutor := input.TutorID != nil ||
		(input.Tutor != nil && input.Tutor.Nombre != "" && input.Tutor.ApellidoPaterno != "" && input.Tutor.Telefono != "")

	if esMenor && !tieneTutor {
		return time.Time{}, errors.New("Un alumno menor de edad requiere los datos completos del tutor")
	}

	switch input.TipoInscripcion {
	case "":
		input.TipoInscripcion = "normal"
	case "normal", "promocion", "beca":
	default:
		return time.Time{}, errors.New("El tipo de inscripción debe ser normal, promocion o beca")
	}
	return nacimiento, nil
}

// InscripcionHandler enrolls a student, creating the tutor in the same
// database transaction so a student failure never leaves an orphan tutor.
func InscripcionHandler(c *gin.Context) {
	var input InscripcionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Datos de inscripción inválidos: " + err.Error()})
		return
	}

	nacimiento, err := validarInscripcion(&input, time.Now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if err := checkCURPDisponible(input.Alumno.CURP, 0); err != nil {
		c.JSON(http.StatusConflict, gin.H{"success": false, "error": err.Error()})
		return
	}

	var alumno models.Alumno
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		tutorID := input.TutorID

		if tutorID == nil && input.Tutor != nil && input.Tutor.Nombre != "" {
			tutor := models.Tutor{
				Nombre:          input.Tutor.Nombre,
				ApellidoPaterno: input.Tutor.ApellidoPaterno,
				ApellidoMaterno: input.Tutor.ApellidoMaterno,
				CURP:            input.Tutor.CURP,
				Telefono:        input.Tutor.Telefono,
				Email:           input.Tutor.Email,
				Parentesco:      input.Tutor.Parentesco,
			}
			if err := tx.Create(&tutor).Error; err != nil {
				return fmt.Errorf("no se pudo registrar el tutor: %w", err)
			}
			tutorID = &tutor.ID
		} else if tutorID != nil {
			var existing models.Tutor
			if err := tx.First(&existing, *tutorID).Error; err != nil {
				return errors.New("el tutor indicado no existe")
			}
		}

		alumno = models.Alumno{
			CURP:            input.Alumno.CURP,
			Nombre:          input.Alumno.Nombre,
			ApellidoPaterno: input.Alumno.ApellidoPaterno,
			ApellidoMaterno: input.Alumno.ApellidoMaterno,
			FechaNacimiento: &nacimiento,
			Sexo:            input.Alumno.Sexo,
			Telefono:        input.Alumno.Telefono,
			Email:           input.Alumno.Email,
			DeporteID:       input.Alumno.DeporteID,
			TutorID:         tutorID,
			TipoInscripcion: input.TipoInscripcion,
			Status:          "activo",
		}
		if err := tx.Create(&alumno).Error; err != nil {
			return fmt.Errorf("no se pudo registrar el alumno: %w", err)
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "id": alumno.ID, "alumno": alumno})
}

// --- helpers ---

func checkCURPDisponible(curp string, selfID uint) error {
	if curp == "" {
		return nil
	}
	var existing models.Alumno
	query := config.DB.Where("curp = ?", curp)
	if selfID != 0 {
		query = query.Where("id != ?", selfID)
	}
	if err := query.First(&existing).Error; err == nil {
		return errors.New("Ya existe un alumno con esa CURP")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return errors.New("Error al verificar la CURP")
	}
	return nil
}

func validarAlumno(a *models.Alumno) error {
	if a.Nombre == "" || a.ApellidoPaterno == "" || a.CURP == "" {
		return errors.New("Nombre, apellido paterno y CURP son requeridos")
	}
	return nil
}

func bindAlumnoFormData(c *gin.Context, a *models.Alumno) error {
	a.CURP = c.PostForm("curp")
	a.Nombre = c.PostForm("nombre")
	a.ApellidoPaterno = c.PostForm("apellidoPaterno")
	a.ApellidoMaterno = c.PostForm("apellidoMaterno")
	a.Sexo = c.PostForm("sexo")
	a.Telefono = c.PostForm("telefono")
	a.Email = c.PostForm("email")

	if status := c.PostForm("status"); status != "" {
		a.Status = status
	}
	if docs := c.PostForm("documentosStatus"); docs != "" {
		a.DocumentosStatus = docs
	}

	if s := c.PostForm("fechaNacimiento"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return errors.New("Fecha de nacimiento inválida, se espera AAAA-MM-DD")
		}
		a.FechaNacimiento = &t
	}

	if s := c.PostForm("tutorId"); s != "" {
		if val, err := strconv.ParseUint(s, 10, 64); err == nil {
			v := uint(val)
			a.TutorID = &v
		}
	}
	if s := c.PostForm("deporteId"); s != "" {
		if val, err := strconv.ParseUint(s, 10, 64); err == nil {
			v := uint(val)
			a.DeporteID = &v
		}
	}
	return nil
}
