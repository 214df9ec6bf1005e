// internal/handlers/catalogo_handler.go
// CRUD for the small catalog tables: categorías, unidades de medida,
// deportes and horarios.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/BimaSantiago/GymSerra-sub000/config"
	"github.com/BimaSantiago/GymSerra-sub000/models"

	"github.com/gin-gonic/gin"
)

// --- CATEGORÍAS ---

func ListCategoriasHandler(c *gin.Context) {
	var categorias []models.Categoria
	if err := config.DB.Order("nombre").Find(&categorias).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "No se pudo obtener las categorías"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "categorias": categorias, "total": len(categorias)})
}

func CreateCategoriaHandler(c *gin.Context) {
	var input struct {
		Nombre      string `json:"nombre" binding:"required"`
		Descripcion string `json:"descripcion"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "El nombre es requerido"})
		return
	}

	categoria := models.Categoria{Nombre: input.Nombre, Descripcion: input.Descripcion}
	if err := config.DB.Create(&categoria).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"success": false, "error": "No se pudo crear la categoría: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "id": categoria.ID, "categoria": categoria})
}

func UpdateCategoriaHandler(c *gin.Context) {
	var categoria models.Categoria
	if err := config.DB.First(&categoria, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Categoría no encontrada"})
		return
	}

	var input struct {
		Nombre      string `json:"nombre" binding:"required"`
		Descripcion string `json:"descripcion"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "El nombre es requerido"})
		return
	}

	categoria.Nombre = input.Nombre
	categoria.Descripcion = input.Descripcion
	if err := config.DB.Save(&categoria).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "No se pudo actualizar la categoría"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "categoria": categoria})
}

func DeleteCategoriaHandler(c *gin.Context) {
	var count int64
	config.DB.Model(&models.Articulo{}).Where("categoria_id = ?", c.Param("id")).Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"success": false, "error": "La categoría tiene artículos asociados"})
		return
	}
	if err := config.DB.Delete(&models.Categoria{}, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "No se pudo eliminar la categoría"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// --- UNIDADES DE MEDIDA ---

func ListUnidadesHandler(c *gin.Context) {
	var unidades []models.UnidadMedida
	if err := config.DB.Order("nombre").Find(&unidades).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "No se pudo obtener las unidades"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "unidades": unidades, "total": len(unidades)})
}

func CreateUnidadHandler(c *gin.Context) {
	var input struct {
		Nombre      string `json:"nombre" binding:"required"`
		Abreviatura string `json:"abreviatura"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "El nombre es requerido"})
		return
	}

	unidad := models.UnidadMedida{Nombre: input.Nombre, Abreviatura: input.Abreviatura}
	if err := config.DB.Create(&unidad).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"success": false, "error": "No se pudo crear la unidad: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "id": unidad.ID, "unidad": unidad})
}

func UpdateUnidadHandler(c *gin.Context) {
	var unidad models.UnidadMedida
	if err := config.DB.First(&unidad, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Unidad no encontrada"})
		return
	}

	var input struct {
		Nombre      string `json:"nombre" binding:"required"`
		Abreviatura string `json:"abreviatura"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "El nombre es requerido"})
		return
	}

	unidad.Nombre = input.Nombre
	unidad.Abreviatura = input.Abreviatura
	if err := config.DB.Save(&unidad).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "No se pudo actualizar la unidad"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "unidad": unidad})
}

func DeleteUnidadHandler(c *gin.Context) {
	var count int64
	config.DB.Model(&models.Articulo{}).Where("unidad_id = ?", c.Param("id")).Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"success": false, "error": "La unidad tiene artículos asociados"})
		return
	}
	if err := config.DB.Delete(&models.UnidadMedida{}, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "No se pudo eliminar la unidad"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// --- DEPORTES ---

func ListDeportesHandler(c *gin.Context) {
	var deportes []models.Deporte
	query := config.DB.Order("nombre")
	if c.Query("activos") == "true" {
		query = query.Where("activo = true")
	}
	if err := query.Find(&deportes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "No se pudo obtener los deportes"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "deportes": deportes, "total": len(deportes)})
}

type DeporteInput struct {
	Nombre string `json:"nombre" binding:"required"`
	Color  string `json:"color"`
	Activo *bool  `json:"activo"`
}

func CreateDeporteHandler(c *gin.Context) {
	var input DeporteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "El nombre es requerido"})
		return
	}

	deporte := models.Deporte{Nombre: input.Nombre, Color: input.Color, Activo: input.Activo}
	if err := config.DB.Create(&deporte).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"success": false, "error": "No se pudo crear el deporte: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "id": deporte.ID, "deporte": deporte})
}

func UpdateDeporteHandler(c *gin.Context) {
	var deporte models.Deporte
	if err := config.DB.First(&deporte, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Deporte no encontrado"})
		return
	}

	var input DeporteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "El nombre es requerido"})
		return
	}

	deporte.Nombre = input.Nombre
	if input.Color != "" {
		deporte.Color = input.Color
	}
	if input.Activo != nil {
		deporte.Activo = input.Activo
	}
	if err := config.DB.Save(&deporte).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "No se pudo actualizar el deporte"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "deporte": deporte})
}

func DeleteDeporteHandler(c *gin.Context) {
	var count int64
	config.DB.Model(&models.PlanPago{}).Where("deporte_id = ?", c.Param("id")).Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"success": false, "error": "El deporte tiene planes de pago asociados"})
		return
	}
	if err := config.DB.Delete(&models.Deporte{}, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "No se pudo eliminar el deporte"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// --- HORARIOS ---

// ListHorariosHandler returns weekly class slots, optionally filtered by
// discipline. Used by both the public schedule page and the dashboard.
func ListHorariosHandler(c *gin.Context) {
	var horarios []models.Horario
	query := config.DB.Preload("Deporte").Order("dia, hora_inicio")
	if deporteID := c.Query("deporteId"); deporteID != "" {
		if id, err := strconv.Atoi(deporteID); err == nil {
			query = query.Where("deporte_id = ?", id)
		}
	}
	if err := query.Find(&horarios).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "No se pudo obtener los horarios"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "horarios": horarios, "total": len(horarios)})
}

type HorarioInput struct {
	DeporteID  uint   `json:"deporteId" binding:"required"`
	Dia        *int   `json:"dia" binding:"required"`
	HoraInicio string `json:"horaInicio" binding:"required"`
	HoraFin    string `json:"horaFin" binding:"required"`
	Cupo       int    `json:"cupo"`
	Instructor string `json:"instructor"`
}

func CreateHorarioHandler(c *gin.Context) {
	var input HorarioInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Deporte, día y horas son requeridos"})
		return
	}
	if *input.Dia < 0 || *input.Dia > 6 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "El día debe estar entre 0 y 6"})
		return
	}

	horario := models.Horario{
		DeporteID:  input.DeporteID,
		Dia:        *input.Dia,
		HoraInicio: input.HoraInicio,
		HoraFin:    input.HoraFin,
		Cupo:       input.Cupo,
		Instructor: input.Instructor,
	}
	if err := config.DB.Create(&horario).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "No se pudo crear el horario: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "id": horario.ID, "horario": horario})
}

func UpdateHorarioHandler(c *gin.Context) {
	var horario models.Horario
	if err := config.DB.First(&horario, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Horario no encontrado"})
		return
	}

	var input HorarioInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Deporte, día y horas son requeridos"})
		return
	}
	if *input.Dia < 0 || *input.Dia > 6 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "El día debe estar entre 0 y 6"})
		return
	}

	horario.DeporteID = input.DeporteID
	horario.Dia = *input.Dia
	horario.HoraInicio = input.HoraInicio
	horario.HoraFin = input.HoraFin
	if input.Cupo > 0 {
		horario.Cupo = input.Cupo
	}
	horario.Instructor = input.Instructor

	if err := config.DB.Save(&horario).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "No se pudo actualizar el horario"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "horario": horario})
}

func DeleteHorarioHandler(c *gin.Context) {
	if err := config.DB.Delete(&models.Horario{}, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "No se pudo eliminar el horario"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
