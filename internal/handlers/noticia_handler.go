// internal/handlers/noticia_handler.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/BimaSantiago/GymSerra-sub000/config"
	"github.com/BimaSantiago/GymSerra-sub000/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func ListNoticiasHandler(c *gin.Context) {
	var noticias []models.Noticia
	var totalRows int64

	baseQuery := config.DB.Model(&models.Noticia{}).Preload("Autor")
	if search := c.Query("search"); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		baseQuery = baseQuery.Where("LOWER(titulo) LIKE ? OR LOWER(contenido) LIKE ?", pattern, pattern)
	}

	if err := baseQuery.Count(&totalRows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "No se pudo contar las noticias"})
		return
	}
	if err := baseQuery.Scopes(Paginate(c)).Order("fecha_publicacion desc").Find(&noticias).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "No se pudo obtener las noticias"})
		return
	}

	if noticias == nil {
		noticias = make([]models.Noticia, 0)
	}
	c.JSON(http.StatusOK, listResponse(c, "noticias", noticias, totalRows))
}

func GetNoticiaHandler(c *gin.Context) {
	var noticia models.Noticia
	if err := config.DB.Preload("Autor").First(&noticia, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Noticia no encontrada"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Error al obtener la noticia"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "noticia": noticia})
}

func CreateNoticiaHandler(c *gin.Context) {
	var noticia models.Noticia
	if err := bindNoticiaFormData(c, &noticia); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if userID := c.GetUint("user_id"); userID != 0 {
		noticia.AutorID = &userID
	}

	if imagenURL, err := saveUploadedImage(c, "noticias", "imagen"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Imagen inválida: " + err.Error()})
		return
	} else if imagenURL != "" {
		noticia.ImagenURL = imagenURL
	}

	if err := config.DB.Create(&noticia).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "No se pudo crear la noticia: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "id": noticia.ID, "noticia": noticia})
}

func UpdateNoticiaHandler(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "ID de noticia inválido"})
		return
	}

	var noticia models.Noticia
	if err := config.DB.First(&noticia, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Noticia no encontrada"})
		return
	}

	if err := bindNoticiaFormData(c, &noticia); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if imagenURL, err := saveUploadedImage(c, "noticias", "imagen"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Imagen inválida: " + err.Error()})
		return
	} else if imagenURL != "" {
		noticia.ImagenURL = imagenURL
	}

	if err := config.DB.Save(&noticia).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "No se pudo actualizar la noticia"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "noticia": noticia})
}

func bindNoticiaFormData(c *gin.Context, n *models.Noticia) error {
	n.Titulo = c.PostForm("titulo")
	n.Contenido = c.PostForm("contenido")
	if n.Titulo == "" || n.Contenido == "" {
		return errors.New("El título y el contenido son requeridos")
	}

	if s := c.PostForm("fechaPublicacion"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return errors.New("Fecha de publicación inválida, se espera AAAA-MM-DD")
		}
		n.FechaPublicacion = t
	} else if n.FechaPublicacion.IsZero() {
		n.FechaPublicacion = time.Now()
	}
	return nil
}
