package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/BimaSantiago/GymSerra-sub000/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// multipartContext builds a test context carrying a multipart form with the
// given fields and, optionally, one file.
func multipartContext(t *testing.T, fields map[string]string, fileField, fileName string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if fileField != "" {
		fw, err := mw.CreateFormFile(fileField, fileName)
		require.NoError(t, err)
		_, err = fw.Write([]byte("contenido"))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/api/articulos", &buf)
	c.Request.Header.Set("Content-Type", mw.FormDataContentType())
	return c, w
}

func TestCreateArticuloImagenInvalidaNoPersiste(t *testing.T) {
	db := newTestDB(t)
	useTestDB(t, db)

	c, w := multipartContext(t, map[string]string{
		"nombre": "Toalla",
		"costo":  "80",
	}, "imagen", "archivo.txt")
	CreateArticuloHandler(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	// A rejected create must not leave a row behind.
	var count int64
	require.NoError(t, db.Model(&models.Articulo{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestCreateArticuloSinImagen(t *testing.T) {
	db := newTestDB(t)
	useTestDB(t, db)
	t.Setenv("UPLOADS_DIR", t.TempDir())

	c, w := multipartContext(t, map[string]string{
		"nombre":      "Toalla",
		"costo":       "80",
		"margenPct":   "25",
		"precioVenta": "100",
		"stock":       "4",
	}, "", "")
	CreateArticuloHandler(c)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var got models.Articulo
	require.NoError(t, db.First(&got).Error)
	assert.Equal(t, "Toalla", got.Nombre)
	assert.Equal(t, 4, got.Stock)
}
