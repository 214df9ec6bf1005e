package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/BimaSantiago/GymSerra-sub000/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListProductosPublicoOcultaSinStock(t *testing.T) {
	db := newTestDB(t)
	useTestDB(t, db)

	require.NoError(t, db.Create(&models.Articulo{
		Nombre:      "Proteína",
		Stock:       5,
		Costo:       decimal.NewFromInt(300),
		PrecioVenta: decimal.NewFromInt(450),
	}).Error)
	require.NoError(t, db.Create(&models.Articulo{
		Nombre:      "Shaker",
		Stock:       0,
		Costo:       decimal.NewFromInt(50),
		PrecioVenta: decimal.NewFromInt(90),
	}).Error)

	c, w := recordedContext(t, "GET", "/api/public/productos")
	ListProductosPublicoHandler(c)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Success   bool              `json:"success"`
		Productos []ProductoPublico `json:"productos"`
		Total     int64             `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, int64(1), body.Total)
	require.Len(t, body.Productos, 1)
	assert.Equal(t, "Proteína", body.Productos[0].Nombre)
}
