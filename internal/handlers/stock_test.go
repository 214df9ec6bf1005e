package handlers

import (
	"testing"

	"github.com/BimaSantiago/GymSerra-sub000/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescontarStock(t *testing.T) {
	db := newTestDB(t)
	articulo := models.Articulo{
		Nombre:      "Agua 600ml",
		Stock:       3,
		Costo:       decimal.NewFromInt(8),
		PrecioVenta: decimal.NewFromInt(15),
	}
	require.NoError(t, db.Create(&articulo).Error)

	require.NoError(t, descontarStock(db, articulo.ID, 2))

	var got models.Articulo
	require.NoError(t, db.First(&got, articulo.ID).Error)
	assert.Equal(t, 1, got.Stock)
}

func TestDescontarStockInsuficiente(t *testing.T) {
	db := newTestDB(t)
	articulo := models.Articulo{
		Nombre:      "Guantes",
		Stock:       1,
		Costo:       decimal.NewFromInt(120),
		PrecioVenta: decimal.NewFromInt(200),
	}
	require.NoError(t, db.Create(&articulo).Error)

	err := descontarStock(db, articulo.ID, 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stock insuficiente")

	// The guard leaves the stock untouched, it can never go negative.
	var got models.Articulo
	require.NoError(t, db.First(&got, articulo.ID).Error)
	assert.Equal(t, 1, got.Stock)

	require.NoError(t, descontarStock(db, articulo.ID, 1))
	require.NoError(t, db.First(&got, articulo.ID).Error)
	assert.Equal(t, 0, got.Stock)

	err = descontarStock(db, articulo.ID, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quedan 0")
}

func TestDescontarStockArticuloInexistente(t *testing.T) {
	db := newTestDB(t)
	err := descontarStock(db, 999, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no existe")
}
