package main

import (
	"fmt"
	"testing"

	"github.com/BimaSantiago/GymSerra-sub000/config"
	"github.com/BimaSantiago/GymSerra-sub000/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestSeedPermisos(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Permiso{}))

	prev := config.DB
	config.DB = db
	t.Cleanup(func() { config.DB = prev })

	seedPermisos()

	var count int64
	require.NoError(t, db.Model(&models.Permiso{}).Count(&count).Error)
	assert.Equal(t, int64(len(permisosBase)), count)

	var p models.Permiso
	require.NoError(t, db.Where("nombre = ?", "alumnos_create").First(&p).Error)

	// A second run leaves the catalog unchanged.
	seedPermisos()
	require.NoError(t, db.Model(&models.Permiso{}).Count(&count).Error)
	assert.Equal(t, int64(len(permisosBase)), count)
}
