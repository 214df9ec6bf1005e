package handlers

import (
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/BimaSantiago/GymSerra-sub000/config"
	"github.com/BimaSantiago/GymSerra-sub000/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database with the store schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Categoria{},
		&models.Articulo{},
		&models.Contacto{},
		&models.Deporte{},
	))
	return db
}

// useTestDB points the handlers at the given database for the test's
// duration.
func useTestDB(t *testing.T, db *gorm.DB) {
	t.Helper()
	prev := config.DB
	config.DB = db
	t.Cleanup(func() { config.DB = prev })
}

// recordedContext builds a test context around a request for the given URL.
func recordedContext(t *testing.T, method, target string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, nil)
	return c, w
}
