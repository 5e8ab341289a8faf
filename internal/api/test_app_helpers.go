package api

import (
	"path/filepath"
	"testing"

	"github.com/elowenrae/steady/internal/db"
	"github.com/elowenrae/steady/internal/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "steady-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	handler := NewHandler(database, "test-secret-key", false, services.NewVaderAnalyzer(), services.NoopMailer{})

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, database
}
