package services

import (
	"fmt"
	"strings"
	"testing"

	"tanzo-api/app/models"
	"tanzo-api/app/repo"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// testDB opens a per-test in-memory sqlite database. The shared cache
// keeps gorm's pooled connections pointed at the same database.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := gdb.AutoMigrate(&models.User{}, &models.Project{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return gdb
}

func testServices(t *testing.T) (*UserService, *ProjectService, *gorm.DB) {
	t.Helper()
	gdb := testDB(t)
	return NewUserService(repo.NewUserRepository(gdb)), NewProjectService(repo.NewProjectRepository(gdb)), gdb
}
