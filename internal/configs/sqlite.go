package config

import (
	"log"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	model "github.com/present-lee/module-6/internal/models"
)

func New(dsn string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}

	if err := db.AutoMigrate(&model.User{}, &model.Category{}, &model.Task{}); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	return db
}

var defaultCategories = []struct {
	name  string
	order int
	color string
}{
	{"ToDo", 0, "#6B7280"},
	{"Processing", 1, "#3B82F6"},
	{"Issue", 2, "#EF4444"},
	{"Done", 3, "#10B981"},
}

// SeedDefaultCategories creates the standard board columns when the
// categories table is empty. Safe to call on every startup.
func SeedDefaultCategories(db *gorm.DB) {
	var count int64
	if err := db.Model(&model.Category{}).Count(&count).Error; err != nil {
		log.Fatalf("category count failed: %v", err)
	}
	if count > 0 {
		return
	}

	for _, c := range defaultCategories {
		color := c.color
		category := &model.Category{
			ID:    uuid.NewString(),
			Name:  c.name,
			Order: c.order,
			Color: &color,
		}
		if err := db.Create(category).Error; err != nil {
			log.Fatalf("default category seed failed: %v", err)
		}
	}

	log.Printf("seeded %d default categories", len(defaultCategories))
}
