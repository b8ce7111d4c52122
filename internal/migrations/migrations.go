// Package migrations holds the additive schema steps layered onto the base
// user schema. Steps are registered in order; Rollback walks them in reverse
// so each column set can be dropped independently.
package migrations

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/craftroots/marketplace/internal/models"
)

type Migration struct {
	Name string
	Up   func(db *gorm.DB) error
	Down func(db *gorm.DB) error
}

var steps = []Migration{
	{
		Name: "add-artisan-profile-fields",
		Up: func(db *gorm.DB) error {
			return addColumns(db, "bio", "location", "specialties", "experience")
		},
		Down: func(db *gorm.DB) error {
			return dropColumns(db, "experience", "specialties", "location", "bio")
		},
	},
	{
		Name: "add-user-image-url",
		Up: func(db *gorm.DB) error {
			return addColumns(db, "image_url")
		},
		Down: func(db *gorm.DB) error {
			return dropColumns(db, "image_url")
		},
	},
}

func addColumns(db *gorm.DB, cols ...string) error {
	m := db.Migrator()
	for _, col := range cols {
		if m.HasColumn(&models.User{}, col) {
			continue
		}
		if err := m.AddColumn(&models.User{}, col); err != nil {
			return fmt.Errorf("add column %s: %w", col, err)
		}
	}
	return nil
}

func dropColumns(db *gorm.DB, cols ...string) error {
	m := db.Migrator()
	for _, col := range cols {
		if !m.HasColumn(&models.User{}, col) {
			continue
		}
		if err := m.DropColumn(&models.User{}, col); err != nil {
			return fmt.Errorf("drop column %s: %w", col, err)
		}
	}
	return nil
}

// Up applies every registered step in order.
func Up(db *gorm.DB) error {
	for _, s := range steps {
		if err := s.Up(db); err != nil {
			return fmt.Errorf("migration %s: %w", s.Name, err)
		}
	}
	return nil
}

// Rollback reverts every registered step, newest first.
func Rollback(db *gorm.DB) error {
	for i := len(steps) - 1; i >= 0; i-- {
		if err := steps[i].Down(db); err != nil {
			return fmt.Errorf("rollback %s: %w", steps[i].Name, err)
		}
	}
	return nil
}
