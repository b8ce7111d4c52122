package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/craftroots/marketplace/internal/config"
	"github.com/craftroots/marketplace/internal/models"
	"github.com/craftroots/marketplace/internal/repo"
)

func newTestRepo(t *testing.T) *repo.GormRepo {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, config.Migrate(db))
	return repo.New(db)
}

func seedArtisan(t *testing.T, r *repo.GormRepo, email string) models.User {
	t.Helper()
	u := models.User{Name: "artisan", Email: email, PasswordHash: "x", Role: models.RoleArtisan, IsActive: true}
	require.NoError(t, r.DB.Create(&u).Error)
	return u
}

func seedActiveProduct(t *testing.T, r *repo.GormRepo, artisanID uint, price float64) models.Product {
	t.Helper()
	p := models.Product{
		Name:        "bowl",
		Description: "clay bowl",
		Price:       price,
		Category:    "pottery",
		ImageURL:    "http://img.example/bowl.jpg",
		ArtisanID:   artisanID,
		Stock:       10,
		IsActive:    true,
	}
	require.NoError(t, r.DB.Create(&p).Error)
	return p
}

func strPtr(s string) *string { return &s }
