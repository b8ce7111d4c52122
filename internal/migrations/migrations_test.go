package migrations

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/craftroots/marketplace/internal/models"
)

func TestUpAndRollback(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}))
	require.NoError(t, Up(db))

	m := db.Migrator()
	for _, col := range []string{"bio", "location", "specialties", "experience", "image_url"} {
		require.True(t, m.HasColumn(&models.User{}, col), "expected column %s", col)
	}

	require.NoError(t, Rollback(db))
	for _, col := range []string{"bio", "location", "specialties", "experience", "image_url"} {
		require.False(t, m.HasColumn(&models.User{}, col), "expected column %s dropped", col)
	}

	// Steps are idempotent both ways.
	require.NoError(t, Up(db))
	require.True(t, m.HasColumn(&models.User{}, "bio"))
}
