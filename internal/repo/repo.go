package repo

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotOwner marks a conditional write that matched the primary key but not
// the owning identity.
var ErrNotOwner = errors.New("record owned by another user")

type GormRepo struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *GormRepo {
	return &GormRepo{DB: db}
}
