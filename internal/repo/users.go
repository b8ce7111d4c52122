package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/craftroots/marketplace/internal/models"
)

func (r *GormRepo) CreateUser(ctx context.Context, u *models.User) error {
	return r.DB.WithContext(ctx).Create(u).Error
}

func (r *GormRepo) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// ListArtisans returns every active artisan, in store-default order
// (unspecified, stable only as far as the database guarantees).
func (r *GormRepo) ListArtisans(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := r.DB.WithContext(ctx).
		Where("role = ? AND is_active = ?", models.RoleArtisan, true).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// GetActiveArtisan fetches one artisan that is visible publicly.
func (r *GormRepo) GetActiveArtisan(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	err := r.DB.WithContext(ctx).
		Where("id = ? AND role = ? AND is_active = ?", id, models.RoleArtisan, true).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetArtisan fetches by primary key plus the artisan role predicate,
// regardless of active status. Used by the profile-update path.
func (r *GormRepo) GetArtisan(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	err := r.DB.WithContext(ctx).
		Where("id = ? AND role = ?", id, models.RoleArtisan).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateArtisan applies the patch to the artisan row identified by id. The
// WHERE clause re-checks the role predicate so the write cannot land on a
// non-artisan row.
func (r *GormRepo) UpdateArtisan(ctx context.Context, id uint, patch map[string]any) (*models.User, error) {
	if len(patch) > 0 {
		res := r.DB.WithContext(ctx).
			Model(&models.User{}).
			Where("id = ? AND role = ?", id, models.RoleArtisan).
			Updates(patch)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}
	var u models.User
	if err := r.DB.WithContext(ctx).First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, err
	}
	return &u, nil
}
