package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/craftroots/marketplace/internal/models"
)

// ProductFilter is the predicate over the public product listing. Zero-value
// fields impose no constraint; present fields combine with logical AND, the
// search term matching name or description as a substring (LIKE, so case
// handling follows the store's collation).
type ProductFilter struct {
	Category  string
	ArtisanID uint
	Search    string
}

func (f ProductFilter) apply(q *gorm.DB) *gorm.DB {
	q = q.Where("is_active = ?", true)
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.ArtisanID != 0 {
		q = q.Where("artisan_id = ?", f.ArtisanID)
	}
	if f.Search != "" {
		term := "%" + f.Search + "%"
		q = q.Where("name LIKE ? OR description LIKE ?", term, term)
	}
	return q
}

// ListProducts returns the active products matching the filter, in
// store-default order (unspecified, stable only as far as the database
// guarantees).
func (r *GormRepo) ListProducts(ctx context.Context, f ProductFilter) ([]models.Product, error) {
	var items []models.Product
	q := f.apply(r.DB.WithContext(ctx).Model(&models.Product{}))
	if err := q.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetActiveProduct fetches one publicly visible product.
func (r *GormRepo) GetActiveProduct(ctx context.Context, id uint) (*models.Product, error) {
	var p models.Product
	err := r.DB.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetProduct fetches by primary key regardless of active status.
func (r *GormRepo) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	var p models.Product
	if err := r.DB.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *GormRepo) CreateProduct(ctx context.Context, p *models.Product) error {
	return r.DB.WithContext(ctx).Create(p).Error
}

// UpdateProductOwned applies the patch with a single conditional write keyed
// on the owner column, so the ownership check and the write observe the same
// row state. A zero-row result is disambiguated into not-found vs not-owner
// with a follow-up primary-key read.
func (r *GormRepo) UpdateProductOwned(ctx context.Context, id, artisanID uint, patch map[string]any) (*models.Product, error) {
	if len(patch) == 0 {
		p, err := r.GetProduct(ctx, id)
		if err != nil {
			return nil, err
		}
		if p.ArtisanID != artisanID {
			return nil, ErrNotOwner
		}
		return p, nil
	}

	res := r.DB.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ? AND artisan_id = ?", id, artisanID).
		Updates(patch)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		if _, err := r.GetProduct(ctx, id); err != nil {
			return nil, err
		}
		return nil, ErrNotOwner
	}

	return r.GetProduct(ctx, id)
}

// DeleteProductOwned hard-deletes with the same conditional owner-keyed shape.
func (r *GormRepo) DeleteProductOwned(ctx context.Context, id, artisanID uint) error {
	res := r.DB.WithContext(ctx).
		Where("id = ? AND artisan_id = ?", id, artisanID).
		Delete(&models.Product{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		if _, err := r.GetProduct(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return gorm.ErrRecordNotFound
			}
			return err
		}
		return ErrNotOwner
	}
	return nil
}

// ListArtisanProducts returns an artisan's active products.
func (r *GormRepo) ListArtisanProducts(ctx context.Context, artisanID uint) ([]models.Product, error) {
	return r.ListProducts(ctx, ProductFilter{ArtisanID: artisanID})
}
