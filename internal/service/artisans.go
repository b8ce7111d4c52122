package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/craftroots/marketplace/internal/models"
	"github.com/craftroots/marketplace/internal/repo"
	"github.com/craftroots/marketplace/internal/transport"
)

type ArtisanService struct {
	Repo *repo.GormRepo
}

func (s *ArtisanService) List(ctx context.Context) ([]transport.ArtisanView, error) {
	users, err := s.Repo.ListArtisans(ctx)
	if err != nil {
		return nil, err
	}
	return transport.FormatArtisans(users), nil
}

func (s *ArtisanService) Get(ctx context.Context, id uint) (*transport.ArtisanView, error) {
	u, err := s.Repo.GetActiveArtisan(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: artisan %d", ErrNotFound, id)
		}
		return nil, err
	}
	view := transport.FormatArtisan(u)
	return &view, nil
}

func (s *ArtisanService) ListProducts(ctx context.Context, artisanID uint) ([]models.Product, error) {
	return s.Repo.ListArtisanProducts(ctx, artisanID)
}

// UpdateProfile applies a merge-patch to an artisan profile. The target must
// exist with the artisan role, and only the artisan themselves may edit it.
func (s *ArtisanService) UpdateProfile(ctx context.Context, id, requesterID uint, req transport.UpdateArtisanRequest) (*transport.ArtisanView, error) {
	target, err := s.Repo.GetArtisan(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: artisan %d", ErrNotFound, id)
		}
		return nil, err
	}
	if target.ID != requesterID {
		return nil, fmt.Errorf("%w: not authorized to update this profile", ErrForbidden)
	}

	patch := map[string]any{}
	if req.Name != nil {
		patch["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		patch["email"] = NormalizeEmail(*req.Email)
	}
	if req.Bio != nil {
		patch["bio"] = strings.TrimSpace(*req.Bio)
	}
	if req.Location != nil {
		patch["location"] = strings.TrimSpace(*req.Location)
	}
	if req.Specialties != nil {
		patch["specialties"] = *req.Specialties
	}
	if req.Experience != nil {
		patch["experience"] = strings.TrimSpace(*req.Experience)
	}
	if req.ImageURL != nil {
		patch["image_url"] = *req.ImageURL
	}
	if req.IsActive != nil {
		patch["is_active"] = *req.IsActive
	}

	updated, err := s.Repo.UpdateArtisan(ctx, id, patch)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: artisan %d", ErrNotFound, id)
		}
		return nil, err
	}
	view := transport.FormatArtisan(updated)
	return &view, nil
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
