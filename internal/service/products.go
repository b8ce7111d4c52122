package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/craftroots/marketplace/internal/events"
	"github.com/craftroots/marketplace/internal/logging"
	"github.com/craftroots/marketplace/internal/models"
	"github.com/craftroots/marketplace/internal/repo"
	"github.com/craftroots/marketplace/internal/search"
	"github.com/craftroots/marketplace/internal/transport"
)

type ProductService struct {
	Repo     *repo.GormRepo
	Producer events.Publisher
	Indexer  search.Indexer
}

func (s *ProductService) List(ctx context.Context, f repo.ProductFilter) ([]models.Product, error) {
	return s.Repo.ListProducts(ctx, f)
}

func (s *ProductService) Get(ctx context.Context, id uint) (*models.Product, error) {
	p, err := s.Repo.GetActiveProduct(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product %d", ErrNotFound, id)
		}
		return nil, err
	}
	return p, nil
}

// Create stamps the requester as the owning artisan; the client cannot pick
// an owner.
func (s *ProductService) Create(ctx context.Context, artisanID uint, req transport.CreateProductRequest) (*models.Product, error) {
	p := &models.Product{
		Name:                 req.Name,
		Description:          req.Description,
		Price:                req.Price,
		Category:             req.Category,
		ImageURL:             req.ImageURL,
		CulturalSignificance: req.CulturalSignificance,
		Materials:            req.Materials,
		Stock:                req.Stock,
		IsActive:             true,
		ArtisanID:            artisanID,
	}
	if err := s.Repo.CreateProduct(ctx, p); err != nil {
		return nil, err
	}

	s.publish(ctx, map[string]any{
		"type":      "product_created",
		"productID": p.ID,
		"artisanID": p.ArtisanID,
		"name":      p.Name,
	})
	s.index(ctx, p)
	return p, nil
}

// Update applies a merge-patch; the write itself is keyed on the owner column
// so ownership cannot change between check and write.
func (s *ProductService) Update(ctx context.Context, id, artisanID uint, req transport.UpdateProductRequest) (*models.Product, error) {
	patch := map[string]any{}
	if req.Name != nil {
		patch["name"] = *req.Name
	}
	if req.Description != nil {
		patch["description"] = *req.Description
	}
	if req.Price != nil {
		patch["price"] = *req.Price
	}
	if req.Category != nil {
		patch["category"] = *req.Category
	}
	if req.ImageURL != nil {
		patch["image_url"] = *req.ImageURL
	}
	if req.CulturalSignificance != nil {
		patch["cultural_significance"] = *req.CulturalSignificance
	}
	if req.Materials != nil {
		patch["materials"] = *req.Materials
	}
	if req.Stock != nil {
		patch["stock"] = *req.Stock
	}
	if req.IsActive != nil {
		patch["is_active"] = *req.IsActive
	}

	p, err := s.Repo.UpdateProductOwned(ctx, id, artisanID, patch)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, fmt.Errorf("%w: product %d", ErrNotFound, id)
		case errors.Is(err, repo.ErrNotOwner):
			return nil, fmt.Errorf("%w: not authorized to update this product", ErrForbidden)
		}
		return nil, err
	}

	s.publish(ctx, map[string]any{
		"type":      "product_updated",
		"productID": p.ID,
		"artisanID": p.ArtisanID,
		"name":      p.Name,
	})
	s.index(ctx, p)
	return p, nil
}

func (s *ProductService) Delete(ctx context.Context, id, artisanID uint) error {
	if err := s.Repo.DeleteProductOwned(ctx, id, artisanID); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return fmt.Errorf("%w: product %d", ErrNotFound, id)
		case errors.Is(err, repo.ErrNotOwner):
			return fmt.Errorf("%w: not authorized to delete this product", ErrForbidden)
		}
		return err
	}

	s.publish(ctx, map[string]any{
		"type":      "product_deleted",
		"productID": id,
	})
	if s.Indexer != nil {
		if err := s.Indexer.DeleteProduct(ctx, id); err != nil {
			logging.FromContext(ctx).Warn("search_deindex_failed", "product_id", id, "error", err)
		}
	}
	return nil
}

func (s *ProductService) publish(ctx context.Context, event map[string]any) {
	if s.Producer == nil {
		return
	}
	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	key := fmt.Sprint(event["productID"])
	if err := s.Producer.PublishEvent(pubCtx, events.TopicProductEvents, key, event); err != nil {
		logging.FromContext(ctx).Warn("event_publish_failed", "topic", events.TopicProductEvents, "error", err)
	}
}

func (s *ProductService) index(ctx context.Context, p *models.Product) {
	if s.Indexer == nil {
		return
	}
	if err := s.Indexer.IndexProduct(ctx, p); err != nil {
		logging.FromContext(ctx).Warn("search_index_failed", "product_id", p.ID, "error", err)
	}
}
