package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"
)

type CatalogRepo interface {
	ListProducts(ctx context.Context, f entities.ProductFilter) ([]entities.Product, error)
	FindProduct(ctx context.Context, ref string) (entities.Product, error)
	CreateProduct(ctx context.Context, p entities.Product) (entities.Product, error)
	UpdateProduct(ctx context.Context, p entities.Product) (entities.Product, error)
	DeleteProduct(ctx context.Context, productID string) error

	ListCategories(ctx context.Context) ([]entities.Category, error)
	FindCategory(ctx context.Context, ref string) (entities.Category, error)
	CreateCategory(ctx context.Context, c entities.Category) (entities.Category, error)
	UpdateCategory(ctx context.Context, c entities.Category) (entities.Category, error)
	DeleteCategory(ctx context.Context, categoryID string) error
}

type catalogService struct {
	logger *slog.Logger
	repo   CatalogRepo
}

func NewCatalogService(logger *slog.Logger, repo CatalogRepo) *catalogService {
	return &catalogService{
		logger: logger.With(slog.String("service", "catalog")),
		repo:   repo,
	}
}

func (s *catalogService) ListProducts(ctx context.Context, f entities.ProductFilter) ([]entities.Product, error) {
	if f.CategoryID != "" {
		c, err := s.repo.FindCategory(ctx, f.CategoryID)
		if err != nil {
			return nil, err
		}
		f.CategoryID = c.ID
	}
	return s.repo.ListProducts(ctx, f)
}

// GetProduct resolves ref as an object id first and as a slug second.
func (s *catalogService) GetProduct(ctx context.Context, ref string) (entities.Product, error) {
	return s.repo.FindProduct(ctx, ref)
}

func (s *catalogService) CreateProduct(ctx context.Context, p entities.Product) (entities.Product, error) {
	if err := p.Prepare(); err != nil {
		return entities.Product{}, err
	}
	if err := s.checkCategory(ctx, p.CategoryID); err != nil {
		return entities.Product{}, err
	}

	now := time.Now().UTC()
	p.CreatedAt, p.UpdatedAt = now, now

	created, err := s.repo.CreateProduct(ctx, p)
	if err != nil {
		return entities.Product{}, err
	}
	s.logger.Info("product created", slog.String("product_id", created.ID), slog.String("slug", created.Slug))
	return created, nil
}

func (s *catalogService) UpdateProduct(ctx context.Context, ref string, patch entities.ProductPatch) (entities.Product, error) {
	p, err := s.repo.FindProduct(ctx, ref)
	if err != nil {
		return entities.Product{}, err
	}

	p.Apply(patch)
	if err := p.Prepare(); err != nil {
		return entities.Product{}, err
	}
	if patch.CategoryID != nil {
		if err := s.checkCategory(ctx, p.CategoryID); err != nil {
			return entities.Product{}, err
		}
	}
	p.UpdatedAt = time.Now().UTC()

	return s.repo.UpdateProduct(ctx, p)
}

func (s *catalogService) DeleteProduct(ctx context.Context, ref string) error {
	p, err := s.repo.FindProduct(ctx, ref)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteProduct(ctx, p.ID); err != nil {
		return err
	}
	s.logger.Info("product deleted", slog.String("product_id", p.ID))
	return nil
}

func (s *catalogService) ListCategories(ctx context.Context) ([]entities.Category, error) {
	return s.repo.ListCategories(ctx)
}

func (s *catalogService) GetCategory(ctx context.Context, ref string) (entities.Category, error) {
	return s.repo.FindCategory(ctx, ref)
}

func (s *catalogService) CreateCategory(ctx context.Context, c entities.Category) (entities.Category, error) {
	if err := c.Prepare(); err != nil {
		return entities.Category{}, err
	}

	now := time.Now().UTC()
	c.CreatedAt, c.UpdatedAt = now, now

	created, err := s.repo.CreateCategory(ctx, c)
	if err != nil {
		return entities.Category{}, err
	}
	s.logger.Info("category created", slog.String("category_id", created.ID), slog.String("slug", created.Slug))
	return created, nil
}

func (s *catalogService) UpdateCategory(ctx context.Context, ref string, patch entities.CategoryPatch) (entities.Category, error) {
	c, err := s.repo.FindCategory(ctx, ref)
	if err != nil {
		return entities.Category{}, err
	}

	c.Apply(patch)
	if err := c.Prepare(); err != nil {
		return entities.Category{}, err
	}
	c.UpdatedAt = time.Now().UTC()

	return s.repo.UpdateCategory(ctx, c)
}

func (s *catalogService) DeleteCategory(ctx context.Context, ref string) error {
	c, err := s.repo.FindCategory(ctx, ref)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteCategory(ctx, c.ID); err != nil {
		return err
	}
	s.logger.Info("category deleted", slog.String("category_id", c.ID))
	return nil
}

// checkCategory rejects products pointing at a missing category.
func (s *catalogService) checkCategory(ctx context.Context, categoryID string) error {
	if categoryID == "" {
		return nil
	}
	if _, err := s.repo.FindCategory(ctx, categoryID); err != nil {
		if entities.IsNotFound(err) {
			return &entities.ValidationError{Field: "category", Reason: "does not exist"}
		}
		return fmt.Errorf("failed to check category: %w", err)
	}
	return nil
}
