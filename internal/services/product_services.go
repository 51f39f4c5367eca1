package services

import (
	"context"
	"errors"
	"strings"

	"ApparelStoreAPI/internal/model"
	"ApparelStoreAPI/internal/repository"
)

type ProductService struct {
	Products   *repository.ProductRepository
	Categories *repository.CategoryRepository
}

func NewProductService(pr *repository.ProductRepository, cr *repository.CategoryRepository) *ProductService {
	return &ProductService{Products: pr, Categories: cr}
}

func (s *ProductService) List(ctx context.Context, categoryID *int64, limit, offset int) ([]model.Product, error) {
	return s.Products.List(ctx, categoryID, limit, offset)
}

func (s *ProductService) Get(ctx context.Context, productID int64) (*model.Product, error) {
	return s.Products.GetByID(ctx, productID)
}

func (s *ProductService) Create(ctx context.Context, p *model.Product) (int64, error) {
	if err := s.validate(ctx, p); err != nil {
		return 0, err
	}
	return s.Products.Create(ctx, p)
}

func (s *ProductService) Update(ctx context.Context, p *model.Product) error {
	if err := s.validate(ctx, p); err != nil {
		return err
	}
	return s.Products.Update(ctx, p)
}

func (s *ProductService) Delete(ctx context.Context, productID int64) error {
	return s.Products.SoftDelete(ctx, productID)
}

func (s *ProductService) validate(ctx context.Context, p *model.Product) error {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return errors.New("name is required")
	}
	if p.Price <= 0 {
		return errors.New("price must be positive")
	}
	if p.CategoryID != nil {
		if _, err := s.Categories.GetByID(ctx, *p.CategoryID); err != nil {
			return err
		}
	}
	return nil
}

type CategoryService struct {
	Categories *repository.CategoryRepository
}

func NewCategoryService(cr *repository.CategoryRepository) *CategoryService {
	return &CategoryService{Categories: cr}
}

func (s *CategoryService) List(ctx context.Context) ([]model.Category, error) {
	return s.Categories.List(ctx)
}

func (s *CategoryService) Create(ctx context.Context, ct *model.Category) (int64, error) {
	if err := validateCategory(ct); err != nil {
		return 0, err
	}
	return s.Categories.Create(ctx, ct)
}

func (s *CategoryService) Update(ctx context.Context, ct *model.Category) error {
	if err := validateCategory(ct); err != nil {
		return err
	}
	return s.Categories.Update(ctx, ct)
}

func (s *CategoryService) Delete(ctx context.Context, categoryID int64) error {
	return s.Categories.Delete(ctx, categoryID)
}

func validateCategory(ct *model.Category) error {
	ct.Name = strings.TrimSpace(ct.Name)
	if ct.Name == "" {
		return errors.New("name is required")
	}
	if ct.Slug == "" {
		ct.Slug = strings.ToLower(strings.ReplaceAll(ct.Name, " ", "-"))
	}
	return nil
}
