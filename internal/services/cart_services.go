package services

import (
	"context"
	"errors"

	"ApparelStoreAPI/internal/model"
	"ApparelStoreAPI/internal/repository"
)

type CartService struct {
	Cart     *repository.CartRepository
	Products *repository.ProductRepository
	Designs  *repository.DesignRepository
}

func NewCartService(cart *repository.CartRepository, pr *repository.ProductRepository, dr *repository.DesignRepository) *CartService {
	return &CartService{Cart: cart, Products: pr, Designs: dr}
}

// CartView is the priced cart as the storefront shows it.
type CartView struct {
	Items    []model.CartItem `json:"items"`
	Subtotal float64          `json:"subtotal"`
}

func (s *CartService) Get(ctx context.Context, customerID int64) (*CartView, error) {
	items, err := s.Cart.GetItems(ctx, customerID)
	if err != nil {
		return nil, err
	}
	view := &CartView{Items: items}
	for _, it := range items {
		view.Subtotal += it.UnitPrice * float64(it.Quantity)
	}
	return view, nil
}

func (s *CartService) AddItem(ctx context.Context, customerID, productID int64, qty int, color, size string, designID *int64) error {
	if qty <= 0 {
		return errors.New("quantity must be positive")
	}
	p, err := s.Products.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if !p.IsActive {
		return errors.New("product is not available")
	}
	if designID != nil {
		d, err := s.Designs.GetByID(ctx, *designID)
		if err != nil {
			return err
		}
		if d.ProductID != productID {
			return errors.New("design belongs to a different product")
		}
	}
	return s.Cart.AddOrIncrementItem(ctx, customerID, productID, qty, color, size, designID)
}

func (s *CartService) SetQuantity(ctx context.Context, customerID, cartItemID int64, qty int) error {
	if qty <= 0 {
		return errors.New("quantity must be positive")
	}
	return s.Cart.SetItemQuantity(ctx, customerID, cartItemID, qty)
}

func (s *CartService) RemoveItem(ctx context.Context, customerID, cartItemID int64) error {
	return s.Cart.RemoveItem(ctx, customerID, cartItemID)
}

func (s *CartService) Clear(ctx context.Context, customerID int64) error {
	return s.Cart.Clear(ctx, customerID)
}
