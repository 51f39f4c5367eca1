package services

import (
	"context"
	"errors"
	"time"

	"ApparelStoreAPI/internal/model"
	"ApparelStoreAPI/internal/repository"
)

var (
	ErrOrderNotFound  = repository.ErrOrderNotFound
	ErrInvalidStatus  = errors.New("invalid order status")
	ErrEmptyOrder     = errors.New("order has no items")
	ErrCouponRejected = errors.New("coupon rejected")
)

type OrderService struct {
	Orders   *repository.OrderRepository
	Products *repository.ProductRepository
	Coupons  *repository.CouponRepository
	Cart     *repository.CartRepository

	ShippingCost float64
}

func NewOrderService(
	or *repository.OrderRepository,
	pr *repository.ProductRepository,
	cr *repository.CouponRepository,
	cart *repository.CartRepository,
	shippingCost float64,
) *OrderService {
	return &OrderService{
		Orders:       or,
		Products:     pr,
		Coupons:      cr,
		Cart:         cart,
		ShippingCost: shippingCost,
	}
}

// ApplyStatusChange moves an order to newStatus and appends one history
// row. Changing to the current status is a silent no-op: no history row,
// no error. An empty note is filled from the status note table; an empty
// changedBy defaults to "Admin".
func (s *OrderService) ApplyStatusChange(ctx context.Context, orderID int64, newStatus, note, changedBy string) error {
	if !ValidStatus(newStatus) {
		return ErrInvalidStatus
	}
	o, err := s.Orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return err
	}
	ch := PlanStatusChange(o.Status, newStatus, note, changedBy)
	if ch == nil {
		return nil
	}
	return s.Orders.UpdateStatusWithHistory(ctx, orderID, ch.OldStatus, ch.NewStatus, ch.Note, ch.ChangedBy)
}

// CancelOrder soft-cancels (status change, record kept) or, when hard is
// set, permanently removes the order with its items and history.
func (s *OrderService) CancelOrder(ctx context.Context, orderID int64, hard bool) error {
	if hard {
		return s.Orders.HardDelete(ctx, orderID)
	}
	return s.ApplyStatusChange(ctx, orderID, StatusCancelled, "", "")
}

// AdminUpdate applies the back-office PATCH: optional status change plus
// optional payment status / admin notes.
func (s *OrderService) AdminUpdate(ctx context.Context, orderID int64, status, paymentStatus, notes *string) (*model.Order, error) {
	if status != nil {
		if err := s.ApplyStatusChange(ctx, orderID, *status, "", ""); err != nil {
			return nil, err
		}
	}
	if paymentStatus != nil || notes != nil {
		if err := s.Orders.UpdateAdminFields(ctx, orderID, paymentStatus, notes); err != nil {
			return nil, err
		}
	}
	return s.Orders.GetOrderByID(ctx, orderID)
}

func (s *OrderService) List(ctx context.Context, status string, limit, offset int) ([]model.Order, error) {
	if status != "" && !ValidStatus(status) {
		return nil, ErrInvalidStatus
	}
	return s.Orders.ListOrders(ctx, status, limit, offset)
}

func (s *OrderService) Get(ctx context.Context, orderID int64) (*model.Order, error) {
	o, err := s.Orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.Items, err = s.Orders.GetItems(ctx, orderID); err != nil {
		return nil, err
	}
	return o, nil
}

// TrackedOrder is the public tracking view: the order plus derived
// presentation fields.
type TrackedOrder struct {
	Order             *model.Order          `json:"order"`
	History           []model.StatusHistory `json:"history"`
	StatusLabel       string                `json:"status_label"`
	StatusProgress    int                   `json:"status_progress"`
	EstimatedDelivery *DateRange            `json:"estimated_delivery,omitempty"`
}

// Track returns the public tracking view of an order.
func (s *OrderService) Track(ctx context.Context, orderID int64) (*TrackedOrder, error) {
	o, err := s.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	history, err := s.Orders.GetHistory(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return &TrackedOrder{
		Order:             o,
		History:           history,
		StatusLabel:       StatusLabel(o.Status),
		StatusProgress:    ProgressPercent(o.Status),
		EstimatedDelivery: DeliveryEstimate(o.Status, o.CreatedAt),
	}, nil
}

// CheckoutItem is one requested line in a checkout payload.
type CheckoutItem struct {
	ProductID int64  `json:"productid"`
	Quantity  int    `json:"quantity"`
	Color     string `json:"color"`
	Size      string `json:"size"`
	DesignID  *int64 `json:"designid,omitempty"`
}

// CheckoutInput carries everything needed to place an order. CustomerID
// is nil for guest checkout; for logged-in customers with an empty Items
// slice the cart is used instead.
type CheckoutInput struct {
	CustomerID   int64
	CustomerName string
	Phone        string
	Address      string
	Items        []CheckoutItem
	CouponCode   string
	Notes        *string
}

// Checkout prices the requested items from current product data, applies
// the coupon when one is given, and creates the order (status pending)
// together with the coupon redemption in one transaction.
func (s *OrderService) Checkout(ctx context.Context, in CheckoutInput) (*model.Order, error) {
	if in.CustomerName == "" || in.Phone == "" || in.Address == "" {
		return nil, errors.New("name, phone and address are required")
	}

	items := in.Items
	if len(items) == 0 && in.CustomerID != 0 {
		cartItems, err := s.Cart.GetItems(ctx, in.CustomerID)
		if err != nil {
			return nil, err
		}
		for _, ci := range cartItems {
			items = append(items, CheckoutItem{
				ProductID: ci.ProductID,
				Quantity:  ci.Quantity,
				Color:     ci.Color,
				Size:      ci.Size,
				DesignID:  ci.DesignID,
			})
		}
	}
	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}

	order := &model.Order{
		CustomerName:  in.CustomerName,
		Phone:         in.Phone,
		Address:       in.Address,
		Status:        StatusPending,
		PaymentStatus: "unpaid",
		ShippingCost:  s.ShippingCost,
		Notes:         in.Notes,
	}
	if in.CustomerID != 0 {
		order.CustomerID = &in.CustomerID
	}

	var subtotal float64
	for _, it := range items {
		if it.Quantity <= 0 {
			return nil, errors.New("quantity must be positive")
		}
		p, err := s.Products.GetByID(ctx, it.ProductID)
		if err != nil {
			return nil, err
		}
		line := model.OrderItem{
			ProductName: p.Name,
			Quantity:    it.Quantity,
			UnitPrice:   p.Price,
			Subtotal:    p.Price * float64(it.Quantity),
			Color:       it.Color,
			Size:        it.Size,
			DesignID:    it.DesignID,
		}
		subtotal += line.Subtotal
		order.Items = append(order.Items, line)
	}

	if in.CouponCode != "" {
		cp, err := s.Coupons.GetByCode(ctx, in.CouponCode)
		if err != nil {
			if errors.Is(err, repository.ErrCouponNotFound) {
				return nil, ErrCouponRejected
			}
			return nil, err
		}
		res := EvaluateCoupon(cp, subtotal, time.Now())
		if !res.Valid {
			return nil, ErrCouponRejected
		}
		order.CouponID = &cp.CouponID
		order.Discount = res.Discount
	}

	order.TotalPrice = subtotal - order.Discount + order.ShippingCost

	orderID, err := s.Orders.CreateOrder(ctx, order)
	if err != nil {
		return nil, err
	}
	order.OrderID = orderID

	// checkout consumed the cart
	if in.CustomerID != 0 && len(in.Items) == 0 {
		if err := s.Cart.Clear(ctx, in.CustomerID); err != nil {
			return order, err
		}
	}
	return order, nil
}
