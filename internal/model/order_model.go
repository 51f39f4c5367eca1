package model

import "time"

type Order struct {
	OrderID       int64       `json:"orderid"`
	CustomerID    *int64      `json:"customerid,omitempty"` // nil for guest checkout
	CustomerName  string      `json:"customer_name"`
	Phone         string      `json:"phone"`
	Address       string      `json:"address"`
	Status        string      `json:"status"`
	PaymentStatus string      `json:"payment_status"`
	TotalPrice    float64     `json:"totalprice"`
	ShippingCost  float64     `json:"shipping_cost"`
	CouponID      *int64      `json:"couponid,omitempty"`
	Discount      float64     `json:"discount"`
	Notes         *string     `json:"notes,omitempty"`
	AdminNotes    *string     `json:"admin_notes,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
	Items         []OrderItem `json:"items,omitempty"`
}

type OrderItem struct {
	ItemID      int64   `json:"itemid"`
	OrderID     int64   `json:"orderid"`
	ProductName string  `json:"product_name"` // snapshot at purchase time
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitprice"`
	Subtotal    float64 `json:"subtotal"`
	Color       string  `json:"color,omitempty"`
	Size        string  `json:"size,omitempty"`
	DesignID    *int64  `json:"designid,omitempty"`
}

// StatusHistory rows are append-only; they are never updated or deleted
// while the order exists.
type StatusHistory struct {
	HistoryID int64     `json:"historyid"`
	OrderID   int64     `json:"orderid"`
	OldStatus string    `json:"old_status"`
	NewStatus string    `json:"new_status"`
	Note      string    `json:"note"`
	ChangedBy string    `json:"changed_by"`
	ChangedAt time.Time `json:"changed_at"`
}
