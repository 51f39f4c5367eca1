package model

import "time"

type CartItem struct {
	CartItemID int64     `json:"cartitemid"`
	CustomerID int64     `json:"customerid"`
	ProductID  int64     `json:"productid"`
	Quantity   int       `json:"quantity"`
	Color      string    `json:"color,omitempty"`
	Size       string    `json:"size,omitempty"`
	DesignID   *int64    `json:"designid,omitempty"`
	AddedAt    time.Time `json:"added_at"`

	// joined from products for display
	ProductName string  `json:"product_name,omitempty"`
	UnitPrice   float64 `json:"unitprice,omitempty"`
}
