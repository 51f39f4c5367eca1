package model

import "time"

const (
	DiscountPercentage = "percentage"
	DiscountFixed      = "fixed"
)

type Coupon struct {
	CouponID      int64      `json:"couponid"`
	Code          string     `json:"code"`
	DiscountType  string     `json:"discount_type"` // percentage | fixed
	DiscountValue float64    `json:"discount_value"`
	MinOrderValue *float64   `json:"min_order_value,omitempty"`
	MaxDiscount   *float64   `json:"max_discount,omitempty"` // percentage type only
	UsageLimit    *int       `json:"usage_limit,omitempty"`
	UsedCount     int        `json:"used_count"`
	IsActive      bool       `json:"is_active"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}
