package services

import (
	"testing"
	"time"

	"ApparelStoreAPI/internal/model"

	"github.com/stretchr/testify/assert"
)

func ptrF(v float64) *float64 { return &v }
func ptrI(v int) *int         { return &v }

func activeCoupon(typ string, value float64) *model.Coupon {
	return &model.Coupon{
		CouponID:      7,
		Code:          "TEST",
		DiscountType:  typ,
		DiscountValue: value,
		IsActive:      true,
	}
}

func TestEvaluateCoupon_Fixed(t *testing.T) {
	now := time.Now()

	res := EvaluateCoupon(activeCoupon(model.DiscountFixed, 15), 100, now)
	assert.True(t, res.Valid)
	assert.Equal(t, 15.0, res.Discount)

	// fixed discount never exceeds the order total
	res = EvaluateCoupon(activeCoupon(model.DiscountFixed, 15), 10, now)
	assert.True(t, res.Valid)
	assert.Equal(t, 10.0, res.Discount)
}

func TestEvaluateCoupon_Percentage(t *testing.T) {
	now := time.Now()

	res := EvaluateCoupon(activeCoupon(model.DiscountPercentage, 25), 200, now)
	assert.True(t, res.Valid)
	assert.Equal(t, 50.0, res.Discount)

	// cap applies only when exceeded
	cp := activeCoupon(model.DiscountPercentage, 10)
	cp.MaxDiscount = ptrF(5)
	cp.MinOrderValue = ptrF(20)
	res = EvaluateCoupon(cp, 100, now)
	assert.True(t, res.Valid)
	assert.Equal(t, 5.0, res.Discount, "10%% of 100 must be capped at max_discount=5")

	res = EvaluateCoupon(cp, 40, now)
	assert.True(t, res.Valid)
	assert.Equal(t, 4.0, res.Discount, "4 is under the cap and stays as computed")
}

func TestEvaluateCoupon_GatingChecks(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name    string
		mutate  func(*model.Coupon)
		total   float64
		message string
	}{
		{
			name:    "inactive",
			mutate:  func(cp *model.Coupon) { cp.IsActive = false },
			total:   100,
			message: msgCouponInactive,
		},
		{
			name:    "expired",
			mutate:  func(cp *model.Coupon) { cp.ExpiresAt = &past },
			total:   100,
			message: msgCouponExpired,
		},
		{
			name: "usage limit reached",
			mutate: func(cp *model.Coupon) {
				cp.UsageLimit = ptrI(3)
				cp.UsedCount = 3
			},
			total:   100,
			message: msgCouponExhausted,
		},
		{
			name:    "below minimum order",
			mutate:  func(cp *model.Coupon) { cp.MinOrderValue = ptrF(50) },
			total:   49,
			message: msgCouponMinOrder,
		},
		{
			name: "inactive wins over expiry",
			mutate: func(cp *model.Coupon) {
				cp.IsActive = false
				cp.ExpiresAt = &past
			},
			total:   100,
			message: msgCouponInactive,
		},
		{
			name:    "future expiry passes",
			mutate:  func(cp *model.Coupon) { cp.ExpiresAt = &future },
			total:   100,
			message: msgCouponOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cp := activeCoupon(model.DiscountPercentage, 10)
			tt.mutate(cp)
			res := EvaluateCoupon(cp, tt.total, now)
			assert.Equal(t, tt.message, res.Message)
			assert.Equal(t, tt.message == msgCouponOK, res.Valid)
			if !res.Valid {
				assert.Zero(t, res.Discount)
			}
		})
	}
}

func TestEvaluateCoupon_Idempotent(t *testing.T) {
	now := time.Now()
	cp := activeCoupon(model.DiscountPercentage, 10)
	cp.MaxDiscount = ptrF(5)
	cp.UsageLimit = ptrI(100)
	cp.UsedCount = 42

	first := EvaluateCoupon(cp, 100, now)
	second := EvaluateCoupon(cp, 100, now)
	assert.Equal(t, first, second)
	// evaluation must not touch the coupon itself
	assert.Equal(t, 42, cp.UsedCount)
}
