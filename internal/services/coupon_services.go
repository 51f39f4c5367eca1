package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"ApparelStoreAPI/internal/model"
	"ApparelStoreAPI/internal/repository"
)

// CouponResult is the outcome of validating a code against an order total.
type CouponResult struct {
	Valid    bool    `json:"valid"`
	Discount float64 `json:"discount"`
	CouponID int64   `json:"couponid,omitempty"`
	Code     string  `json:"code,omitempty"`
	Message  string  `json:"message"`
}

// user-facing messages, one per failing check
const (
	msgCouponEmpty     = "يرجى إدخال كود الخصم"
	msgCouponNotFound  = "كود الخصم غير صحيح"
	msgCouponInactive  = "كود الخصم غير مفعل"
	msgCouponExpired   = "كود الخصم منتهي الصلاحية"
	msgCouponExhausted = "تم استنفاد عدد مرات استخدام الكود"
	msgCouponMinOrder  = "قيمة الطلب أقل من الحد الأدنى لاستخدام الكود"
	msgCouponOK        = "تم تطبيق كود الخصم"
)

// EvaluateCoupon runs the gating checks in order and, when they all pass,
// computes the discount. First failing check wins. Pure: no store access,
// no used_count bookkeeping.
func EvaluateCoupon(cp *model.Coupon, orderTotal float64, now time.Time) CouponResult {
	reject := func(msg string) CouponResult {
		return CouponResult{Valid: false, CouponID: cp.CouponID, Code: cp.Code, Message: msg}
	}
	if !cp.IsActive {
		return reject(msgCouponInactive)
	}
	if cp.ExpiresAt != nil && !cp.ExpiresAt.After(now) {
		return reject(msgCouponExpired)
	}
	if cp.UsageLimit != nil && cp.UsedCount >= *cp.UsageLimit {
		return reject(msgCouponExhausted)
	}
	if cp.MinOrderValue != nil && orderTotal < *cp.MinOrderValue {
		return reject(msgCouponMinOrder)
	}

	var discount float64
	switch cp.DiscountType {
	case model.DiscountPercentage:
		discount = orderTotal * cp.DiscountValue / 100
		if cp.MaxDiscount != nil && discount > *cp.MaxDiscount {
			discount = *cp.MaxDiscount
		}
	case model.DiscountFixed:
		discount = cp.DiscountValue
	}
	// a coupon never produces a negative payable total
	if discount > orderTotal {
		discount = orderTotal
	}

	return CouponResult{
		Valid:    true,
		Discount: discount,
		CouponID: cp.CouponID,
		Code:     cp.Code,
		Message:  msgCouponOK,
	}
}

type CouponService struct {
	Coupons *repository.CouponRepository
}

func NewCouponService(r *repository.CouponRepository) *CouponService {
	return &CouponService{Coupons: r}
}

// ValidateAndPrice loads the coupon and evaluates it against the order
// total. It never increments used_count; redemption happens at checkout.
func (s *CouponService) ValidateAndPrice(ctx context.Context, code string, orderTotal float64) (CouponResult, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return CouponResult{Valid: false, Message: msgCouponEmpty}, nil
	}
	cp, err := s.Coupons.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrCouponNotFound) {
			return CouponResult{Valid: false, Message: msgCouponNotFound}, nil
		}
		return CouponResult{}, err
	}
	return EvaluateCoupon(cp, orderTotal, time.Now()), nil
}

func (s *CouponService) List(ctx context.Context) ([]model.Coupon, error) {
	return s.Coupons.List(ctx)
}

func (s *CouponService) Create(ctx context.Context, cp *model.Coupon) (int64, error) {
	if err := validateCouponInput(cp); err != nil {
		return 0, err
	}
	return s.Coupons.Create(ctx, cp)
}

func (s *CouponService) Update(ctx context.Context, cp *model.Coupon) error {
	if err := validateCouponInput(cp); err != nil {
		return err
	}
	return s.Coupons.Update(ctx, cp)
}

func (s *CouponService) Delete(ctx context.Context, couponID int64) error {
	return s.Coupons.Delete(ctx, couponID)
}

func validateCouponInput(cp *model.Coupon) error {
	cp.Code = strings.TrimSpace(cp.Code)
	if cp.Code == "" {
		return errors.New("code is required")
	}
	if cp.DiscountType != model.DiscountPercentage && cp.DiscountType != model.DiscountFixed {
		return errors.New("discount_type must be percentage or fixed")
	}
	if cp.DiscountValue <= 0 {
		return errors.New("discount_value must be positive")
	}
	if cp.DiscountType == model.DiscountPercentage && cp.DiscountValue > 100 {
		return errors.New("percentage discount cannot exceed 100")
	}
	return nil
}
