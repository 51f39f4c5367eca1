package main

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"ApparelStoreAPI/internal/middleware"
	"ApparelStoreAPI/internal/model"
	"ApparelStoreAPI/internal/repository"
	"ApparelStoreAPI/internal/services"

	"github.com/labstack/echo/v4"
)

type validateCouponRequest struct {
	Code        string  `json:"code"`
	TotalAmount float64 `json:"totalAmount"`
}

type couponRequest struct {
	Code          string   `json:"code"`
	DiscountType  string   `json:"discount_type"`
	DiscountValue float64  `json:"discount_value"`
	MinOrderValue *float64 `json:"min_order_value,omitempty"`
	MaxDiscount   *float64 `json:"max_discount,omitempty"`
	UsageLimit    *int     `json:"usage_limit,omitempty"`
	IsActive      bool     `json:"is_active"`
	ExpiresAt     *string  `json:"expires_at,omitempty"` // RFC 3339
}

func (r *couponRequest) toModel() (*model.Coupon, error) {
	cp := &model.Coupon{
		Code:          r.Code,
		DiscountType:  r.DiscountType,
		DiscountValue: r.DiscountValue,
		MinOrderValue: r.MinOrderValue,
		MaxDiscount:   r.MaxDiscount,
		UsageLimit:    r.UsageLimit,
		IsActive:      r.IsActive,
	}
	if r.ExpiresAt != nil && *r.ExpiresAt != "" {
		t, err := time.Parse(time.RFC3339, *r.ExpiresAt)
		if err != nil {
			return nil, errors.New("expires_at must be RFC 3339")
		}
		cp.ExpiresAt = &t
	}
	return cp, nil
}

func couponErrJSON(c echo.Context, err error) error {
	if errors.Is(err, repository.ErrCouponNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "coupon not found"})
	}
	return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
}

func validateCouponHandler(cs *services.CouponService) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(validateCouponRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}

		res, err := cs.ValidateAndPrice(c.Request().Context(), req.Code, req.TotalAmount)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "something went wrong"})
		}
		if !res.Valid {
			// unknown code is 404, every other rejection is 400
			status := http.StatusBadRequest
			if res.CouponID == 0 && req.Code != "" {
				status = http.StatusNotFound
			}
			return c.JSON(status, res)
		}
		return c.JSON(http.StatusOK, res)
	}
}

func registerCouponRoutes(g *echo.Group, cs *services.CouponService) {
	g.POST("/coupons/validate", validateCouponHandler(cs))

	admin := g.Group("/admin/coupons")
	admin.Use(middleware.JWTMiddleware(), middleware.AdminOnly)

	admin.GET("", func(c echo.Context) error {
		list, err := cs.List(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "something went wrong"})
		}
		return c.JSON(http.StatusOK, echo.Map{"coupons": list})
	})

	admin.POST("", func(c echo.Context) error {
		req := new(couponRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		cp, err := req.toModel()
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		id, err := cs.Create(c.Request().Context(), cp)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, echo.Map{"couponid": id})
	})

	admin.PUT("/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid coupon id"})
		}
		req := new(couponRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		cp, err := req.toModel()
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		cp.CouponID = id
		if err := cs.Update(c.Request().Context(), cp); err != nil {
			return couponErrJSON(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"success": true})
	})

	admin.DELETE("/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid coupon id"})
		}
		if err := cs.Delete(c.Request().Context(), id); err != nil {
			return couponErrJSON(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"success": true})
	})
}
