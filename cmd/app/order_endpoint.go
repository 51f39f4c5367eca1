package main

import (
	"errors"
	"net/http"
	"strconv"

	"ApparelStoreAPI/internal/middleware"
	"ApparelStoreAPI/internal/services"

	"github.com/labstack/echo/v4"
)

type checkoutRequest struct {
	CustomerName string                  `json:"customer_name"`
	Phone        string                  `json:"phone"`
	Address      string                  `json:"address"`
	Items        []services.CheckoutItem `json:"items,omitempty"`
	CouponCode   string                  `json:"coupon_code,omitempty"`
	Notes        *string                 `json:"notes,omitempty"`
}

type adminOrderPatchRequest struct {
	Status        *string `json:"status,omitempty"`
	PaymentStatus *string `json:"paymentStatus,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

func checkoutHandler(os *services.OrderService) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(checkoutRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}

		in := services.CheckoutInput{
			CustomerName: req.CustomerName,
			Phone:        req.Phone,
			Address:      req.Address,
			Items:        req.Items,
			CouponCode:   req.CouponCode,
			Notes:        req.Notes,
		}
		// guest checkout is allowed; a valid token attaches the order
		// to the account
		if cl := middleware.TryGetClaimsFromAuthHeader(c); cl != nil && cl.Role == middleware.RoleCustomer {
			in.CustomerID = cl.UserID
		}

		order, err := os.Checkout(c.Request().Context(), in)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrCouponRejected):
				return c.JSON(http.StatusBadRequest, echo.Map{"error": "كود الخصم غير صالح"})
			case errors.Is(err, services.ErrEmptyOrder):
				return c.JSON(http.StatusBadRequest, echo.Map{"error": "السلة فارغة"})
			default:
				return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
			}
		}

		return c.JSON(http.StatusCreated, echo.Map{
			"success": true,
			"order":   order,
		})
	}
}

// trackOrderHandler is public: customers follow a link from the
// confirmation message, no login required.
func trackOrderHandler(os *services.OrderService) echo.HandlerFunc {
	return func(c echo.Context) error {
		orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid order id"})
		}

		tracked, err := os.Track(c.Request().Context(), orderID)
		if err != nil {
			if errors.Is(err, services.ErrOrderNotFound) {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "الطلب غير موجود"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "something went wrong"})
		}

		return c.JSON(http.StatusOK, tracked)
	}
}

func adminListOrdersHandler(os *services.OrderService) echo.HandlerFunc {
	return func(c echo.Context) error {
		limit, _ := strconv.Atoi(c.QueryParam("limit"))
		offset, _ := strconv.Atoi(c.QueryParam("offset"))

		orders, err := os.List(c.Request().Context(), c.QueryParam("status"), limit, offset)
		if err != nil {
			if errors.Is(err, services.ErrInvalidStatus) {
				return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown status filter"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "something went wrong"})
		}
		return c.JSON(http.StatusOK, echo.Map{"orders": orders})
	}
}

func adminGetOrderHandler(os *services.OrderService) echo.HandlerFunc {
	return func(c echo.Context) error {
		orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid order id"})
		}
		order, err := os.Get(c.Request().Context(), orderID)
		if err != nil {
			if errors.Is(err, services.ErrOrderNotFound) {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "order not found"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "something went wrong"})
		}
		return c.JSON(http.StatusOK, order)
	}
}

func adminPatchOrderHandler(os *services.OrderService) echo.HandlerFunc {
	return func(c echo.Context) error {
		orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid order id"})
		}

		req := new(adminOrderPatchRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}

		order, err := os.AdminUpdate(c.Request().Context(), orderID, req.Status, req.PaymentStatus, req.Notes)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrOrderNotFound):
				return c.JSON(http.StatusNotFound, echo.Map{"error": "order not found"})
			case errors.Is(err, services.ErrInvalidStatus):
				return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown status"})
			default:
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "something went wrong"})
			}
		}

		return c.JSON(http.StatusOK, echo.Map{
			"success": true,
			"order":   order,
			"message": "تم تحديث الطلب",
		})
	}
}

func adminDeleteOrderHandler(os *services.OrderService) echo.HandlerFunc {
	return func(c echo.Context) error {
		orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid order id"})
		}

		hard := c.QueryParam("hard") == "true"
		if err := os.CancelOrder(c.Request().Context(), orderID, hard); err != nil {
			if errors.Is(err, services.ErrOrderNotFound) {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "order not found"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "something went wrong"})
		}

		msg := "تم إلغاء الطلب"
		if hard {
			msg = "تم حذف الطلب نهائياً"
		}
		return c.JSON(http.StatusOK, echo.Map{
			"success": true,
			"message": msg,
		})
	}
}

func registerOrderRoutes(g *echo.Group, os *services.OrderService) {
	orders := g.Group("/orders")

	// public
	orders.POST("/checkout", checkoutHandler(os))
	orders.GET("/track/:id", trackOrderHandler(os))

	// back-office
	admin := g.Group("/admin/orders")
	admin.Use(middleware.JWTMiddleware(), middleware.AdminOnly)
	admin.GET("", adminListOrdersHandler(os))
	admin.GET("/:id", adminGetOrderHandler(os))
	admin.PATCH("/:id", adminPatchOrderHandler(os))
	admin.DELETE("/:id", adminDeleteOrderHandler(os))
}
