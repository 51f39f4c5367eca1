package main

import (
	"net/http"
	"strconv"

	"ApparelStoreAPI/internal/middleware"
	"ApparelStoreAPI/internal/services"

	"github.com/labstack/echo/v4"
)

type addCartItemRequest struct {
	ProductID int64  `json:"productid"`
	Quantity  int    `json:"quantity"`
	Color     string `json:"color"`
	Size      string `json:"size"`
	DesignID  *int64 `json:"designid,omitempty"`
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func registerCartRoutes(g *echo.Group, cs *services.CartService) {
	cart := g.Group("/cart")
	cart.Use(middleware.JWTMiddleware())

	cart.GET("", func(c echo.Context) error {
		cl := middleware.GetClaims(c)
		view, err := cs.Get(c.Request().Context(), cl.UserID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "something went wrong"})
		}
		return c.JSON(http.StatusOK, view)
	})

	cart.POST("/items", func(c echo.Context) error {
		cl := middleware.GetClaims(c)
		req := new(addCartItemRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		err := cs.AddItem(c.Request().Context(), cl.UserID, req.ProductID, req.Quantity, req.Color, req.Size, req.DesignID)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, echo.Map{"success": true})
	})

	cart.PUT("/items/:id", func(c echo.Context) error {
		cl := middleware.GetClaims(c)
		itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid item id"})
		}
		req := new(setQuantityRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		if err := cs.SetQuantity(c.Request().Context(), cl.UserID, itemID, req.Quantity); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"success": true})
	})

	cart.DELETE("/items/:id", func(c echo.Context) error {
		cl := middleware.GetClaims(c)
		itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid item id"})
		}
		if err := cs.RemoveItem(c.Request().Context(), cl.UserID, itemID); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "something went wrong"})
		}
		return c.JSON(http.StatusOK, echo.Map{"success": true})
	})

	cart.DELETE("", func(c echo.Context) error {
		cl := middleware.GetClaims(c)
		if err := cs.Clear(c.Request().Context(), cl.UserID); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "something went wrong"})
		}
		return c.JSON(http.StatusOK, echo.Map{"success": true})
	})
}
