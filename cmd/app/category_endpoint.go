package main

import (
	"errors"
	"net/http"
	"strconv"

	"ApparelStoreAPI/internal/middleware"
	"ApparelStoreAPI/internal/model"
	"ApparelStoreAPI/internal/repository"
	"ApparelStoreAPI/internal/services"

	"github.com/labstack/echo/v4"
)

type categoryRequest struct {
	Name      string `json:"name"`
	Slug      string `json:"slug,omitempty"`
	SortOrder int    `json:"sort_order"`
}

func registerCategoryRoutes(g *echo.Group, cs *services.CategoryService) {
	g.GET("/categories", func(c echo.Context) error {
		list, err := cs.List(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "something went wrong"})
		}
		return c.JSON(http.StatusOK, echo.Map{"categories": list})
	})

	admin := g.Group("/admin/categories")
	admin.Use(middleware.JWTMiddleware(), middleware.AdminOnly)

	admin.POST("", func(c echo.Context) error {
		req := new(categoryRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		id, err := cs.Create(c.Request().Context(), &model.Category{
			Name: req.Name, Slug: req.Slug, SortOrder: req.SortOrder,
		})
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, echo.Map{"categoryid": id})
	})

	admin.PUT("/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid category id"})
		}
		req := new(categoryRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		err = cs.Update(c.Request().Context(), &model.Category{
			CategoryID: id, Name: req.Name, Slug: req.Slug, SortOrder: req.SortOrder,
		})
		if err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "category not found"})
			}
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"success": true})
	})

	admin.DELETE("/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid category id"})
		}
		if err := cs.Delete(c.Request().Context(), id); err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "category not found"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "something went wrong"})
		}
		return c.JSON(http.StatusOK, echo.Map{"success": true})
	})
}
