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

type homepageSectionRequest struct {
	Title    string  `json:"title"`
	Body     *string `json:"body,omitempty"`
	ImageURL *string `json:"image_url,omitempty"`
	Position int     `json:"position"`
	Visible  bool    `json:"visible"`
}

func registerHomepageRoutes(g *echo.Group, hs *services.HomepageService) {
	// storefront sees only visible sections
	g.GET("/homepage", func(c echo.Context) error {
		list, err := hs.ListPublic(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "something went wrong"})
		}
		return c.JSON(http.StatusOK, echo.Map{"sections": list})
	})

	admin := g.Group("/admin/homepage")
	admin.Use(middleware.JWTMiddleware(), middleware.AdminOnly)

	admin.GET("", func(c echo.Context) error {
		list, err := hs.ListAll(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "something went wrong"})
		}
		return c.JSON(http.StatusOK, echo.Map{"sections": list})
	})

	admin.POST("", func(c echo.Context) error {
		req := new(homepageSectionRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		id, err := hs.Create(c.Request().Context(), &model.HomepageSection{
			Title: req.Title, Body: req.Body, ImageURL: req.ImageURL,
			Position: req.Position, Visible: req.Visible,
		})
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, echo.Map{"sectionid": id})
	})

	admin.PUT("/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid section id"})
		}
		req := new(homepageSectionRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		err = hs.Update(c.Request().Context(), &model.HomepageSection{
			SectionID: id, Title: req.Title, Body: req.Body, ImageURL: req.ImageURL,
			Position: req.Position, Visible: req.Visible,
		})
		if err != nil {
			if errors.Is(err, repository.ErrSectionNotFound) {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "section not found"})
			}
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"success": true})
	})

	admin.DELETE("/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid section id"})
		}
		if err := hs.Delete(c.Request().Context(), id); err != nil {
			if errors.Is(err, repository.ErrSectionNotFound) {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "section not found"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "something went wrong"})
		}
		return c.JSON(http.StatusOK, echo.Map{"success": true})
	})
}
