package main

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"ApparelStoreAPI/internal/middleware"
	"ApparelStoreAPI/internal/repository"
	"ApparelStoreAPI/internal/services"

	"github.com/labstack/echo/v4"
)

// registerDesignRoutes mounts the custom designer upload endpoint.
// multipart form: file=artwork, productid, placement (canvas JSON).
// Works for guests too; a token attaches the design to the account.
func registerDesignRoutes(g *echo.Group, ds *services.DesignService) {
	g.POST("/designs", func(c echo.Context) error {
		productID, err := strconv.ParseInt(c.FormValue("productid"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid productid"})
		}

		fh, err := c.FormFile("file")
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "artwork file is required"})
		}
		f, err := fh.Open()
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "could not read artwork"})
		}
		defer f.Close()
		artwork, err := io.ReadAll(f)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "could not read artwork"})
		}

		var customerID *int64
		if cl := middleware.TryGetClaimsFromAuthHeader(c); cl != nil && cl.Role == middleware.RoleCustomer {
			customerID = &cl.UserID
		}

		d, err := ds.CreateDesign(
			c.Request().Context(),
			customerID,
			productID,
			fh.Filename,
			artwork,
			[]byte(c.FormValue("placement")),
		)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
			}
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}

		return c.JSON(http.StatusCreated, echo.Map{
			"success": true,
			"design":  d,
		})
	})

	g.GET("/designs/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid design id"})
		}
		d, err := ds.Get(c.Request().Context(), id)
		if err != nil {
			if errors.Is(err, repository.ErrDesignNotFound) {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "design not found"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "something went wrong"})
		}
		return c.JSON(http.StatusOK, d)
	})
}
