package main

import (
	"errors"
	"net/http"
	"time"

	"ApparelStoreAPI/internal/middleware"
	"ApparelStoreAPI/internal/services"

	"github.com/labstack/echo/v4"
)

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func adminLoginHandler(adminSvc *services.AdminService) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(loginRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		if req.Email == "" || req.Password == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "email and password are required"})
		}

		admin, err := adminSvc.Login(c.Request().Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, services.ErrAccountLocked) {
				return c.JSON(http.StatusTooManyRequests, echo.Map{
					"error": "الحساب مقفل مؤقتاً، حاول لاحقاً",
				})
			}
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
		}

		token, err := middleware.GenerateToken(admin.AdminID, admin.Email, middleware.RoleAdmin, 12)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create token"})
		}

		return c.JSON(http.StatusOK, echo.Map{
			"success": true,
			"admin":   admin,
			"token":   token,
		})
	}
}

func adminChangePasswordHandler(adminSvc *services.AdminService) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := middleware.GetClaims(c)

		req := new(changePasswordRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		if req.CurrentPassword == "" || req.NewPassword == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "currentPassword and newPassword are required"})
		}

		err := adminSvc.ChangePassword(c.Request().Context(), claims.UserID, req.CurrentPassword, req.NewPassword)
		if err != nil {
			if errors.Is(err, services.ErrWrongPassword) {
				return c.JSON(http.StatusBadRequest, echo.Map{"error": "كلمة المرور الحالية غير صحيحة"})
			}
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}

		return c.JSON(http.StatusOK, echo.Map{
			"success": true,
			"message": "تم تغيير كلمة المرور",
		})
	}
}

func registerAdminRoutes(g *echo.Group, adminSvc *services.AdminService) {
	admin := g.Group("/admin")

	admin.POST("/auth/login", adminLoginHandler(adminSvc),
		middleware.RateLimit(middleware.NewRateLimiter(10, 15*time.Minute)))

	profile := admin.Group("/profile")
	profile.Use(middleware.JWTMiddleware(), middleware.AdminOnly)
	profile.PUT("/password", adminChangePasswordHandler(adminSvc))
}
