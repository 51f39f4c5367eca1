package main

import (
	"errors"
	"net/http"
	"time"

	"ApparelStoreAPI/internal/middleware"
	"ApparelStoreAPI/internal/services"

	"github.com/labstack/echo/v4"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

type resetPasswordRequest struct {
	Email       string `json:"email"`
	OTP         string `json:"otp"`
	NewPassword string `json:"newPassword"`
}

// the forgot/reset endpoints answer identically for existing and unknown
// accounts
const (
	msgResetSent    = "إذا كان البريد مسجلاً لدينا فستصلك رسالة تحتوي رمز الاستعادة"
	msgResetInvalid = "رمز التحقق غير صحيح أو منتهي الصلاحية"
	msgResetDone    = "تم تغيير كلمة المرور بنجاح"
)

func registerHandler(authSvc *services.AuthService) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(registerRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}

		id, err := authSvc.Register(c.Request().Context(), req.Name, req.Email, req.Phone, req.Password)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}

		return c.JSON(http.StatusCreated, echo.Map{
			"success":    true,
			"customerid": id,
			"message":    "تم إنشاء الحساب بنجاح",
		})
	}
}

func loginHandler(authSvc *services.AuthService) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(loginRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		if req.Email == "" || req.Password == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "email and password are required"})
		}

		cu, err := authSvc.Login(c.Request().Context(), req.Email, req.Password)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
		}

		token, err := middleware.GenerateToken(cu.CustomerID, cu.Email, middleware.RoleCustomer, 24)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create token"})
		}

		return c.JSON(http.StatusOK, echo.Map{
			"token":    token,
			"customer": cu,
		})
	}
}

// meHandler returns the authenticated customer's info
func meHandler(authSvc *services.AuthService) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		if claims == nil || claims.Role != middleware.RoleCustomer {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthenticated"})
		}
		cu, err := authSvc.Customers.GetByID(c.Request().Context(), claims.UserID)
		if err != nil {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "customer not found"})
		}
		return c.JSON(http.StatusOK, cu)
	}
}

func forgotPasswordHandler(authSvc *services.AuthService) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(forgotPasswordRequest)
		if err := c.Bind(req); err != nil || req.Email == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "email is required"})
		}

		if err := authSvc.RequestPasswordReset(c.Request().Context(), req.Email); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not process request"})
		}

		// same body whether or not the account exists
		return c.JSON(http.StatusOK, echo.Map{
			"success": true,
			"message": msgResetSent,
		})
	}
}

func resetPasswordHandler(authSvc *services.AuthService) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(resetPasswordRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		if req.Email == "" || req.OTP == "" || req.NewPassword == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "email, otp and newPassword are required"})
		}

		err := authSvc.ResetPassword(c.Request().Context(), req.Email, req.OTP, req.NewPassword)
		if err != nil {
			if errors.Is(err, services.ErrResetInvalid) {
				return c.JSON(http.StatusBadRequest, echo.Map{"error": msgResetInvalid})
			}
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}

		return c.JSON(http.StatusOK, echo.Map{
			"success": true,
			"message": msgResetDone,
		})
	}
}

func registerAuthRoutes(g *echo.Group, authSvc *services.AuthService) {
	auth := g.Group("/auth")

	// public, each with its own abuse budget
	auth.POST("/register", registerHandler(authSvc))
	auth.POST("/login", loginHandler(authSvc),
		middleware.RateLimit(middleware.NewRateLimiter(5, time.Minute)))
	auth.POST("/forgot-password", forgotPasswordHandler(authSvc),
		middleware.RateLimit(middleware.NewRateLimiter(3, time.Hour)))
	auth.POST("/reset-password", resetPasswordHandler(authSvc),
		middleware.RateLimit(middleware.NewRateLimiter(5, 15*time.Minute)))

	// authenticated
	protected := auth.Group("")
	protected.Use(middleware.JWTMiddleware())
	protected.GET("/me", meHandler(authSvc))
}
