package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func doRequest(t *testing.T, handler echo.HandlerFunc, authHeader string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/store/auth/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec, c
}

func TestJWTMiddleware(t *testing.T) {
	token, err := GenerateToken(42, "test@example.com", RoleCustomer, 1)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"malformed header", "NotBearer " + token, http.StatusUnauthorized},
		{"garbage token", "Bearer not.a.token", http.StatusUnauthorized},
		{"valid token", "Bearer " + token, http.StatusOK},
	}

	h := JWTMiddleware()(okHandler)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, _ := doRequest(t, h, tt.authHeader)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestJWTMiddleware_SetsClaims(t *testing.T) {
	token, _ := GenerateToken(7, "a@b.com", RoleAdmin, 1)

	var got *Claims
	h := JWTMiddleware()(func(c echo.Context) error {
		got = GetClaims(c)
		return c.NoContent(http.StatusOK)
	})
	doRequest(t, h, "Bearer "+token)

	if got == nil {
		t.Fatal("claims not set on context")
	}
	if got.UserID != 7 || got.Email != "a@b.com" || got.Role != RoleAdmin {
		t.Errorf("unexpected claims: %+v", got)
	}
}

func TestAdminOnly(t *testing.T) {
	adminToken, _ := GenerateToken(1, "admin@example.com", RoleAdmin, 1)
	customerToken, _ := GenerateToken(2, "user@example.com", RoleCustomer, 1)

	h := JWTMiddleware()(AdminOnly(okHandler))

	rec, _ := doRequest(t, h, "Bearer "+adminToken)
	if rec.Code != http.StatusOK {
		t.Errorf("admin token: status = %d, want 200", rec.Code)
	}

	rec, _ = doRequest(t, h, "Bearer "+customerToken)
	if rec.Code != http.StatusForbidden {
		t.Errorf("customer token: status = %d, want 403", rec.Code)
	}
}
