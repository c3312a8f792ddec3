package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"estate-backend/internal/services"
)

func TestGetApartmentsByStatusRejectsUnknownStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/apartments/status/:status", GetApartmentsByStatus(&services.ApartmentService{}))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/apartments/status/PENDING", nil))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown status, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "unknown status") {
		t.Fatalf("expected error body, got %s", w.Body.String())
	}
}

func TestGetApartmentsByPriceRangeRejectsMissingBounds(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/apartments/price", GetApartmentsByPriceRange(&services.ApartmentService{}))

	cases := []string{
		"/api/apartments/price",
		"/api/apartments/price?minPrice=100",
		"/api/apartments/price?minPrice=abc&maxPrice=200",
		"/api/apartments/price?minPrice=100&maxPrice=xyz",
	}
	for _, url := range cases {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", url, nil))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", url, w.Code)
		}
	}
}

func TestCreateApartmentRejectsMissingEntityPart(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/apartments", CreateApartment(&services.ApartmentService{}))

	req := httptest.NewRequest("POST", "/api/apartments", strings.NewReader(""))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=xxx")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without apartment part, got %d", w.Code)
	}
}
