package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"estate-backend/internal/services"
)

func TestGetBuyersByStatusRejectsUnknownStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/buyers/status/:status", GetBuyersByStatus(&services.BuyerService{}))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/buyers/status/MAYBE", nil))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown buyer status, got %d", w.Code)
	}
}

func TestGetBuyersByDateRangeRejectsBadDates(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/buyers/date-range", GetBuyersByDateRange(&services.BuyerService{}))

	cases := []string{
		"/api/buyers/date-range",
		"/api/buyers/date-range?startDate=2025-01-01T00:00:00Z",
		"/api/buyers/date-range?startDate=notadate&endDate=2025-01-31T00:00:00Z",
		"/api/buyers/date-range?startDate=2025-01-01T00:00:00Z&endDate=January",
	}
	for _, url := range cases {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", url, nil))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", url, w.Code)
		}
	}
}
