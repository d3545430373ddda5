package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"trends-server/api/trends"
	"trends-server/models"
	services "trends-server/service"
)

func newTestHandler(t *testing.T) (*TrendsHandler, *services.TrendsRefresherService) {
	t.Helper()
	trendsService := services.NewTrendsService(trends.NewTrendsApiClientMock(), services.NoDelayPacer{})
	rng, err := models.ParseDateRange("2020-01-01", "2020-01-10")
	if err != nil {
		t.Fatalf("Failed to parse range: %v", err)
	}
	refresher := services.NewTrendsRefresherService(trendsService, models.TrendsQuery{
		Keywords:    []string{"pytorch", "tensorflow"},
		Range:       rng,
		Granularity: "d",
	})
	return NewTrendsHandler(trendsService, refresher), refresher
}

func TestGetTrends_Success(t *testing.T) {
	// Arrange
	handler, _ := newTestHandler(t)
	req := httptest.NewRequest("GET", "/v1/trends?keywords=pytorch,tensorflow&start=2020-01-01&end=2020-01-10&granularity=d", nil)
	rr := httptest.NewRecorder()

	// Act
	handler.GetTrends(rr, req)

	// Assert
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var response TrendsResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(response.Series) != 10 {
		t.Errorf("Expected 10 datapoints, got %d", len(response.Series))
	}
	if response.Granularity != models.GranularityDaily {
		t.Errorf("Expected daily granularity, got %q", response.Granularity)
	}
	if len(response.Keywords) != 2 {
		t.Errorf("Expected 2 keywords, got %d", len(response.Keywords))
	}
}

func TestGetTrends_BadDates(t *testing.T) {
	handler, _ := newTestHandler(t)

	paths := []string{
		"/v1/trends?keywords=pytorch&start=01-01-2020&end=2020-01-10",
		"/v1/trends?keywords=pytorch&start=2020-01-10&end=2020-01-01",
		"/v1/trends?keywords=pytorch",
	}
	for _, path := range paths {
		req := httptest.NewRequest("GET", path, nil)
		rr := httptest.NewRecorder()

		handler.GetTrends(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Errorf("%s: expected status 400, got %d", path, rr.Code)
		}
	}
}

func TestGetTrends_MissingKeywords(t *testing.T) {
	handler, _ := newTestHandler(t)
	req := httptest.NewRequest("GET", "/v1/trends?start=2020-01-01&end=2020-01-10", nil)
	rr := httptest.NewRecorder()

	handler.GetTrends(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rr.Code)
	}
}

func TestGetInterestRatioChart_RequiresTwoKeywords(t *testing.T) {
	handler, _ := newTestHandler(t)
	req := httptest.NewRequest("GET", "/v1/trends/ratio?keywords=pytorch&start=2020-01-01&end=2020-01-10", nil)
	rr := httptest.NewRecorder()

	handler.GetInterestRatioChart(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rr.Code)
	}
}

func TestGetTrendsChart_RendersHtml(t *testing.T) {
	handler, _ := newTestHandler(t)
	req := httptest.NewRequest("GET", "/v1/trends/chart?keywords=pytorch,tensorflow&start=2020-01-01&end=2020-01-10&granularity=d", nil)
	rr := httptest.NewRecorder()

	handler.GetTrendsChart(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}
	if contentType := rr.Header().Get("Content-Type"); !strings.HasPrefix(contentType, "text/html") {
		t.Errorf("Expected text/html content type, got %q", contentType)
	}
	if !strings.Contains(rr.Body.String(), "echarts") {
		t.Error("Expected rendered chart HTML")
	}
}

func TestExportTrendsCsv(t *testing.T) {
	handler, _ := newTestHandler(t)
	req := httptest.NewRequest("GET", "/v1/trends/export?keywords=pytorch,tensorflow&start=2020-01-01&end=2020-01-10&granularity=d", nil)
	rr := httptest.NewRecorder()

	handler.ExportTrendsCsv(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}
	lines := strings.Split(strings.TrimSpace(rr.Body.String()), "\n")
	if lines[0] != "date,pytorch,tensorflow" {
		t.Errorf("CSV header = %q", lines[0])
	}
	if len(lines) != 11 {
		t.Errorf("Expected header + 10 rows, got %d lines", len(lines))
	}
}

func TestGetLatest(t *testing.T) {
	// Arrange
	handler, refresher := newTestHandler(t)

	// Before the first refresh there is nothing to serve.
	rr := httptest.NewRecorder()
	handler.GetLatest(rr, httptest.NewRequest("GET", "/v1/trends/latest", nil))
	if rr.Code != http.StatusNotFound {
		t.Errorf("Expected status 404 before first refresh, got %d", rr.Code)
	}

	// Act
	if err := refresher.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	rr = httptest.NewRecorder()
	handler.GetLatest(rr, httptest.NewRequest("GET", "/v1/trends/latest", nil))

	// Assert
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}
	var snapshot services.TrendsSnapshot
	if err := json.Unmarshal(rr.Body.Bytes(), &snapshot); err != nil {
		t.Fatalf("Failed to decode snapshot: %v", err)
	}
	if len(snapshot.Series) == 0 {
		t.Error("Expected a non-empty snapshot series")
	}
}
