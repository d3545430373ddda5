package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"trends-server/models"
	services "trends-server/service"
	"trends-server/util"
)

const (
	KEYWORDS_QUERY_ARG    = "keywords"
	START_QUERY_ARG       = "start"
	END_QUERY_ARG         = "end"
	GEO_QUERY_ARG         = "geo"
	YOUTUBE_QUERY_ARG     = "youtube"
	GRANULARITY_QUERY_ARG = "granularity"
	SEGMENTS_QUERY_ARG    = "segments"
)

// TrendsResponse is the JSON shape of a pipeline run.
type TrendsResponse struct {
	Keywords    []string              `json:"keywords"`
	Granularity models.Granularity    `json:"granularity,omitempty"`
	Series      models.CombinedSeries `json:"series"`
}

type TrendsHandler struct {
	trendsService *services.TrendsService
	refresher     *services.TrendsRefresherService
}

func NewTrendsHandler(trendsService *services.TrendsService, refresher *services.TrendsRefresherService) *TrendsHandler {
	return &TrendsHandler{trendsService: trendsService, refresher: refresher}
}

// GetTrends handles GET /v1/trends: runs the pipeline for the query
// parameters and returns the stitched series as JSON.
func (h *TrendsHandler) GetTrends(w http.ResponseWriter, r *http.Request) {
	// 1) Parse query args
	query, ok := h.parseArgs(r.URL.Query(), w)
	if !ok {
		return // error already written
	}

	// 2) Run the pipeline
	series, granularity, err := h.trendsService.GetTrends(r.Context(), query)
	if err != nil {
		log.Println("Error fetching trends:", err)
		http.Error(w, "Upstream trends source error", http.StatusBadGateway)
		return
	}

	// 3) Write JSON
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(TrendsResponse{
		Keywords:    query.Keywords,
		Granularity: granularity,
		Series:      series,
	}); err != nil {
		log.Println("Error encoding response:", err)
	}
}

// GetTrendsChart handles GET /v1/trends/chart: runs the pipeline and
// responds with the rendered interactive chart HTML.
func (h *TrendsHandler) GetTrendsChart(w http.ResponseWriter, r *http.Request) {
	query, ok := h.parseArgs(r.URL.Query(), w)
	if !ok {
		return
	}

	series, _, err := h.trendsService.GetTrends(r.Context(), query)
	if err != nil {
		log.Println("Error fetching trends:", err)
		http.Error(w, "Upstream trends source error", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	meta := util.ChartMeta{Timeframe: query.Range, Geo: query.Geo, YouTube: query.YouTube}
	if err := util.RenderKeywordTrendsChart(series, query.Keywords, meta, w); err != nil {
		log.Println("Error rendering chart:", err)
	}
}

// GetInterestRatioChart handles GET /v1/trends/ratio: the ratio of the first
// keyword over the second, as a rendered chart. Requires exactly 2 keywords.
func (h *TrendsHandler) GetInterestRatioChart(w http.ResponseWriter, r *http.Request) {
	query, ok := h.parseArgs(r.URL.Query(), w)
	if !ok {
		return
	}
	if len(query.Keywords) != 2 {
		http.Error(w, "Ratio requires exactly 2 keywords", http.StatusBadRequest)
		return
	}

	series, _, err := h.trendsService.GetTrends(r.Context(), query)
	if err != nil {
		log.Println("Error fetching trends:", err)
		http.Error(w, "Upstream trends source error", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	meta := util.ChartMeta{Timeframe: query.Range, Geo: query.Geo, YouTube: query.YouTube}
	if err := util.RenderInterestRatioChart(series, query.Keywords, meta, w); err != nil {
		log.Println("Error rendering ratio chart:", err)
	}
}

// ExportTrendsCsv handles GET /v1/trends/export: the stitched series as a
// CSV download.
func (h *TrendsHandler) ExportTrendsCsv(w http.ResponseWriter, r *http.Request) {
	query, ok := h.parseArgs(r.URL.Query(), w)
	if !ok {
		return
	}

	series, _, err := h.trendsService.GetTrends(r.Context(), query)
	if err != nil {
		log.Println("Error fetching trends:", err)
		http.Error(w, "Upstream trends source error", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="trends.csv"`)
	if err := util.WriteCSV(series, query.Keywords, w); err != nil {
		log.Println("Error writing csv:", err)
	}
}

// GetLatest handles GET /v1/trends/latest: the refresher's most recent
// snapshot of the default query.
func (h *TrendsHandler) GetLatest(w http.ResponseWriter, r *http.Request) {
	snapshot := h.refresher.Latest()
	if snapshot == nil {
		http.Error(w, "No snapshot available yet", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(snapshot); err != nil {
		log.Println("Error encoding snapshot:", err)
	}
}

// Ping handles GET /ping
func (h *TrendsHandler) Ping(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "pong"})
}

func (h *TrendsHandler) parseArgs(vals url.Values, w http.ResponseWriter) (models.TrendsQuery, bool) {
	var query models.TrendsQuery

	rawKeywords := vals.Get(KEYWORDS_QUERY_ARG)
	if rawKeywords == "" {
		http.Error(w, "Missing argument "+KEYWORDS_QUERY_ARG, http.StatusBadRequest)
		return query, false
	}
	for _, keyword := range strings.Split(rawKeywords, ",") {
		if keyword = strings.TrimSpace(keyword); keyword != "" {
			query.Keywords = append(query.Keywords, keyword)
		}
	}
	if len(query.Keywords) == 0 {
		http.Error(w, "Missing argument "+KEYWORDS_QUERY_ARG, http.StatusBadRequest)
		return query, false
	}

	rng, err := models.ParseDateRange(vals.Get(START_QUERY_ARG), vals.Get(END_QUERY_ARG))
	if err != nil {
		http.Error(w, "Invalid date range: "+err.Error(), http.StatusBadRequest)
		return query, false
	}
	query.Range = rng

	query.Geo = vals.Get(GEO_QUERY_ARG)
	query.Granularity = vals.Get(GRANULARITY_QUERY_ARG)
	if v := vals.Get(YOUTUBE_QUERY_ARG); v != "" {
		query.YouTube, _ = strconv.ParseBool(v)
	}
	if v := vals.Get(SEGMENTS_QUERY_ARG); v != "" {
		segments, err := strconv.Atoi(v)
		if err != nil || segments < 0 {
			http.Error(w, "Invalid argument "+SEGMENTS_QUERY_ARG, http.StatusBadRequest)
			return query, false
		}
		query.NumSegments = segments
	}

	return query, true
}
