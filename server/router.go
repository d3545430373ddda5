package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// TrendsRoutes is the handler surface the router wires up; satisfied by
// handlers.TrendsHandler and by test doubles.
type TrendsRoutes interface {
	GetTrends(w http.ResponseWriter, r *http.Request)
	GetTrendsChart(w http.ResponseWriter, r *http.Request)
	GetInterestRatioChart(w http.ResponseWriter, r *http.Request)
	ExportTrendsCsv(w http.ResponseWriter, r *http.Request)
	GetLatest(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	trendsHandler TrendsRoutes
	router        *mux.Router
}

// NewRouter creates a router with the app’s routes.
func NewRouter(
	trendsHandler TrendsRoutes,
	router *mux.Router) *Router {
	return &Router{
		trendsHandler: trendsHandler,
		router:        router,
	}
}

func (r *Router) RegisterRoutes() {
	// expects ?keywords={a,b}&start={YYYY-MM-DD}&end={YYYY-MM-DD}
	// plus optional geo, youtube, granularity, segments
	r.router.HandleFunc("/v1/trends", r.trendsHandler.GetTrends).Methods("GET")
	r.router.HandleFunc("/v1/trends/chart", r.trendsHandler.GetTrendsChart).Methods("GET")
	r.router.HandleFunc("/v1/trends/ratio", r.trendsHandler.GetInterestRatioChart).Methods("GET")
	r.router.HandleFunc("/v1/trends/export", r.trendsHandler.ExportTrendsCsv).Methods("GET")
	r.router.HandleFunc("/v1/trends/latest", r.trendsHandler.GetLatest).Methods("GET")

	r.router.HandleFunc("/ping", r.trendsHandler.Ping).Methods("GET")
}
