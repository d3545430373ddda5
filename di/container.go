package di

import (
	"log"
	"time"

	"trends-server/api"
	"trends-server/api/trends"
	"trends-server/config"
	"trends-server/models"
	"trends-server/server"
	"trends-server/server/handlers"
	services "trends-server/service"

	"github.com/gorilla/mux"
)

// Container holds all application dependencies.
type Container struct {
	Config                 *config.AppConfig
	TrendsAPI              trends.TrendsAPI
	TrendsService          *services.TrendsService
	TrendsRefresherService *services.TrendsRefresherService
	TrendsHandler          *handlers.TrendsHandler
	MuxRouter              *mux.Router
	Router                 *server.Router
	TrendsHttpServer       *server.TrendsHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(cfg *config.AppConfig) *Container {
	log.Printf("initializing container - env: %s", cfg.Env)

	// Initialize Trends API - mock outside prod
	var trendsApiClient trends.TrendsAPI
	if cfg.Env != "prod" {
		trendsApiClient = trends.NewTrendsApiClientMock()
		log.Printf("Using mock trends api")
	} else {
		log.Printf("Using prod trends api")
		httpClient := api.NewHTTPClient(cfg.TrendsEndpointBase)
		trendsApiClient = trends.NewTrendsApiClient(httpClient)
	}

	// Initialize pacing policy
	pacer := services.NewFixedDelayPacer(config.PACING_SEGMENT_THRESHOLD, config.PACING_DELAY)

	// Initialize service layer
	trendsService := services.NewTrendsService(trendsApiClient, pacer)

	// Initialize refresher with the configured default query
	refresher := services.NewTrendsRefresherService(trendsService, defaultQuery(cfg))

	// Initialize handler + routing
	trendsHandler := handlers.NewTrendsHandler(trendsService, refresher)
	muxRouter := mux.NewRouter()
	router := server.NewRouter(trendsHandler, muxRouter)
	trendsHttpServer := server.NewTrendsHttpServer(router, muxRouter, ":"+cfg.Port)

	return &Container{
		Config:                 cfg,
		TrendsAPI:              trendsApiClient,
		TrendsService:          trendsService,
		TrendsRefresherService: refresher,
		TrendsHandler:          trendsHandler,
		MuxRouter:              muxRouter,
		Router:                 router,
		TrendsHttpServer:       trendsHttpServer,
	}
}

// defaultQuery builds the query the refresher keeps warm: the configured
// default keywords from the default start date up to today.
func defaultQuery(cfg *config.AppConfig) models.TrendsQuery {
	today := time.Now().Format(models.DateLayout)
	rng, err := models.ParseDateRange(cfg.DefaultStartDate, today)
	if err != nil {
		log.Fatalf("invalid default start date %q: %v", cfg.DefaultStartDate, err)
	}
	return models.TrendsQuery{
		Keywords:    cfg.DefaultKeywords,
		Range:       rng,
		Geo:         cfg.DefaultGeo,
		Granularity: cfg.DefaultGranularity,
	}
}
