package services

import (
	"context"
	"log"
	"sync"
	"time"

	"trends-server/models"

	"github.com/go-co-op/gocron"
)

// TrendsSnapshot is the result of one refresher run, kept in memory for the
// /latest endpoint. Nothing outlives the process.
type TrendsSnapshot struct {
	Query       models.TrendsQuery    `json:"query"`
	Series      models.CombinedSeries `json:"series"`
	Granularity models.Granularity    `json:"granularity,omitempty"`
	RefreshedAt time.Time             `json:"refreshed_at"`
}

// TrendsRefresherService periodically re-runs the pipeline for a fixed
// default query and holds the most recent snapshot.
type TrendsRefresherService struct {
	trendsService *TrendsService
	query         models.TrendsQuery
	scheduler     *gocron.Scheduler

	mu     sync.RWMutex
	latest *TrendsSnapshot
}

// NewTrendsRefresherService constructs a new refresher with dependencies.
func NewTrendsRefresherService(trendsService *TrendsService, query models.TrendsQuery) *TrendsRefresherService {
	return &TrendsRefresherService{
		trendsService: trendsService,
		query:         query,
		scheduler:     gocron.NewScheduler(time.UTC),
	}
}

// StartPeriodicJob launches the background refresh loop at the given interval.
func (tr *TrendsRefresherService) StartPeriodicJob(interval time.Duration) error {
	_, err := tr.scheduler.Every(interval).Do(func() {
		log.Println("[TrendsRefresherService] Running periodic trends refresh job.")
		if err := tr.Refresh(context.Background()); err != nil {
			log.Printf("[TrendsRefresherService] Refresh returned error: %v", err)
		} else {
			log.Println("[TrendsRefresherService] Refresh completed successfully.")
		}
	})
	if err != nil {
		return err
	}
	tr.scheduler.StartAsync()
	return nil
}

// Stop cancels the periodic job.
func (tr *TrendsRefresherService) Stop() {
	tr.scheduler.Stop()
}

// Refresh runs the pipeline once for the default query and replaces the
// held snapshot.
func (tr *TrendsRefresherService) Refresh(ctx context.Context) error {
	series, granularity, err := tr.trendsService.GetTrends(ctx, tr.query)
	if err != nil {
		return err
	}

	tr.mu.Lock()
	tr.latest = &TrendsSnapshot{
		Query:       tr.query,
		Series:      series,
		Granularity: granularity,
		RefreshedAt: time.Now().UTC(),
	}
	tr.mu.Unlock()
	return nil
}

// Latest returns the most recent snapshot, or nil before the first
// successful refresh.
func (tr *TrendsRefresherService) Latest() *TrendsSnapshot {
	tr.mu.RLock()
	defer tr.mu.RUnlock()
	return tr.latest
}
