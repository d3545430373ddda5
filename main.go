package main

import (
	"context"
	"flag"
	"log"
	"strings"
	"time"

	"trends-server/config"
	"trends-server/di"
	"trends-server/models"
	"trends-server/util"
)

func main() {
	var (
		keywordsArg = flag.String("keywords", "PyTorch,TensorFlow", "comma-separated keywords to compare")
		startArg    = flag.String("start", "2015-01-01", "start date (YYYY-MM-DD)")
		endArg      = flag.String("end", time.Now().Format(models.DateLayout), "end date (YYYY-MM-DD)")
		geoArg      = flag.String("geo", "", "region code, empty for worldwide")
		youtubeArg  = flag.Bool("youtube", false, "use video-platform search instead of web search")
		granArg     = flag.String("granularity", "w", "granularity hint: 'd' daily, 'w' weekly, anything else single segment")
		segmentsArg = flag.Int("segments", 0, "explicit segment count override (0 = derive from granularity)")
		chartArg    = flag.String("chart", "trends_chart.html", "output path for the trends chart")
		ratioArg    = flag.String("ratio-chart", "", "output path for the interest ratio chart (requires exactly 2 keywords)")
		csvArg      = flag.String("csv", "", "optional output path for a CSV export")
		serveArg    = flag.Bool("serve", false, "run the HTTP server instead of a one-shot fetch")
	)
	flag.Parse()

	cfg := config.Load()
	container := di.NewContainer(cfg)

	if *serveArg {
		runServer(container, cfg)
		return
	}

	query, keywords := buildQuery(*keywordsArg, *startArg, *endArg, *geoArg, *youtubeArg, *granArg, *segmentsArg)
	runOnce(container, query, keywords, *chartArg, *ratioArg, *csvArg)
}

func buildQuery(keywordsArg, start, end, geo string, youtube bool, granularity string, segments int) (models.TrendsQuery, []string) {
	var keywords []string
	for _, keyword := range strings.Split(keywordsArg, ",") {
		if keyword = strings.TrimSpace(keyword); keyword != "" {
			keywords = append(keywords, keyword)
		}
	}
	if len(keywords) == 0 {
		log.Fatal("at least one keyword is required")
	}

	rng, err := models.ParseDateRange(start, end)
	if err != nil {
		log.Fatalf("invalid date range: %v", err)
	}

	return models.TrendsQuery{
		Keywords:    keywords,
		Range:       rng,
		Geo:         geo,
		YouTube:     youtube,
		Granularity: granularity,
		NumSegments: segments,
	}, keywords
}

func runOnce(container *di.Container, query models.TrendsQuery, keywords []string, chartPath, ratioPath, csvPath string) {
	series, _, err := container.TrendsService.GetTrends(context.Background(), query)
	if err != nil {
		log.Fatalf("trends fetch failed: %v", err)
	}

	meta := util.ChartMeta{Timeframe: query.Range, Geo: query.Geo, YouTube: query.YouTube}

	if err := util.PlotKeywordTrends(series, keywords, meta, chartPath); err != nil {
		log.Fatalf("plot trends: %v", err)
	}

	if ratioPath != "" {
		if err := util.PlotInterestRatio(series, keywords, meta, ratioPath); err != nil {
			log.Fatalf("plot ratio: %v", err)
		}
	}

	if csvPath != "" {
		if err := util.ExportCSV(series, keywords, csvPath); err != nil {
			log.Fatalf("export csv: %v", err)
		}
		log.Printf("CSV exported: %s", csvPath)
	}
}

func runServer(container *di.Container, cfg *config.AppConfig) {
	log.Println("refreshing default query before serving")
	if err := container.TrendsRefresherService.Refresh(context.Background()); err != nil {
		log.Printf("initial refresh failed: %v", err)
	}

	log.Println("starting periodic refresh job")
	if err := container.TrendsRefresherService.StartPeriodicJob(cfg.RefresherInterval); err != nil {
		log.Fatalf("start periodic job: %v", err)
	}
	defer container.TrendsRefresherService.Stop()

	log.Println("starting server")
	container.TrendsHttpServer.Start()
}
