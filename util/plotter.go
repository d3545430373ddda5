package util

import (
	"fmt"
	"io"
	"log"
	"math"
	"os"

	"trends-server/models"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Line colors matching the dark theme, cycled per keyword.
var seriesColors = opts.Colors{"#00FFFF", "#FF69B4", "#00ff99", "#ffff99", "#B2DF8A", "#32AA15"}

const chartBackground = "#19232d"

// ChartMeta carries the query context rendered into chart titles.
type ChartMeta struct {
	Timeframe models.DateRange
	Geo       string
	YouTube   bool
}

func (m ChartMeta) subtitle() string {
	subtitle := "Timeframe: " + m.Timeframe.Start.Format(models.DateLayout) + " to " + m.Timeframe.End.Format(models.DateLayout)
	if m.Geo != "" {
		subtitle += "  Geolocation: " + m.Geo
	}
	if m.YouTube {
		subtitle += "  Source: YouTube Trends"
	} else {
		subtitle += "  Source: Web Search Trends"
	}
	return subtitle
}

// RenderKeywordTrendsChart renders an interactive line chart of the combined
// series, one line per keyword, with axis-pointer tooltips for inspecting
// individual datapoints.
func RenderKeywordTrendsChart(series models.CombinedSeries, keywords []string, meta ChartMeta, w io.Writer) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle:       "Keyword Trends",
			Width:           "1000px",
			Height:          "600px",
			BackgroundColor: chartBackground,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Keyword Trends",
			Subtitle: meta.subtitle(),
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithColorsOpts(seriesColors),
		charts.WithYAxisOpts(opts.YAxis{Name: "Interest over Time"}),
	)

	line.SetXAxis(dateAxis(series))
	for _, keyword := range keywords {
		line.AddSeries(keyword, lineData(series.Column(keyword)))
	}

	return line.Render(w)
}

// RenderInterestRatioChart renders the pointwise ratio of the first keyword
// over the second. Undefined ratios (zero denominator) become gaps in the
// line rather than errors.
func RenderInterestRatioChart(series models.CombinedSeries, keywords []string, meta ChartMeta, w io.Writer) error {
	if len(keywords) != 2 {
		return fmt.Errorf("ratio chart requires exactly 2 keywords, got %d", len(keywords))
	}

	ratio := series.Ratio(keywords[0], keywords[1])

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle:       "Interest Ratio",
			Width:           "1000px",
			Height:          "600px",
			BackgroundColor: chartBackground,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("Interest Ratio Over Time (%s / %s)", keywords[0], keywords[1]),
			Subtitle: meta.subtitle(),
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithColorsOpts(opts.Colors{"#FFA07A"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Interest Ratio"}),
	)

	line.SetXAxis(dateAxis(series))

	points := make([]opts.LineData, len(ratio))
	for i, p := range ratio {
		if math.IsInf(p.Value, 0) || math.IsNaN(p.Value) {
			points[i] = opts.LineData{Value: nil}
			continue
		}
		points[i] = opts.LineData{Value: p.Value}
	}
	line.AddSeries(keywords[0]+" / "+keywords[1], points)

	return line.Render(w)
}

// PlotKeywordTrends renders the trends chart into an HTML file.
func PlotKeywordTrends(series models.CombinedSeries, keywords []string, meta ChartMeta, path string) error {
	return renderToFile(path, func(f io.Writer) error {
		return RenderKeywordTrendsChart(series, keywords, meta, f)
	})
}

// PlotInterestRatio renders the ratio chart into an HTML file.
func PlotInterestRatio(series models.CombinedSeries, keywords []string, meta ChartMeta, path string) error {
	return renderToFile(path, func(f io.Writer) error {
		return RenderInterestRatioChart(series, keywords, meta, f)
	})
}

func renderToFile(path string, render func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	defer f.Close()

	if err := render(f); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	log.Printf("[Plotter] Chart generated: %s", path)
	return nil
}

func dateAxis(series models.CombinedSeries) []string {
	axis := make([]string, len(series))
	for i, p := range series {
		axis[i] = p.Date.Format(models.DateLayout)
	}
	return axis
}

func lineData(values []float64) []opts.LineData {
	points := make([]opts.LineData, len(values))
	for i, v := range values {
		points[i] = opts.LineData{Value: v}
	}
	return points
}
