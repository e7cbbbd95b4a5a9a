package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"sort"
	"time"

	"LWR-Cipher/keccak"
	"LWR-Cipher/keys"
	"LWR-Cipher/prf"
	"LWR-Cipher/prof"
	"LWR-Cipher/sponge"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// analysis measures per-operation latency of the permutation, the sponge,
// and full PRF evaluations, then writes a JSON summary and an HTML page of
// charts.

type summaryStats struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean_us"`
	Std    float64 `json:"std_us"`
	Min    float64 `json:"min_us"`
	Median float64 `json:"median_us"`
	Max    float64 `json:"max_us"`
}

func computeStats(vals []float64) summaryStats {
	if len(vals) == 0 {
		return summaryStats{}
	}
	sorted := append([]float64(nil), vals...)
	sort.Float64s(sorted)
	var sum, sqsum float64
	for _, v := range sorted {
		sum += v
		sqsum += v * v
	}
	mean := sum / float64(len(sorted))
	variance := sqsum/float64(len(sorted)) - mean*mean
	if variance < 0 {
		variance = 0
	}
	return summaryStats{
		Count:  len(sorted),
		Mean:   mean,
		Std:    math.Sqrt(variance),
		Min:    sorted[0],
		Median: sorted[len(sorted)/2],
		Max:    sorted[len(sorted)-1],
	}
}

func measure(runs int, label string, op func()) {
	for i := 0; i < runs; i++ {
		start := time.Now()
		op()
		prof.Track(start, label)
	}
}

func toLineItems(vals []float64) []opts.LineData {
	out := make([]opts.LineData, len(vals))
	for i, v := range vals {
		out[i] = opts.LineData{Value: v}
	}
	return out
}

func newLatencyChart(title string, vals []float64, stats summaryStats) *charts.Line {
	xLabels := make([]string, len(vals))
	for i := range xLabels {
		xLabels[i] = fmt.Sprintf("%d", i)
	}
	line := charts.NewLine()
	subtitle := fmt.Sprintf("n=%d, mean=%.2fus, std=%.2fus, median=%.2fus", stats.Count, stats.Mean, stats.Std, stats.Median)
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "1200px", Height: "500px"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "inside"}, opts.DataZoom{Type: "slider"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	line.SetXAxis(xLabels).AddSeries("latency (us)", toLineItems(vals))
	return line
}

func saveJSON(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

func main() {
	runs := flag.Int("runs", 200, "measurement runs per operation")
	outDir := flag.String("out", "Measure_Reports", "output directory for reports")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("mkdir: %v", err)
	}

	params := prf.DefaultParams()
	key, err := keys.Generate(params.NLWR, []byte("analysis key"))
	if err != nil {
		log.Fatalf("generate key: %v", err)
	}

	var st keccak.State
	measure(*runs, "keccak_f1600", func() {
		keccak.Permute(&st)
	})

	msg := make([]byte, 1024)
	measure(*runs, "shake256_1KiB_64B", func() {
		sponge.Sum256(msg, 64)
	})

	var idx uint64
	measure(*runs, "prf_evaluate_n445", func() {
		if _, err := prf.Evaluate(params, key, 1, idx); err != nil {
			log.Fatalf("evaluate: %v", err)
		}
		idx++
	})

	labels := []string{"keccak_f1600", "shake256_1KiB_64B", "prf_evaluate_n445"}
	entries := prof.SnapshotAndReset()
	series := make(map[string][]float64, len(labels))
	stats := make(map[string]summaryStats, len(labels))
	for _, name := range labels {
		series[name] = prof.Microseconds(entries, name)
		stats[name] = computeStats(series[name])
	}

	ts := time.Now().Format("20060102_150405")
	jsonPath := filepath.Join(*outDir, fmt.Sprintf("latency_stats_%s.json", ts))
	if err := saveJSON(jsonPath, stats); err != nil {
		log.Printf("warn: save stats: %v", err)
	}

	page := components.NewPage()
	for _, name := range labels {
		page.AddCharts(newLatencyChart(name, series[name], stats[name]))
	}

	htmlPath := filepath.Join(*outDir, fmt.Sprintf("latency_%s.html", ts))
	f, err := os.Create(htmlPath)
	if err != nil {
		log.Fatalf("create html: %v", err)
	}
	defer f.Close()
	if err := page.Render(f); err != nil {
		log.Fatalf("render html: %v", err)
	}
	fmt.Println("Latency page:", htmlPath)
	fmt.Println("Stats JSON:", jsonPath)
}
