package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"pingtool/internal/models"
)

// LatencyChart renders a probe's per-reply round-trip times as a PNG line
// chart. Lost replies leave gaps in the sequence; at least two received
// replies are needed to draw a line.
func LatencyChart(filename string, result models.ProbeResult) error {
	var xs, ys []float64
	for _, reply := range result.Replies {
		if !reply.Received {
			continue
		}
		xs = append(xs, float64(reply.Seq+1))
		ys = append(ys, reply.RTT)
	}

	if len(xs) < 2 {
		return fmt.Errorf("not enough replies to chart: %d received", len(xs))
	}

	graph := chart.Chart{
		Title: fmt.Sprintf("Ping Latency - %s", result.Target),
		TitleStyle: chart.Style{
			FontSize: 16,
		},
		Background: chart.Style{
			Padding: chart.Box{
				Top:    20,
				Left:   20,
				Right:  20,
				Bottom: 20,
			},
		},
		Width:  800,
		Height: 400,
		XAxis: chart.XAxis{
			Name: "Reply",
			NameStyle: chart.Style{
				FontSize: 12,
			},
			Style: chart.Style{
				StrokeColor: drawing.ColorBlack,
				FontSize:    10,
			},
		},
		YAxis: chart.YAxis{
			Name: "Latency (ms)",
			NameStyle: chart.Style{
				FontSize: 12,
			},
			Style: chart.Style{
				StrokeColor: drawing.ColorBlack,
				FontSize:    10,
			},
			GridMajorStyle: chart.Style{
				StrokeColor: drawing.Color{R: 200, G: 200, B: 200, A: 255},
				StrokeWidth: 1.0,
			},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name: result.Target,
				Style: chart.Style{
					StrokeColor: chart.GetDefaultColor(0),
					StrokeWidth: 2,
				},
				XValues: xs,
				YValues: ys,
			},
		},
	}

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	return graph.Render(chart.PNG, file)
}

// ChartFilename derives a safe PNG filename from a target string.
func ChartFilename(target string) string {
	return fmt.Sprintf("latency_%s.png", sanitizeFilename(target))
}

// sanitizeFilename replaces dots and special characters for safe filenames
func sanitizeFilename(s string) string {
	replacer := strings.NewReplacer(
		".", "_",
		":", "_",
		"/", "_",
		"\\", "_",
		" ", "_",
	)
	return replacer.Replace(s)
}
