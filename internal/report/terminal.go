package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"pingtool/internal/models"
	"pingtool/internal/stats"
)

// Terminal renders probe results for an interactive session.
type Terminal struct {
	out io.Writer
}

// NewTerminal creates a Terminal writing to stdout.
func NewTerminal() *Terminal {
	return &Terminal{out: os.Stdout}
}

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed)
	bold   = color.New(color.Bold)
)

// Render prints one probe result: a success banner, packet statistics,
// latency figures when defined, and per-reply lines with a color-coded
// latency rating.
func (t *Terminal) Render(result models.ProbeResult) {
	fmt.Fprintln(t.out)

	if !result.Success {
		red.Fprintln(t.out, "Ping failed")
		if result.Error != "" {
			fmt.Fprintf(t.out, "  Error: %s\n", result.Error)
		}
		if result.Sent > 0 {
			fmt.Fprintf(t.out, "  Packets Sent:     %d\n", result.Sent)
			fmt.Fprintf(t.out, "  Packets Received: %d\n", result.Received)
			fmt.Fprintf(t.out, "  Packet Loss:      %.1f%%\n", result.Loss)
		}
		fmt.Fprintln(t.out)
		return
	}

	green.Fprintln(t.out, "Ping successful")

	bold.Fprintf(t.out, "\nStatistics for %s:\n", result.Target)
	fmt.Fprintln(t.out, strings.Repeat("-", 60))
	fmt.Fprintf(t.out, "  Packets Sent:     %d\n", result.Sent)
	fmt.Fprintf(t.out, "  Packets Received: %d\n", result.Received)
	fmt.Fprintf(t.out, "  Packet Loss:      %.1f%%\n", result.Loss)

	if result.HasLatency {
		bold.Fprintln(t.out, "\nLatency:")
		fmt.Fprintln(t.out, strings.Repeat("-", 60))
		fmt.Fprintf(t.out, "  Minimum:  %.2f ms\n", result.MinRTT)
		fmt.Fprintf(t.out, "  Average:  %.2f ms\n", result.AvgRTT)
		fmt.Fprintf(t.out, "  Maximum:  %.2f ms\n", result.MaxRTT)
	}

	if len(result.Replies) > 0 {
		bold.Fprintln(t.out, "\nIndividual Response Times:")
		fmt.Fprintln(t.out, strings.Repeat("-", 60))
		for _, reply := range result.Replies {
			if !reply.Received {
				red.Fprintf(t.out, "  Reply %d: lost\n", reply.Seq+1)
				continue
			}
			rating := stats.Classify(reply.RTT)
			ratingColor(rating).Fprintf(t.out, "  Reply %d: %.2f ms (%s)\n", reply.Seq+1, reply.RTT, rating)
		}
	}

	fmt.Fprintln(t.out, strings.Repeat("=", 60))
}

// RenderError prints a validation or usage error.
func (t *Terminal) RenderError(err error) {
	red.Fprintf(t.out, "%v\n", err)
}

func ratingColor(r stats.Rating) *color.Color {
	switch r {
	case stats.RatingExcellent:
		return green
	case stats.RatingGood:
		return yellow
	default:
		return red
	}
}
