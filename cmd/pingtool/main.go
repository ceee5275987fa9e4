package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"pingtool/internal/config"
	"pingtool/internal/executor"
	"pingtool/internal/logfile"
	"pingtool/internal/models"
	"pingtool/internal/probe"
	"pingtool/internal/report"
)

func main() {
	cfg, err := config.ParseFlags()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	config.SetupLogger(cfg)

	prober := probe.New(executor.New(), cfg.ReplyBound)
	store := logfile.New(cfg.LogFile)
	term := report.NewTerminal()

	a := &app{
		cfg:    cfg,
		prober: prober,
		store:  store,
		term:   term,
		stdin:  bufio.NewScanner(os.Stdin),
	}

	// One-shot mode: probe, print, log, exit.
	if cfg.Target != "" {
		os.Exit(a.runOnce())
	}

	a.runMenu()
}

type app struct {
	cfg    config.Config
	prober *probe.Prober
	store  models.LogStore
	term   models.Reporter
	stdin  *bufio.Scanner

	// last successful probe, kept for charting
	last *models.ProbeResult
}

func (a *app) runOnce() int {
	result, err := a.prober.Probe(context.Background(), a.cfg.Target, a.cfg.Count)
	if err != nil {
		a.term.RenderError(err)
		return 1
	}

	a.term.Render(result)
	if err := a.store.Append(result); err != nil {
		log.Errorf("Could not write to log file: %v", err)
	}

	if a.cfg.Chart && result.Success {
		filename := report.ChartFilename(result.Target)
		if err := report.LatencyChart(filename, result); err != nil {
			log.Warnf("Could not render chart: %v", err)
		} else {
			fmt.Printf("Chart written to %s\n", filename)
		}
	}

	if !result.Success {
		return 1
	}
	return 0
}

func (a *app) runMenu() {
	fmt.Println("\nWelcome to pingtool!")
	fmt.Println("Test network connectivity and latency.")

	for {
		showMenu()
		switch a.prompt("\nEnter your choice (1-6): ") {
		case "1":
			a.menuPing()
		case "2":
			a.menuQuickPing()
		case "3":
			a.menuViewLogs()
		case "4":
			a.menuClearLogs()
		case "5":
			a.menuChart()
		case "6":
			fmt.Println("\nThanks for using pingtool!")
			return
		default:
			fmt.Println("Invalid choice. Please enter 1-6.")
		}
	}
}

func showMenu() {
	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Println("NETWORK PING TOOL")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("\nOptions:")
	fmt.Println("  1. Ping a host")
	fmt.Println("  2. Quick ping (google.com)")
	fmt.Println("  3. View logs")
	fmt.Println("  4. Clear logs")
	fmt.Println("  5. Latency chart of last probe")
	fmt.Println("  6. Exit")
	fmt.Println(strings.Repeat("=", 60))
}

func (a *app) menuPing() {
	target := a.prompt("\nEnter IP address or domain: ")
	if target == "" {
		fmt.Println("No target entered.")
		return
	}

	count := a.promptCount()
	result, ok := a.doProbe(target, count)
	if !ok {
		return
	}

	if strings.EqualFold(a.prompt("Save to log file? (y/n): "), "y") {
		if err := a.store.Append(result); err != nil {
			log.Errorf("Could not write to log file: %v", err)
		} else {
			fmt.Printf("Results saved to %s\n", a.store.Path())
		}
	}
}

func (a *app) menuQuickPing() {
	fmt.Println("\nQuick ping to google.com...")
	result, ok := a.doProbe("google.com", a.cfg.Count)
	if !ok {
		return
	}
	if err := a.store.Append(result); err != nil {
		log.Errorf("Could not write to log file: %v", err)
	} else {
		fmt.Printf("Results logged to %s\n", a.store.Path())
	}
}

func (a *app) doProbe(target string, count int) (models.ProbeResult, bool) {
	fmt.Printf("\nPinging %s...\n", target)

	result, err := a.prober.Probe(context.Background(), target, count)
	if err != nil {
		a.term.RenderError(err)
		return models.ProbeResult{}, false
	}

	a.term.Render(result)
	if result.Success {
		a.last = &result
	}
	return result, true
}

func (a *app) menuViewLogs() {
	content, err := a.store.Read()
	if err != nil {
		fmt.Printf("Error reading log file: %v\n", err)
		return
	}
	if strings.TrimSpace(content) == "" {
		fmt.Printf("\nNo log entries in '%s'\n", a.store.Path())
		return
	}

	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Printf("PING LOGS (%s)\n", a.store.Path())
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println(content)
}

func (a *app) menuClearLogs() {
	if !strings.EqualFold(a.prompt("Are you sure you want to clear all logs? (y/n): "), "y") {
		return
	}
	if err := a.store.Clear(); err != nil {
		fmt.Printf("Error clearing logs: %v\n", err)
		return
	}
	fmt.Println("Logs cleared successfully!")
}

func (a *app) menuChart() {
	if a.last == nil {
		fmt.Println("\nNo successful probe to chart yet.")
		return
	}

	filename := report.ChartFilename(a.last.Target)
	if err := report.LatencyChart(filename, *a.last); err != nil {
		fmt.Printf("Could not render chart: %v\n", err)
		return
	}
	fmt.Printf("Chart written to %s\n", filename)
}

func (a *app) promptCount() int {
	raw := a.prompt(fmt.Sprintf("Number of pings (default %d): ", a.cfg.Count))
	if raw == "" {
		return a.cfg.Count
	}
	count, err := strconv.Atoi(raw)
	if err != nil {
		fmt.Printf("Invalid number, using default count of %d\n", a.cfg.Count)
		return a.cfg.Count
	}
	if count < 1 || count > 100 {
		fmt.Printf("Using default count of %d (range: 1-100)\n", a.cfg.Count)
		return a.cfg.Count
	}
	return count
}

func (a *app) prompt(label string) string {
	fmt.Print(label)
	if !a.stdin.Scan() {
		return ""
	}
	return strings.TrimSpace(a.stdin.Text())
}
