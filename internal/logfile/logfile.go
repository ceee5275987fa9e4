package logfile

import (
	"fmt"
	"os"
	"strings"
	"time"

	"pingtool/internal/models"
)

const separator = "============================================================"

const timeFormat = "2006-01-02 15:04:05"

// Store appends probe results to a flat text log file. Entries are written
// once and never rewritten in place.
type Store struct {
	path string
}

// New creates a Store backed by the given file path. The file is created
// lazily on first append.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the log file location.
func (s *Store) Path() string {
	return s.path
}

// Append serializes one probe result as a log block and appends it.
func (s *Store) Append(result models.ProbeResult) error {
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(Format(result)); err != nil {
		return fmt.Errorf("append log entry: %w", err)
	}
	return nil
}

// Format renders a probe result into the flat log block layout.
func Format(result models.ProbeResult) string {
	var b strings.Builder

	b.WriteString("\n" + separator + "\n")
	fmt.Fprintf(&b, "Timestamp: %s\n", result.Timestamp.Format(timeFormat))
	fmt.Fprintf(&b, "Target: %s\n", result.Target)
	fmt.Fprintf(&b, "Type: %s\n", result.Kind)
	fmt.Fprintf(&b, "Success: %t\n", result.Success)

	if result.Error != "" && result.Sent == 0 {
		fmt.Fprintf(&b, "Error: %s\n", result.Error)
	} else {
		fmt.Fprintf(&b, "Packets Sent: %d\n", result.Sent)
		fmt.Fprintf(&b, "Packets Received: %d\n", result.Received)
		fmt.Fprintf(&b, "Packet Loss: %.1f%%\n", result.Loss)
		if result.HasLatency {
			fmt.Fprintf(&b, "Avg Latency: %.2f ms\n", result.AvgRTT)
			fmt.Fprintf(&b, "Min Latency: %.2f ms\n", result.MinRTT)
			fmt.Fprintf(&b, "Max Latency: %.2f ms\n", result.MaxRTT)
		}
	}

	b.WriteString(separator + "\n")
	return b.String()
}

// Read returns the whole log content. A missing file reads as empty.
func (s *Store) Read() (string, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read log file: %w", err)
	}
	return string(data), nil
}

// Clear truncates the log, leaving a single header noting when.
func (s *Store) Clear() error {
	header := fmt.Sprintf("# pingtool logs - cleared on %s\n", time.Now().Format(timeFormat))
	if err := os.WriteFile(s.path, []byte(header), 0644); err != nil {
		return fmt.Errorf("clear log file: %w", err)
	}
	return nil
}
