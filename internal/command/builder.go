package command

import (
	"runtime"
	"strconv"

	"pingtool/internal/models"
)

// OSFamily selects the ping argument dialect. Detection of the running OS
// is the caller's concern so Build stays a pure function.
type OSFamily int

const (
	Unix OSFamily = iota
	Windows
)

// Detect maps the running platform onto an OSFamily.
func Detect() OSFamily {
	if runtime.GOOS == "windows" {
		return Windows
	}
	return Unix
}

// Build produces the argument list for the external ping process.
// Windows counts echoes with -n, everything else with -c.
func Build(req models.ProbeRequest, family OSFamily) []string {
	count := strconv.Itoa(req.Count)
	if family == Windows {
		return []string{"-n", count, req.Target.Host}
	}
	return []string{"-c", count, req.Target.Host}
}
