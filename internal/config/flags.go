package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// ParseFlags parses command-line flags, optionally layered over a TOML
// file, and returns a Config. Flags given explicitly win over the file.
func ParseFlags() (Config, error) {
	var (
		configPath = flag.String("config", "", "Optional TOML configuration file")
		target     = flag.String("target", "", "Run one probe against this host and exit")
		count      = flag.Int("count", 4, "Number of echo requests per probe")
		replyBound = flag.Duration("reply-bound", 5*time.Second, "Worst-case wait per echo reply")
		logFile    = flag.String("log", "logs.txt", "Probe log file path")
		chartFlag  = flag.Bool("chart", false, "Render a latency chart PNG after a one-shot probe")
		logLevel   = flag.String("log-level", "warn", "Diagnostic log level: debug, info, warn, error")
		appLogFile = flag.String("app-log", "", "Diagnostic log file (rotated); stderr when empty")
	)
	flag.Parse()

	cfg := Config{
		Target:     *target,
		Count:      *count,
		ReplyBound: *replyBound,
		LogFile:    *logFile,
		Chart:      *chartFlag,
		LogLevel:   *logLevel,
		AppLogFile: *appLogFile,
	}

	if *configPath != "" {
		fileCfg, err := loadFile(*configPath)
		if err != nil {
			return Config{}, err
		}
		merge(&cfg, fileCfg)
	}

	return cfg, nil
}

// loadFile reads a TOML configuration file and applies defaults.
func loadFile(path string) (Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Config{}, fmt.Errorf("config file not found: %s", path)
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config file: %w", err)
	}

	if cfg.ReplyBoundSeconds > 0 {
		cfg.ReplyBound = time.Duration(cfg.ReplyBoundSeconds) * time.Second
	}
	return cfg, nil
}

// merge overlays file values onto cfg for flags the user did not set
// explicitly on the command line.
func merge(cfg *Config, file Config) {
	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if !set["target"] && file.Target != "" {
		cfg.Target = file.Target
	}
	if !set["count"] && file.Count > 0 {
		cfg.Count = file.Count
	}
	if !set["reply-bound"] && file.ReplyBound > 0 {
		cfg.ReplyBound = file.ReplyBound
	}
	if !set["log"] && file.LogFile != "" {
		cfg.LogFile = file.LogFile
	}
	if !set["chart"] && file.Chart {
		cfg.Chart = true
	}
	if !set["log-level"] && file.LogLevel != "" {
		cfg.LogLevel = file.LogLevel
	}
	if !set["app-log"] && file.AppLogFile != "" {
		cfg.AppLogFile = file.AppLogFile
	}
}

// SetupLogger configures diagnostic logging from the config. The probe log
// file is not touched here; it is the tool's output artifact, not its
// diagnostics.
func SetupLogger(cfg Config) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warnf("Invalid log level '%s', using 'warn'", cfg.LogLevel)
		level = log.WarnLevel
	}

	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})

	if cfg.AppLogFile != "" {
		log.SetOutput(&lumberjack.Logger{
			Filename:   cfg.AppLogFile,
			MaxSize:    10, // MB per file
			MaxBackups: 3,
			MaxAge:     30, // days
			Compress:   true,
		})
	}
}
