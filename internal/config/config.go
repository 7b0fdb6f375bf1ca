package config

import (
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

type Config struct {
	Addr           string
	ContentPath    string
	VisitsDBPath   string
	TrackVisits    bool
	VisitRetention time.Duration
	AdminToken     string
	GinMode        string
	LogLevel       log.Level
}

func getEnv(key, defaultValue string, printEnv bool) string {
	value := os.Getenv(key)
	if printEnv {
		log.Info("Env", "key", key, "value", value)
	}
	if value == "" {
		return defaultValue
	}
	return value
}

// Load reads an optional .env file and then the process environment.
func Load(printEnv bool) (*Config, error) {
	_ = godotenv.Load()

	conf := &Config{
		Addr:         ":" + getEnv("PORT", "8080", printEnv),
		ContentPath:  getEnv("CONTENT_FILE", "", printEnv),
		VisitsDBPath: getEnv("VISITS_DB", "visits.db", printEnv),
		AdminToken:   os.Getenv("ADMIN_TOKEN"),
		GinMode:      getEnv("GIN_MODE", "release", printEnv),
	}

	track, err := strconv.ParseBool(getEnv("TRACK_VISITS", "true", printEnv))
	if err != nil {
		return nil, errors.Wrap(err, "TRACK_VISITS")
	}
	conf.TrackVisits = track

	retention, err := time.ParseDuration(getEnv("VISIT_RETENTION", "8760h", printEnv))
	if err != nil {
		return nil, errors.Wrap(err, "VISIT_RETENTION")
	}
	if retention <= 0 {
		return nil, errors.Errorf("VISIT_RETENTION must be positive, got %s", retention)
	}
	conf.VisitRetention = retention

	level, err := log.ParseLevel(getEnv("LOG_LEVEL", "info", printEnv))
	if err != nil {
		return nil, errors.Wrap(err, "LOG_LEVEL")
	}
	conf.LogLevel = level

	return conf, nil
}
