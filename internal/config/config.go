package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	HTTPAddr        string
	DBURL           string
	Migrate         bool
	MigrationsPath  string
	Environment     string
	LogLevel        string
	TZ              string
	ReportTimeout   time.Duration
	SnapshotEnabled bool
	SnapshotCron    string
}

func Load() Config {
	cfg := Config{
		HTTPAddr:        getEnv("HTTP_ADDR", ":8080"),
		DBURL:           getEnv("DB_URL", "postgres://postgres:postgres@db:5432/work_logs?sslmode=disable"),
		Migrate:         getBool("RUN_MIGRATIONS", true),
		MigrationsPath:  getEnv("MIGRATIONS_PATH", "db/migrations/postgresql"),
		Environment:     getEnv("ENVIRONMENT", "local"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		TZ:              getEnv("APP_TZ", "Asia/Bangkok"),
		ReportTimeout:   getDuration("REPORT_TIMEOUT", 15*time.Second),
		SnapshotEnabled: getBool("SNAPSHOT_ENABLED", true),
		SnapshotCron:    getEnv("SNAPSHOT_CRON", "0 2 1 * *"),
	}
	return cfg
}

// ApplyTimezone sets time.Local, which defines month boundaries for reports.
func (c Config) ApplyTimezone() error {
	loc, err := time.LoadLocation(c.TZ)
	if err != nil {
		return err
	}
	time.Local = loc
	return nil
}

func getEnv(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		return def
	}
	return value
}

func getBool(key string, def bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return def
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return def
	}
	return b
}

func getDuration(key string, def time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return def
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return def
	}
	return d
}
