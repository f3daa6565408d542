// Package config reads process settings from the environment and simulation
// tuning from YAML.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StoreMemory   = "memory"
	StoreFile     = "file"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
)

type Server struct {
	Addr          string
	Store         string
	DBDSN         string
	SQLitePath    string
	SnapshotDir   string
	MigrationsDir string
	TuningFile    string
	TickInterval  time.Duration
	LLMURL        string
	LLMModel      string
	LLMTimeout    time.Duration
	MaxCompanions int
	Seed          int64
	LogLevel      string
}

// FromEnv reads PETVERSE_* variables. Unparseable values fall back to the
// defaults.
func FromEnv() Server {
	return Server{
		Addr:          stringEnv("PETVERSE_ADDR", ":8080"),
		Store:         strings.ToLower(stringEnv("PETVERSE_STORE", StoreMemory)),
		DBDSN:         stringEnv("PETVERSE_DB_DSN", ""),
		SQLitePath:    stringEnv("PETVERSE_SQLITE_PATH", "./data/petverse.db"),
		SnapshotDir:   stringEnv("PETVERSE_SNAPSHOT_DIR", "./data/snapshots"),
		MigrationsDir: stringEnv("PETVERSE_MIGRATIONS_DIR", "./migrations"),
		TuningFile:    stringEnv("PETVERSE_TUNING_FILE", ""),
		TickInterval:  durationEnv("PETVERSE_TICK_INTERVAL", time.Minute),
		LLMURL:        stringEnv("PETVERSE_LLM_URL", ""),
		LLMModel:      stringEnv("PETVERSE_LLM_MODEL", ""),
		LLMTimeout:    durationEnv("PETVERSE_LLM_TIMEOUT", 8*time.Second),
		MaxCompanions: intEnv("PETVERSE_MAX_COMPANIONS", 0),
		Seed:          int64(intEnv("PETVERSE_SEED", 0)),
		LogLevel:      strings.ToLower(stringEnv("PETVERSE_LOG_LEVEL", "info")),
	}
}

func stringEnv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func intEnv(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// durationEnv accepts Go durations ("90s") or plain seconds ("90").
func durationEnv(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second
	}
	return fallback
}
