package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Addr      string
	DataDir   string
	DBPath    string
	StaticDir string
	LogLevel  string

	RootLabel         string
	SessionTTL        time.Duration
	SweepInterval     time.Duration
	NotificationLimit int
	CheckInvariants   bool
	SeedDemo          bool

	EnableSwagger bool
	RateLimit     float64
	NodeID        int64
}

func Load() Config {
	dataDir := getEnv("DASH_DATA_DIR", "data")
	dbPath := os.Getenv("DASH_DB_PATH")
	if dbPath == "" {
		dbPath = filepath.Join(dataDir, "dashboard.db")
	}
	staticDir := os.Getenv("DASH_STATIC_DIR")
	if staticDir == "" {
		staticDir = detectStaticDir()
	}

	return Config{
		Addr:      getEnv("DASH_ADDR", ":8080"),
		DataDir:   filepath.Clean(dataDir),
		DBPath:    filepath.Clean(dbPath),
		StaticDir: filepath.Clean(staticDir),
		LogLevel:  strings.ToLower(getEnv("DASH_LOG_LEVEL", "info")),

		RootLabel:         getEnv("DASH_ROOT_LABEL", "Documents"),
		SessionTTL:        getDuration("DASH_SESSION_TTL", 30*time.Minute),
		SweepInterval:     getDuration("DASH_SWEEP_INTERVAL", 5*time.Minute),
		NotificationLimit: int(getInt("DASH_NOTIFICATION_LIMIT", 50)),
		CheckInvariants:   getBool("DASH_CHECK_INVARIANTS", false),
		SeedDemo:          getBool("DASH_SEED_DEMO", false),

		EnableSwagger: getBool("DASH_ENABLE_SWAGGER", false),
		RateLimit:     getFloat("DASH_RATE_LIMIT", 0),
		NodeID:        getInt("DASH_NODE_ID", 0),
	}
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return fallback
	}
	return v
}

func getInt(key string, fallback int64) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(os.Getenv(key)), 10, 64)
	if err != nil || v < 0 {
		return fallback
	}
	return v
}

func getFloat(key string, fallback float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(os.Getenv(key)), 64)
	if err != nil || v < 0 {
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(strings.TrimSpace(os.Getenv(key)))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func detectStaticDir() string {
	candidates := []string{
		"./frontend/dist",
		"../frontend/dist",
	}
	for _, candidate := range candidates {
		indexPath := filepath.Join(candidate, "index.html")
		if info, err := os.Stat(indexPath); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return "./frontend/dist"
}
