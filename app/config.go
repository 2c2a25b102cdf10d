package main

import (
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	defaultTimeout      = 30
	defaultAddress      = ":9090"
	defaultCacheDB      = 0
	defaultCacheTTL     = 600
	defaultBloomBitSize = 10000000
	defaultRateBurst    = 20
	dbMaxRetry          = 10
	dbRetryIntervalSec  = 2
)

// Config is everything the server reads from the environment.
type Config struct {
	Address        string
	ContextTimeout time.Duration

	DBHost        string
	DBPort        string
	DBUser        string
	DBPass        string
	DBName        string
	DBAutoMigrate bool

	CacheHost string
	CachePort string
	CachePass string
	CacheDB   int
	CacheTTL  time.Duration

	BloomBitSize uint64

	RateLimitRPS   float64
	RateLimitBurst int

	LogLevel string
	GinMode  string
}

// loadConfig reads the process environment. Values that fail to parse fall back to defaults.
func loadConfig() Config {
	cfg := Config{
		Address:        os.Getenv("SERVER_ADDRESS"),
		ContextTimeout: time.Duration(envInt("CONTEXT_TIMEOUT", defaultTimeout)) * time.Second,

		DBHost:        os.Getenv("DATABASE_HOST"),
		DBPort:        os.Getenv("DATABASE_PORT"),
		DBUser:        os.Getenv("DATABASE_USER"),
		DBPass:        os.Getenv("DATABASE_PASS"),
		DBName:        os.Getenv("DATABASE_NAME"),
		DBAutoMigrate: envBool("DATABASE_AUTO_MIGRATE", true),

		CacheHost: os.Getenv("CACHE_HOST"),
		CachePort: os.Getenv("CACHE_PORT"),
		CachePass: os.Getenv("CACHE_PASS"),
		CacheDB:   envInt("CACHE_DB", defaultCacheDB),
		CacheTTL:  time.Duration(envInt("CACHE_TTL_SECONDS", defaultCacheTTL)) * time.Second,

		BloomBitSize: defaultBloomBitSize,

		RateLimitBurst: envInt("RATE_LIMIT_BURST", defaultRateBurst),

		LogLevel: os.Getenv("LOG_LEVEL"),
		GinMode:  os.Getenv("GIN_MODE"),
	}

	if cfg.Address == "" {
		cfg.Address = defaultAddress
	}
	if cfg.DBPort == "" {
		cfg.DBPort = "3306"
	}
	if cfg.CachePort == "" {
		cfg.CachePort = "6379"
	}

	if s := os.Getenv("BLOOM_FILTER_SIZE"); s != "" {
		n, err := strconv.ParseUint(s, 10, 64)
		if err != nil || n == 0 {
			logrus.Warnf("failed to parse BLOOM_FILTER_SIZE %q, using default size", s)
		} else {
			cfg.BloomBitSize = n
		}
	}

	if s := os.Getenv("RATE_LIMIT_RPS"); s != "" {
		rps, err := strconv.ParseFloat(s, 64)
		if err != nil {
			logrus.Warnf("failed to parse RATE_LIMIT_RPS %q, rate limiting disabled", s)
		} else {
			cfg.RateLimitRPS = rps
		}
	}

	return cfg
}

func envInt(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		logrus.Warnf("failed to parse %s %q, using default %d", key, s, def)
		return def
	}
	return n
}

func envBool(key string, def bool) bool {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		logrus.Warnf("failed to parse %s %q, using default %t", key, s, def)
		return def
	}
	return b
}

// setupLogger configures logrus from LOG_LEVEL. JSON output unless gin runs in debug mode.
func setupLogger(cfg Config) {
	if cfg.GinMode != "debug" {
		logrus.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}
