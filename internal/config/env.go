package config

import (
    "os"
    "strconv"
    "strings"
    "time"
)

// LoggingConfig holds logging-related configuration.
type LoggingConfig struct {
    Level      string
    Pretty     bool
    File       string
    MaxSizeMB  int
    MaxBackups int
    MaxAgeDays int
    Compress   bool
}

// AxiomConfig holds Axiom logging configuration.
type AxiomConfig struct {
    Send          bool
    APIKey        string
    OrgID         string
    Dataset       string
    FlushInterval time.Duration
}

// ServerConfig defines the HTTP surface: port, upload ceiling and how many
// splits may run at once before requests are rejected with back-pressure.
type ServerConfig struct {
    Port               string
    MaxUploadMB        int
    MaxConcurrentSplit int
}

// JobsConfig selects and parameterizes the job record backend.
type JobsConfig struct {
    Backend  string // "memory"|"redis"
    RedisURL string
    TTL      time.Duration
}

// StorageConfig enables optional archive persistence to S3 when Bucket is set.
type StorageConfig struct {
    S3Bucket string
    S3Prefix string
}

// Config is the top-level configuration.
type Config struct {
    Logging LoggingConfig
    Axiom   AxiomConfig
    Server  ServerConfig
    Jobs    JobsConfig
    Storage StorageConfig
}

// FromEnv loads configuration from environment with sensible defaults.
func FromEnv() Config {
    cfg := Config{}

    cfg.Logging = LoggingConfig{
        Level:      getEnv("LOG_LEVEL", "info"),
        Pretty:     parseBool(getEnv("LOG_PRETTY", devDefaultPretty())),
        File:       getEnv("LOG_FILE", "logs/pdfsplit.log"),
        MaxSizeMB:  parseInt(getEnv("LOG_MAX_SIZE_MB", "100"), 100),
        MaxBackups: parseInt(getEnv("LOG_MAX_BACKUPS", "10"), 10),
        MaxAgeDays: parseInt(getEnv("LOG_MAX_AGE_DAYS", "30"), 30),
        Compress:   parseBool(getEnv("LOG_COMPRESS", "true")),
    }

    baseDataset := getEnv("AXIOM_DATASET", "dev")
    cfg.Axiom = AxiomConfig{
        Send:          parseBool(getEnv("SEND_LOGS_TO_AXIOM", "0")),
        APIKey:        getEnv("AXIOM_API_KEY", ""),
        OrgID:         getEnv("AXIOM_ORG_ID", ""),
        Dataset:       baseDataset + "_pdfsplit",
        FlushInterval: parseDuration(getEnv("AXIOM_FLUSH_INTERVAL", "10s"), 10*time.Second),
    }

    cfg.Server = ServerConfig{
        Port:               getEnv("PORT", "8080"),
        MaxUploadMB:        parseInt(getEnv("MAX_UPLOAD_MB", "64"), 64),
        MaxConcurrentSplit: parseInt(getEnv("MAX_CONCURRENT_SPLITS", "4"), 4),
    }

    cfg.Jobs = JobsConfig{
        Backend:  strings.ToLower(getEnv("JOB_STORE", "memory")),
        RedisURL: getEnv("REDIS_URL", "redis://localhost:6379"),
        TTL:      parseDuration(getEnv("JOB_TTL", "24h"), 24*time.Hour),
    }

    cfg.Storage = StorageConfig{
        S3Bucket: getEnv("AWS_S3_BUCKET", ""),
        S3Prefix: getEnv("AWS_S3_PREFIX", "splits"),
    }

    return cfg
}

// Helpers
func getEnv(key, def string) string {
    if v := os.Getenv(key); v != "" {
        return v
    }
    return def
}

func parseInt(s string, def int) int {
    if s == "" { return def }
    if n, err := strconv.Atoi(s); err == nil { return n }
    return def
}

func parseBool(s string) bool {
    v := strings.ToLower(strings.TrimSpace(s))
    return v == "1" || v == "true" || v == "yes" || v == "on"
}

func parseDuration(s string, def time.Duration) time.Duration {
    if s == "" { return def }
    if d, err := time.ParseDuration(s); err == nil { return d }
    return def
}

func devDefaultPretty() string {
    env := strings.ToLower(os.Getenv("ENVIRONMENT"))
    if env == "dev" || env == "development" || env == "local" { return "true" }
    return "false"
}
