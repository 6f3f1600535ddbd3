package main

import (
    "context"
    "fmt"
    "net/http"
    "os"
    "os/signal"
    "syscall"
    "time"

    "github.com/joho/godotenv"
    "github.com/rs/zerolog/log"

    cfgpkg "github.com/local/pdfsplit/internal/config"
    "github.com/local/pdfsplit/internal/jobs"
    "github.com/local/pdfsplit/internal/limiter"
    logpkg "github.com/local/pdfsplit/internal/logger"
    "github.com/local/pdfsplit/internal/metrics"
    "github.com/local/pdfsplit/internal/server"
    "github.com/local/pdfsplit/internal/statuscheck"
    "github.com/local/pdfsplit/internal/storage"
)

func main() {
    _ = godotenv.Load()
    cfg := cfgpkg.FromEnv()

    // Init logging
    _ = logpkg.Init(logpkg.Options{
        Level:        cfg.Logging.Level,
        Pretty:       cfg.Logging.Pretty,
        File:         cfg.Logging.File,
        MaxSizeMB:    cfg.Logging.MaxSizeMB,
        MaxBackups:   cfg.Logging.MaxBackups,
        MaxAgeDays:   cfg.Logging.MaxAgeDays,
        Compress:     cfg.Logging.Compress,
        SendToAxiom:  cfg.Axiom.Send && cfg.Axiom.APIKey != "",
        AxiomAPIKey:  cfg.Axiom.APIKey,
        AxiomOrgID:   cfg.Axiom.OrgID,
        AxiomDataset: cfg.Axiom.Dataset,
        AxiomFlush:   cfg.Axiom.FlushInterval,
    })
    defer logpkg.Close()

    metrics.Init()

    // Job store
    var jobStore jobs.Store
    var redisJobs *jobs.Redis
    if cfg.Jobs.Backend == "redis" {
        rs, err := jobs.NewRedis(cfg.Jobs.RedisURL, cfg.Jobs.TTL)
        if err != nil {
            log.Fatal().Err(err).Msg("failed to init redis job store")
        }
        defer rs.Close()
        jobStore = rs
        redisJobs = rs
    } else {
        jobStore = jobs.NewMemory()
    }

    // Optional archive persistence
    var archives server.ArchiveStore
    var s3cli *storage.S3Client
    if cfg.Storage.S3Bucket != "" {
        cli, err := storage.NewS3Client(context.Background(), cfg.Storage.S3Bucket, cfg.Storage.S3Prefix)
        if err != nil {
            log.Warn().Err(err).Msg("S3 archive persistence disabled")
        } else {
            archives = cli
            s3cli = cli
        }
    }

    checker := statuscheck.New(statuscheck.Options{
        Redis: pinger(redisJobs),
        S3:    bucket(s3cli),
    })

    srvHandlers := server.New(server.Dependencies{
        Jobs:     jobStore,
        Archives: archives,
        Limiter:  limiter.New(cfg.Server.MaxConcurrentSplit),
        Checker:  checker,
    }, cfg.Server.MaxUploadMB)

    mux := http.NewServeMux()
    srvHandlers.RegisterRoutes(mux)
    mux.Handle("/metrics", metrics.Handler())

    srv := &http.Server{Addr: ":" + cfg.Server.Port, Handler: mux}

    go func() {
        log.Info().Msgf("HTTP server listening on :%s", cfg.Server.Port)
        if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
            log.Fatal().Err(err).Msg("http server error")
        }
    }()

    // Graceful shutdown
    stop := make(chan os.Signal, 1)
    signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
    <-stop
    ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
    defer cancel()
    _ = srv.Shutdown(ctx)
    fmt.Println("shutdown complete")
}

// pinger avoids handing the checker a typed-nil interface when the memory
// backend is active.
func pinger(r *jobs.Redis) statuscheck.RedisPinger {
    if r == nil { return nil }
    return r
}

func bucket(s *storage.S3Client) statuscheck.BucketChecker {
    if s == nil { return nil }
    return s
}
