package statuscheck

import (
    "context"
    "time"
)

// RedisPinger models the minimal Redis capability we need for status checks.
type RedisPinger interface {
    Ping(ctx context.Context) error
}

// BucketChecker models the minimal S3 capability we need for status checks.
type BucketChecker interface {
    CheckBucket(ctx context.Context) error
}

// Checker aggregates health checks for the service's external dependencies.
type Checker struct {
    redis RedisPinger
    s3    BucketChecker
}

// Options configures the Checker. Nil dependencies report as disabled.
type Options struct {
    Redis RedisPinger
    S3    BucketChecker
}

// Status represents the readiness of a subsystem.
type Status struct {
    OK      bool   `json:"ok"`
    Message string `json:"message"`
}

// Summary bundles all subsystem statuses.
type Summary struct {
    JobStore Status `json:"job_store"`
    S3       Status `json:"s3"`
}

// New creates a new Checker with the provided options.
func New(opts Options) *Checker {
    return &Checker{redis: opts.Redis, s3: opts.S3}
}

// Run probes each configured dependency with a short per-check timeout.
func (c *Checker) Run(ctx context.Context) Summary {
    var sum Summary

    if c.redis == nil {
        sum.JobStore = Status{OK: true, Message: "in-memory"}
    } else {
        cctx, cancel := context.WithTimeout(ctx, 3*time.Second)
        if err := c.redis.Ping(cctx); err != nil {
            sum.JobStore = Status{OK: false, Message: err.Error()}
        } else {
            sum.JobStore = Status{OK: true, Message: "redis reachable"}
        }
        cancel()
    }

    if c.s3 == nil {
        sum.S3 = Status{OK: true, Message: "disabled"}
    } else {
        cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
        if err := c.s3.CheckBucket(cctx); err != nil {
            sum.S3 = Status{OK: false, Message: err.Error()}
        } else {
            sum.S3 = Status{OK: true, Message: "bucket reachable"}
        }
        cancel()
    }

    return sum
}
