package jobs

import (
    "context"
    "encoding/json"
    "fmt"
    "time"

    redis "github.com/redis/go-redis/v9"
)

// Redis is a Store backed by one hash per job under job:<id>. Records expire
// after the configured TTL.
type Redis struct {
    client *redis.Client
    ttl    time.Duration
}

func NewRedis(redisURL string, ttl time.Duration) (*Redis, error) {
    opt, err := redis.ParseURL(redisURL)
    if err != nil { return nil, err }
    c := redis.NewClient(opt)
    if err := c.Ping(context.Background()).Err(); err != nil { return nil, err }
    if ttl <= 0 { ttl = 24 * time.Hour }
    return &Redis{client: c, ttl: ttl}, nil
}

func (r *Redis) Close() error { return r.client.Close() }

// Ping checks redis connectivity.
func (r *Redis) Ping(ctx context.Context) error { return r.client.Ping(ctx).Err() }

func (r *Redis) key(id string) string { return fmt.Sprintf("job:%s", id) }

func (r *Redis) Create(ctx context.Context, job Job) error {
    m := map[string]interface{}{
        "original_filename": job.OriginalFilename,
        "instructions":      job.Instructions,
        "status":            job.Status,
        "created_at":        job.CreatedAt.Format(time.RFC3339Nano),
    }
    k := r.key(job.ID)
    if err := r.client.HSet(ctx, k, m).Err(); err != nil { return err }
    return r.client.Expire(ctx, k, r.ttl).Err()
}

func (r *Redis) Get(ctx context.Context, id string) (Job, bool, error) {
    res, err := r.client.HGetAll(ctx, r.key(id)).Result()
    if err != nil { return Job{}, false, err }
    if len(res) == 0 { return Job{}, false, nil }
    j := Job{
        ID:               id,
        OriginalFilename: res["original_filename"],
        Instructions:     res["instructions"],
        Status:           res["status"],
        ErrorMessage:     res["error_message"],
        ResultURL:        res["result_url"],
    }
    if v := res["created_at"]; v != "" {
        if t, err := time.Parse(time.RFC3339Nano, v); err == nil { j.CreatedAt = t }
    }
    if v := res["result_files"]; v != "" {
        _ = json.Unmarshal([]byte(v), &j.ResultFiles)
    }
    return j, true, nil
}

func (r *Redis) Complete(ctx context.Context, id string, resultFiles []string, resultURL string) error {
    files, _ := json.Marshal(resultFiles)
    m := map[string]interface{}{
        "status":       StatusCompleted,
        "result_files": string(files),
    }
    if resultURL != "" { m["result_url"] = resultURL }
    return r.client.HSet(ctx, r.key(id), m).Err()
}

func (r *Redis) Fail(ctx context.Context, id string, message string) error {
    return r.client.HSet(ctx, r.key(id), map[string]interface{}{
        "status":        StatusFailed,
        "error_message": message,
    }).Err()
}
