package storage

import (
    "bytes"
    "context"
    "fmt"
    "strings"

    "github.com/aws/aws-sdk-go-v2/aws"
    awscfg "github.com/aws/aws-sdk-go-v2/config"
    "github.com/aws/aws-sdk-go-v2/service/s3"
    "github.com/rs/zerolog/log"
)

// S3Client persists finished archives to a bucket. Persistence is optional and
// best-effort: the split response never depends on it.
type S3Client struct {
    client *s3.Client
    bucket string
    prefix string
}

// NewS3Client creates a new S3 client using the default AWS config chain.
func NewS3Client(ctx context.Context, bucket, prefix string) (*S3Client, error) {
    cfg, err := awscfg.LoadDefaultConfig(ctx)
    if err != nil {
        return nil, fmt.Errorf("failed to load AWS config: %w", err)
    }
    return &S3Client{
        client: s3.NewFromConfig(cfg),
        bucket: bucket,
        prefix: strings.Trim(prefix, "/"),
    }, nil
}

// SaveArchive uploads one zip under <prefix>/<jobID>/<name> and returns its
// s3:// URL.
func (s *S3Client) SaveArchive(ctx context.Context, jobID, name string, data []byte) (string, error) {
    key := fmt.Sprintf("%s/%s", jobID, name)
    if s.prefix != "" { key = s.prefix + "/" + key }

    _, err := s.client.PutObject(ctx, &s3.PutObjectInput{
        Bucket:      aws.String(s.bucket),
        Key:         aws.String(key),
        Body:        bytes.NewReader(data),
        ContentType: aws.String("application/zip"),
        Metadata: map[string]string{
            "name":   name,
            "job-id": jobID,
        },
    })
    if err != nil {
        return "", fmt.Errorf("failed to upload to S3: %w", err)
    }

    url := fmt.Sprintf("s3://%s/%s", s.bucket, key)
    log.Info().Str("key", key).Int("size", len(data)).Msg("uploaded archive to S3")
    return url, nil
}

// CheckBucket verifies the bucket is reachable with current credentials.
func (s *S3Client) CheckBucket(ctx context.Context) error {
    _, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(s.bucket)})
    if err != nil {
        return fmt.Errorf("head bucket %s: %w", s.bucket, err)
    }
    return nil
}
