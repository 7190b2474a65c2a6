package awsadp

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// TestingConfig points the integration tests at a local minio. Every field
// can be overridden through MINIO_* environment variables.
type TestingConfig struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	Region          string
}

func DefaultTestingConfig() TestingConfig {
	return TestingConfig{
		Endpoint:        getEnv("MINIO_ENDPOINT", "http://localhost:9000"),
		AccessKeyID:     getEnv("MINIO_ACCESS_KEY", "minioadmin"),
		SecretAccessKey: getEnv("MINIO_SECRET_KEY", "minioadmin"),
		Bucket:          getEnv("MINIO_BUCKET", "tandem-test"),
		Region:          getEnv("MINIO_REGION", "us-east-1"),
	}
}

// NewS3ClientForTesting builds an S3 client with static credentials and
// path-style addressing, which minio requires.
func NewS3ClientForTesting(ctx context.Context, cfg TestingConfig) (*s3.Client, error) {
	provider := credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")
	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(provider),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Endpoint)
		o.UsePathStyle = true
	}), nil
}

// NewS3StorageForTesting returns an S3Storage namespaced under a random
// prefix, so parallel test runs against one bucket stay isolated.
func NewS3StorageForTesting(ctx context.Context, cfg TestingConfig) (*S3Storage, error) {
	client, err := NewS3ClientForTesting(ctx, cfg)
	if err != nil {
		return nil, err
	}
	prefix, err := generateRandomPrefix()
	if err != nil {
		return nil, err
	}
	return NewS3Storage(S3StorageConfig{
		Client: client,
		Bucket: cfg.Bucket,
		Prefix: prefix,
	}), nil
}

func EnsureBucketExists(ctx context.Context, client *s3.Client, bucket string) error {
	if _, err := client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(bucket)}); err == nil {
		return nil
	}
	if _, err := client.CreateBucket(ctx, &s3.CreateBucketInput{Bucket: aws.String(bucket)}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
	}
	return nil
}

// CleanupTestObjects deletes everything under the prefix after a test.
func CleanupTestObjects(ctx context.Context, client *s3.Client, bucket, prefix string) error {
	listed, err := client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket: aws.String(bucket),
		Prefix: aws.String(prefix),
	})
	if err != nil {
		return fmt.Errorf("failed to list objects for cleanup: %w", err)
	}
	for _, obj := range listed.Contents {
		if _, err := client.DeleteObject(ctx, &s3.DeleteObjectInput{
			Bucket: aws.String(bucket),
			Key:    obj.Key,
		}); err != nil {
			return fmt.Errorf("failed to delete object %s: %w", aws.ToString(obj.Key), err)
		}
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func generateRandomPrefix() (string, error) {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return "test-" + hex.EncodeToString(b), nil
}
