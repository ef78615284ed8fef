// Package files stores document attachments in S3-compatible object
// storage and hands out presigned links for viewing them.
package files

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/xid"
)

// Storage uploads attachment content and resolves stored locators to
// browsable URLs.
type Storage interface {
	Put(ctx context.Context, name string, r io.Reader) (string, error)
	PresignGet(ctx context.Context, locator string) (string, error)
}

// S3Config carries the connection settings for an S3-compatible endpoint
// (AWS or MinIO).
type S3Config struct {
	Bucket    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

type S3Storage struct {
	cfg S3Config
	now func() time.Time // test seam
}

func NewS3Storage(cfg S3Config) *S3Storage {
	return &S3Storage{cfg: cfg, now: time.Now}
}

func (s *S3Storage) client(ctx context.Context) (*s3.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(s.cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.cfg.AccessKey,
			s.cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		if s.cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(s.cfg.Endpoint)
		}
	}), nil
}

// storageKey builds a date-partitioned object key. The original file name is
// kept as the last path segment so downloads get a sensible name.
func (s *S3Storage) storageKey(name string) string {
	d := s.now()
	return fmt.Sprintf("documents/%d/%d/%d/%v/%s", d.Year(), d.Month(), d.Day(), xid.New(), name)
}

// Put uploads the content and returns an opaque locator of the form
// "s3://bucket/key". The locator is what gets persisted on the document;
// PresignGet turns it into a temporary URL when the user wants to view the
// file.
func (s *S3Storage) Put(ctx context.Context, name string, r io.Reader) (string, error) {
	client, err := s.client(ctx)
	if err != nil {
		return "", err
	}

	key := s.storageKey(name)
	_, err = client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: &s.cfg.Bucket,
		Key:    &key,
		Body:   r,
	})
	if err != nil {
		return "", fmt.Errorf("error uploading file: %w", err)
	}

	return fmt.Sprintf("s3://%s/%s", s.cfg.Bucket, key), nil
}

// PresignGet resolves a locator produced by Put into a URL valid for 15
// minutes.
func (s *S3Storage) PresignGet(ctx context.Context, locator string) (string, error) {
	bucket, key, err := parseLocator(locator)
	if err != nil {
		return "", err
	}

	client, err := s.client(ctx)
	if err != nil {
		return "", err
	}

	req, err := s3.NewPresignClient(client).PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		return "", err
	}

	return req.URL, nil
}

func parseLocator(locator string) (bucket, key string, err error) {
	rest, ok := strings.CutPrefix(locator, "s3://")
	if !ok {
		return "", "", fmt.Errorf("invalid file locator: %s", locator)
	}
	bucket, key, ok = strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("invalid file locator: %s", locator)
	}
	return bucket, key, nil
}
