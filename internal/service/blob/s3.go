package blob

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/mchandler/agency-site-api/internal/config"
)

// Store is the opaque blob store resumes are written to.
type Store interface {
	PutResume(ctx context.Context, tenantID, filename, contentType string, body io.Reader) (string, error)
}

// ExportStore receives submission export files produced by the export
// worker.
type ExportStore interface {
	PutExport(ctx context.Context, tenantID, name string, body []byte) (string, error)
}

type S3Store struct {
	client *s3.Client
	config *config.S3Config
}

func NewS3Store(client *s3.Client, config *config.S3Config) *S3Store {
	return &S3Store{
		client: client,
		config: config,
	}
}

// PutResume uploads a resume and returns its object key. Keys are random so
// applicant filenames never collide or leak into URLs.
func (s *S3Store) PutResume(ctx context.Context, tenantID, filename, contentType string, body io.Reader) (string, error) {
	key := fmt.Sprintf("%s/%s%s", tenantID, uuid.New().String(), path.Ext(filename))

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.config.ResumeBucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload resume: %w", err)
	}

	return key, nil
}

// PutExport writes a JSON export file and returns its object key.
func (s *S3Store) PutExport(ctx context.Context, tenantID, name string, body []byte) (string, error) {
	key := fmt.Sprintf("%s/exports/%s", tenantID, name)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.config.ExportBucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload export: %w", err)
	}

	return key, nil
}
