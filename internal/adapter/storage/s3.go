// Package storage keeps campaign images in S3-compatible object storage.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/google/uuid"

	"trial-match/internal/config/configs"
	"trial-match/internal/core/port"
)

// S3Storage implements port.ImageStorage with the s3manager uploader.
type S3Storage struct {
	uploader *s3manager.Uploader
	bucket   string
	baseURL  string
	newID    func() string
}

func NewS3Storage(cfg configs.S3) (*S3Storage, error) {
	sess, err := session.NewSession(&aws.Config{
		Region:           aws.String(cfg.Region),
		Credentials:      credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, ""),
		Endpoint:         aws.String(cfg.Endpoint),
		S3ForcePathStyle: aws.Bool(true),
		DisableSSL:       aws.Bool(cfg.SSLDisabled),
	})
	if err != nil {
		return nil, err
	}
	public := cfg.PublicEndpoint
	if public == "" {
		public = cfg.Endpoint
	}
	return &S3Storage{
		uploader: s3manager.NewUploader(sess),
		bucket:   cfg.Bucket,
		baseURL:  strings.TrimRight(public, "/"),
		newID:    uuid.NewString,
	}, nil
}

// key builds "<prefix>/<uuid>-<file name>".
func (s *S3Storage) key(obj port.UploadObject) string {
	return fmt.Sprintf("%s/%s-%s", strings.Trim(obj.Prefix, "/"), s.newID(), obj.FileName)
}

func (s *S3Storage) publicURL(key string) string {
	return fmt.Sprintf("%s/%s/%s", s.baseURL, s.bucket, key)
}

// Upload stores the object as public-read and returns its public URL.
func (s *S3Storage) Upload(ctx context.Context, obj port.UploadObject) (string, error) {
	key := s.key(obj)
	_, err := s.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(obj.Data),
		ACL:         aws.String("public-read"),
		ContentType: aws.String(obj.ContentType),
	})
	if err != nil {
		return "", fmt.Errorf("upload failed: %w, bucket %s, key %s", err, s.bucket, key)
	}
	return s.publicURL(key), nil
}
