package objectstore

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	logPrefix = "objectstore"

	// DeleteObjects accepts at most this many keys per call
	deleteBatchSize = 1000
)

// ObjectStore keeps uploaded files under `<entityType>/<entityId>/...` keys
type ObjectStore interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
	Owns(prefix, url string) bool
	DeletePrefix(ctx context.Context, prefix string) error
	DeleteURL(ctx context.Context, prefix, url string) error
}

type Config struct {
	Region   string
	Bucket   string
	Endpoint string
}

type s3Store struct {
	client   s3iface.S3API
	uploader *s3manager.Uploader
	bucket   string
	baseURL  string
}

// New returns an ObjectStore on S3. A custom endpoint switches to path-style
// addressing for S3 compatible services.
func New(cfg Config) (ObjectStore, error) {
	awsConfig := aws.NewConfig().WithRegion(cfg.Region)
	if cfg.Endpoint != "" {
		awsConfig = awsConfig.WithEndpoint(cfg.Endpoint).WithS3ForcePathStyle(true)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, err
	}

	client := s3.New(sess)
	return NewWithClient(client, cfg), nil
}

func NewWithClient(client s3iface.S3API, cfg Config) ObjectStore {
	baseURL := fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	if cfg.Endpoint != "" {
		baseURL = fmt.Sprintf("%s/%s", strings.TrimSuffix(cfg.Endpoint, "/"), cfg.Bucket)
	}

	return &s3Store{
		client:   client,
		uploader: s3manager.NewUploaderWithClient(client),
		bucket:   cfg.Bucket,
		baseURL:  baseURL,
	}
}

func (s *s3Store) url(key string) string {
	return s.baseURL + "/" + key
}

// key returns the object key of a url of this bucket under prefix
func (s *s3Store) key(prefix, url string) (string, bool) {
	if !strings.HasPrefix(url, s.baseURL+"/") {
		return "", false
	}
	key := strings.TrimPrefix(url, s.baseURL+"/")
	if !strings.HasPrefix(key, strings.Trim(prefix, "/")+"/") || strings.Contains(key, "..") {
		return "", false
	}
	return key, true
}

// Owns reports whether url points to an object stored under prefix
func (s *s3Store) Owns(prefix, url string) bool {
	_, ok := s.key(prefix, url)
	return ok
}

// Upload stores body under key and returns its public url
func (s *s3Store) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	_, err := s.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		log.WithField("prefix", logPrefix).WithError(err).WithField("key", key).Error("fail to upload object")
		return "", err
	}
	return s.url(key), nil
}

// NewKey returns a fresh object key under prefix with an extension that
// matches contentType
func NewKey(prefix, contentType string) string {
	return fmt.Sprintf("%s/%s.%s", strings.TrimSuffix(prefix, "/"), uuid.New().String(), Extension(contentType))
}

// DeletePrefix removes every object whose key starts with prefix
func (s *s3Store) DeletePrefix(ctx context.Context, prefix string) error {
	keys := make([]*s3.ObjectIdentifier, 0)
	err := s.client.ListObjectsV2PagesWithContext(ctx, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(strings.TrimSuffix(prefix, "/") + "/"),
	}, func(page *s3.ListObjectsV2Output, _ bool) bool {
		for _, o := range page.Contents {
			keys = append(keys, &s3.ObjectIdentifier{Key: o.Key})
		}
		return true
	})
	if err != nil {
		return err
	}

	for start := 0; start < len(keys); start += deleteBatchSize {
		end := start + deleteBatchSize
		if end > len(keys) {
			end = len(keys)
		}

		if _, err := s.client.DeleteObjectsWithContext(ctx, &s3.DeleteObjectsInput{
			Bucket: aws.String(s.bucket),
			Delete: &s3.Delete{
				Objects: keys[start:end],
				Quiet:   aws.Bool(true),
			},
		}); err != nil {
			return err
		}
	}

	log.WithFields(log.Fields{
		"prefix":     logPrefix,
		"key_prefix": prefix,
		"count":      len(keys),
	}).Debug("objects deleted")
	return nil
}

// DeleteURL removes a single object previously returned by Upload. Urls
// outside prefix are refused with ErrForeignObject.
func (s *s3Store) DeleteURL(ctx context.Context, prefix, url string) error {
	key, ok := s.key(prefix, url)
	if !ok {
		return ErrForeignObject
	}

	_, err := s.client.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err
}
