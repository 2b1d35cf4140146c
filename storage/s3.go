package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/nmercier/bistro-site-backend/config"
	"github.com/nmercier/bistro-site-backend/errs"
)

// S3Store stores uploaded files in an S3 bucket and serves them back through
// the bucket's public base URL.
type S3Store struct {
	client  *s3.Client
	bucket  string
	baseURL string
	logger  zerolog.Logger
}

func NewS3Store(ctx context.Context, c map[string]string) (*S3Store, error) {
	bucket := config.GetString(c, "ASSET_BUCKET", "")
	if bucket == "" {
		return nil, errs.NewInternalError("ASSET_BUCKET is not set")
	}
	region := config.GetString(c, "ASSET_REGION", "eu-west-3")

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	if key := config.GetString(c, "ASSET_ACCESS_KEY_ID", ""); key != "" {
		secret := config.GetString(c, "ASSET_SECRET_ACCESS_KEY", "")
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(key, secret, "")))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errs.NewAssetStoreError("configuration", err)
	}

	baseURL := config.GetString(c, "ASSET_BASE_URL",
		fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, region))

	return &S3Store{
		client:  s3.NewFromConfig(cfg),
		bucket:  bucket,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		logger:  log.With().Str("component", "s3store").Logger(),
	}, nil
}

// Upload stores the object under the given folder and returns its durable URL.
// Keys are random so a re-upload of the same filename never clobbers an asset
// still referenced elsewhere.
func (s *S3Store) Upload(ctx context.Context, folder string, obj Object) (Asset, error) {
	key := folder + "/" + uuid.New().String() + strings.ToLower(filepath.Ext(obj.Filename))

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(obj.Data),
		ContentType: aws.String(obj.ContentType),
	})
	if err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("asset upload failed")
		return Asset{}, errs.NewAssetUploadError(folder, err)
	}

	s.logger.Info().Str("key", key).Int("size", len(obj.Data)).Msg("asset uploaded")
	return Asset{
		URL:         s.baseURL + "/" + key,
		Name:        obj.Filename,
		ContentType: obj.ContentType,
	}, nil
}

// Delete removes a previously stored asset by its URL. A missing object counts
// as success: the goal is that the asset is unreachable afterwards.
func (s *S3Store) Delete(ctx context.Context, fileURL string) error {
	key, ok := s.keyFromURL(fileURL)
	if !ok {
		// URL from a different store generation; nothing we own.
		s.logger.Warn().Str("url", fileURL).Msg("asset URL outside managed bucket, skipping delete")
		return nil
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil
		}
		s.logger.Error().Err(err).Str("key", key).Msg("asset delete failed")
		return errs.NewAssetDeleteError(fileURL, err)
	}
	return nil
}

func (s *S3Store) keyFromURL(fileURL string) (string, bool) {
	if strings.HasPrefix(fileURL, s.baseURL+"/") {
		return strings.TrimPrefix(fileURL, s.baseURL+"/"), true
	}

	// Fall back to the URL path for assets stored before a base-URL change.
	parsed, err := url.Parse(fileURL)
	if err != nil || parsed.Path == "" {
		return "", false
	}
	return strings.TrimPrefix(parsed.Path, "/"), true
}
