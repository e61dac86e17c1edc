package academy

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/sahilparmar-7/ams/config"
)

// Storage uploads collateral assets to an S3-compatible bucket (R2, MinIO,
// plain S3). Returned URLs are CDN-prefixed when CDN_BASE_URL is set,
// endpoint-prefixed otherwise.
type Storage struct {
	client     *s3.Client
	bucket     string
	cdnBaseURL string
}

// NewStorage builds the object-storage client from configuration. It returns
// an error when the storage section is incomplete, so callers can run without
// uploads configured.
func NewStorage(cfg *config.Config) (*Storage, error) {
	st := cfg.Storage
	if st.Endpoint == "" || st.AccessKeyID == "" || st.AccessKeySecret == "" || st.Bucket == "" {
		return nil, fmt.Errorf("object storage not configured (set STORAGE_ENDPOINT, STORAGE_ACCESS_KEY_ID, STORAGE_ACCESS_KEY_SECRET, STORAGE_BUCKET)")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(st.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			st.AccessKeyID, st.AccessKeySecret, "",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("load storage config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(st.Endpoint)
		o.UsePathStyle = true
	})

	cdn := st.CDNBaseURL
	if cdn == "" {
		cdn = strings.TrimRight(st.Endpoint, "/") + "/" + st.Bucket
	}

	return &Storage{
		client:     client,
		bucket:     st.Bucket,
		cdnBaseURL: strings.TrimRight(cdn, "/"),
	}, nil
}

// Upload stores a multipart file under the given object key and returns its
// public URL.
func (s *Storage) Upload(ctx context.Context, fileHeader *multipart.FileHeader, key string) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("open uploaded file: %w", err)
	}
	defer file.Close()

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, file); err != nil {
		return "", fmt.Errorf("read uploaded file: %w", err)
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        buf,
		ContentType: aws.String(fileHeader.Header.Get("Content-Type")),
	})
	if err != nil {
		return "", fmt.Errorf("upload to object storage: %w", err)
	}

	return s.cdnBaseURL + "/" + key, nil
}
