package screenshots

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/coachshot/internal/imaging"
	"github.com/2beens/coachshot/internal/telemetry/tracing"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	refScheme             = "s3://"
	keyPrefix             = "screenshots"
	DefaultPresignExpires = 15 * time.Minute
)

type objectClient interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

type presigner interface {
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

type NewS3StoreParams struct {
	Bucket          string
	Region          string
	Endpoint        string // empty for AWS, set for minio and friends
	AccessKeyID     string
	SecretAccessKey string
	PresignExpires  time.Duration
}

// S3Store keeps screenshots as objects in an S3 compatible bucket.
type S3Store struct {
	client         objectClient
	presign        presigner
	bucket         string
	presignExpires time.Duration
	newID          func() string
}

func NewS3Store(ctx context.Context, params NewS3StoreParams) (*S3Store, error) {
	if params.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket not set")
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(params.Region),
	}
	if params.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(params.AccessKeyID, params.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if params.Endpoint != "" {
			o.BaseEndpoint = aws.String(params.Endpoint)
			o.UsePathStyle = true
		}
	})

	log.Debugf("s3 screenshot store ready, bucket: %s, endpoint: %s", params.Bucket, params.Endpoint)

	return newS3Store(client, s3.NewPresignClient(client), params.Bucket, params.PresignExpires), nil
}

func newS3Store(client objectClient, presign presigner, bucket string, expires time.Duration) *S3Store {
	if expires <= 0 {
		expires = DefaultPresignExpires
	}
	return &S3Store{
		client:         client,
		presign:        presign,
		bucket:         bucket,
		presignExpires: expires,
		newID:          uuid.NewString,
	}
}

func (s *S3Store) Put(ctx context.Context, userID string, img *imaging.Image) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "screenshots.s3.put")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if img == nil || len(img.Data) == 0 {
		return "", imaging.ErrUnsupportedImage
	}

	key := fmt.Sprintf("%s/%s/%s.jpg", keyPrefix, userID, s.newID())
	span.SetAttributes(attribute.String("s3.key", key))

	if _, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(img.Data),
		ContentType: aws.String(img.MIMEType),
	}); err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}

	return refScheme + s.bucket + "/" + key, nil
}

func (s *S3Store) Delete(ctx context.Context, ref string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "screenshots.s3.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	key, err := s.keyFromRef(ref)
	if err != nil {
		return err
	}

	if _, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}); err != nil {
		return fmt.Errorf("delete object %s: %w", key, err)
	}

	log.Debugf("deleted screenshot object %s", key)
	return nil
}

// URL returns a temporary GET link for a stored screenshot. Data URLs are
// passed through as they are.
func (s *S3Store) URL(ctx context.Context, ref string) (string, error) {
	if strings.HasPrefix(ref, "data:") {
		return ref, nil
	}

	key, err := s.keyFromRef(ref)
	if err != nil {
		return "", err
	}

	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.presignExpires))
	if err != nil {
		return "", fmt.Errorf("presign get %s: %w", key, err)
	}

	return req.URL, nil
}

func (s *S3Store) keyFromRef(ref string) (string, error) {
	prefix := refScheme + s.bucket + "/"
	if !strings.HasPrefix(ref, prefix) || len(ref) == len(prefix) {
		return "", fmt.Errorf("%w: %s", ErrUnknownRef, ref)
	}
	return strings.TrimPrefix(ref, prefix), nil
}
