package storage

import (
	"context"
	"io"
	"time"

	"tiffintime-api/internal/domain/menu"
	"tiffintime-api/internal/pkg/config"
	"tiffintime-api/internal/pkg/errs"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var (
	ErrUpload  = errs.Class("failed to upload object", errs.ErrUpstream)
	ErrSignURL = errs.New("failed to sign object url")
)

type objectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type presignAPI interface {
	PresignGetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// ObjectStore talks to any S3-compatible object storage. Buckets are
// private; reads go through short-lived presigned GET URLs.
type ObjectStore struct {
	objects   objectAPI
	presign   presignAPI
	signedTTL time.Duration
}

func NewObjectStore(cfg config.Config) (*ObjectStore, error) {
	sc := cfg.Storage
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(sc.Region)}
	if sc.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(sc.AccessKeyID, sc.SecretAccessKey, ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, errs.Wrap(err, "unable to load storage SDK config")
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if sc.Endpoint != "" {
			o.BaseEndpoint = aws.String(sc.Endpoint)
			o.UsePathStyle = true
		}
	})
	return newObjectStore(client, s3.NewPresignClient(client), sc.SignedURLTTL), nil
}

func newObjectStore(objects objectAPI, presign presignAPI, ttl time.Duration) *ObjectStore {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &ObjectStore{objects: objects, presign: presign, signedTTL: ttl}
}

func (s *ObjectStore) Put(ctx context.Context, bucket, key, contentType string, body io.Reader, size int64) error {
	_, err := s.objects.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		return errs.Mark(err, ErrUpload)
	}
	return nil
}

// SignedURL is computed locally from the credentials; no network call.
func (s *ObjectStore) SignedURL(ctx context.Context, ref menu.ImageRef) (string, error) {
	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(ref.Bucket),
		Key:    aws.String(ref.Path),
	}, s3.WithPresignExpires(s.signedTTL))
	if err != nil {
		return "", errs.Mark(err, ErrSignURL)
	}
	return req.URL, nil
}
