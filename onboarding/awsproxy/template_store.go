package awsproxy

import (
	"context"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

type templateStore struct {
	s3Service *s3.S3
	bucket    string
}

// NewTemplateStore returns a store uploading templates to the given bucket
// and signing download URLs for them.
func NewTemplateStore(baseSession *session.Session, region, bucket string) TemplateStore {
	return &templateStore{
		s3Service: s3.New(baseSession, &aws.Config{Region: aws.String(region)}),
		bucket:    bucket,
	}
}

func (s *templateStore) Put(ctx context.Context, key, body string) error {
	_, err := s.s3Service.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        strings.NewReader(body),
		ContentType: aws.String("application/x-yaml"),
	})

	return err
}

func (s *templateStore) SignedURL(key string, expire time.Duration) (string, time.Time, error) {
	req, _ := s.s3Service.GetObjectRequest(&s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})

	// Capture the expiry before signing so the instant we report is never
	// later than the one baked into the URL.
	expiry := time.Now().Add(expire)

	url, err := req.Presign(expire)
	if err != nil {
		return "", time.Time{}, err
	}

	return url, expiry, nil
}
