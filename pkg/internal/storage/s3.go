package storage

import (
	"context"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

type S3Config struct {
	Bucket   string
	Region   string
	Endpoint string
}

type S3Store struct {
	bucket   string
	uploader *s3manager.Uploader
	svc      *s3.S3
}

func NewS3Store(cfg S3Config) (*S3Store, error) {
	config := &aws.Config{
		Region: aws.String(cfg.Region),
	}
	if len(cfg.Endpoint) > 0 {
		config.Endpoint = aws.String(cfg.Endpoint)
		config.S3ForcePathStyle = aws.Bool(true)
	}

	sess, err := session.NewSession(config)
	if err != nil {
		return nil, err
	}

	return &S3Store{
		bucket:   cfg.Bucket,
		uploader: s3manager.NewUploader(sess),
		svc:      s3.New(sess),
	}, nil
}

func (v *S3Store) Put(ctx context.Context, key string, body io.Reader, contentType string) error {
	_, err := v.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(v.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	return err
}

func (v *S3Store) Delete(ctx context.Context, key string) error {
	_, err := v.svc.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(v.bucket),
		Key:    aws.String(key),
	})
	return err
}

func (v *S3Store) List(ctx context.Context, prefix string) ([]Object, error) {
	var objects []Object
	err := v.svc.ListObjectsV2PagesWithContext(ctx, &s3.ListObjectsV2Input{
		Bucket: aws.String(v.bucket),
		Prefix: aws.String(prefix),
	}, func(page *s3.ListObjectsV2Output, _ bool) bool {
		for _, item := range page.Contents {
			objects = append(objects, Object{
				Key:        aws.StringValue(item.Key),
				ModifiedAt: aws.TimeValue(item.LastModified),
			})
		}
		return true
	})
	return objects, err
}
