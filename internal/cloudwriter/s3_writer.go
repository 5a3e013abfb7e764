package cloudwriter

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// PutObjectAPI is the part of the S3 client the writer needs.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3Writer struct {
	ctx         context.Context
	client      PutObjectAPI
	bucket      string
	objectPath  string
	contentType string
	buffer      bytes.Buffer
	closed      bool
}

type S3WriterFactory struct {
	client      PutObjectAPI
	contentType string
}

func NewS3WriterFactory(ctx context.Context, region string) (*S3WriterFactory, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}
	return NewS3WriterFactoryWithClient(s3.NewFromConfig(cfg), "application/vnd.apache.parquet"), nil
}

func NewS3WriterFactoryWithClient(client PutObjectAPI, contentType string) *S3WriterFactory {
	return &S3WriterFactory{client: client, contentType: contentType}
}

func (f *S3WriterFactory) NewWriter(ctx context.Context, bucket, objectPath string) (CloudWriter, error) {
	if bucket == "" {
		return nil, fmt.Errorf("no bucket configured for %s", objectPath)
	}
	return &S3Writer{
		ctx:         ctx,
		client:      f.client,
		bucket:      bucket,
		objectPath:  objectPath,
		contentType: f.contentType,
	}, nil
}

func (w *S3Writer) Write(data []byte) (int, error) {
	return w.buffer.Write(data)
}

// Close uploads the buffered object. Calling it again is a no-op.
func (w *S3Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	input := &s3.PutObjectInput{
		Bucket: aws.String(w.bucket),
		Key:    aws.String(w.objectPath),
		Body:   bytes.NewReader(w.buffer.Bytes()),
	}
	if w.contentType != "" {
		input.ContentType = aws.String(w.contentType)
	}
	if _, err := w.client.PutObject(w.ctx, input); err != nil {
		return fmt.Errorf("unable to upload file to S3: %w", err)
	}
	return nil
}
