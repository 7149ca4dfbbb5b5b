package s3

//go:generate go run go.uber.org/mock/mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"canteen/config"
	"canteen/infras/otel"
	"canteen/shared/constant"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
)

const (
	otelAttrFileName = "file_name"
	otelAttrBucket   = "bucket"
)

// S3 archives generated QR images in object storage.
type S3 interface {
	UploadFileBytes(ctx context.Context, bucketName, directory, fileName, contentType string, fileData []byte) (url string, err error)
	DeleteFile(ctx context.Context, bucketName, directory, objectName string) error
}

type s3Impl struct {
	Client *s3.Client
	Config *config.Config
	otel   otel.Otel
}

func (svc *s3Impl) UploadFileBytes(ctx context.Context, bucketName, directory, fileName, contentType string, fileData []byte) (url string, err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".UploadFileBytes")
	defer scope.End()
	defer scope.TraceIfError(err)

	if bucketName == "" {
		bucketName = svc.Config.External.S3.BucketName
	}

	scope.SetAttributes(map[string]any{
		otelAttrFileName: fileName,
		otelAttrBucket:   bucketName,
	})

	objectKey := path.Join(directory, fileName)
	fileReader := bytes.NewReader(fileData)

	_, err = svc.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(bucketName),
		Key:           aws.String(objectKey),
		Body:          fileReader,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(fileReader.Size()),
	})
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to upload file to S3: %w", err)
	}

	publicDomain := svc.Config.External.S3.PublicDomain

	return fmt.Sprintf("%s/%s", publicDomain, objectKey), nil
}

func (svc *s3Impl) DeleteFile(ctx context.Context, bucketName, directory, objectName string) (err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".DeleteFile")
	defer scope.End()
	defer scope.TraceIfError(err)

	if bucketName == "" {
		bucketName = svc.Config.External.S3.BucketName
	}

	scope.SetAttributes(map[string]any{
		otelAttrFileName: objectName,
		otelAttrBucket:   bucketName,
	})

	objectKey := path.Join(directory, objectName)

	_, err = svc.Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucketName),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to delete file from S3")

		return fmt.Errorf("failed to delete file from S3: %w", err)
	}

	return nil
}

func New(config *config.Config, otel otel.Otel) S3 {
	endpoint := config.External.S3.APIEndpoint
	accessKeyID := config.External.S3.AccessKeyID
	secretAccessKey := config.External.S3.SecretAccessKey

	staticProvider := credentials.NewStaticCredentialsProvider(
		accessKeyID,
		secretAccessKey,
		"",
	)

	cfg, err := awsConfig.LoadDefaultConfig(
		context.TODO(),
		awsConfig.WithCredentialsProvider(staticProvider),
	)
	if err != nil {
		log.Err(err).Msg("Error loading AWS configuration")
	}

	s3Client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
		o.Region = "auto"
	})

	return &s3Impl{
		Client: s3Client,
		Config: config,
		otel:   otel,
	}
}
