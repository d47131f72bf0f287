package persistent

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/andreyxaxa/Image-Ingest/internal/dto"
	"github.com/andreyxaxa/Image-Ingest/pkg/logger"
	"github.com/andreyxaxa/Image-Ingest/pkg/s3client"
	"github.com/andreyxaxa/Image-Ingest/pkg/types/errs"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go/middleware"
	smithyhttp "github.com/aws/smithy-go/transport/http"
)

// presign PUTs have no body, so the SDK drops Content-Type before signing
const _removeContentTypeMiddleware = "RemoveContentTypeHeader"

type ImageObjectStorage struct {
	*s3client.S3Client

	l   logger.Interface
	now func() time.Time
}

func NewImageObjectStorage(s3c *s3client.S3Client, l logger.Interface) *ImageObjectStorage {
	return &ImageObjectStorage{
		S3Client: s3c,
		l:        l,
		now:      time.Now,
	}
}

// PresignUpload signs a PUT for bucket/key. The Content-Type header is part of
// the signature, so the upload must send contentType verbatim.
func (s *ImageObjectStorage) PresignUpload(
	ctx context.Context,
	bucket, key, contentType string,
	expiry time.Duration,
) (*dto.PresignedUpload, error) {
	signedAt := s.now().UTC()

	req, err := s.Presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(expiry), withSignedContentType(contentType))
	if err != nil {
		return nil, fmt.Errorf("ImageObjectStorage - PresignUpload - s.Presign.PresignPutObject: %w: %w", errs.ErrPresignFailed, err)
	}

	headers := make([]string, 0, len(req.SignedHeader))
	for name := range req.SignedHeader {
		headers = append(headers, strings.ToLower(name))
	}
	sort.Strings(headers)
	s.l.Debug("ImageObjectStorage - PresignUpload - key=%s signed headers=%s", key, strings.Join(headers, ","))

	return &dto.PresignedUpload{
		URL:       req.URL,
		ExpiresAt: signedAt.Add(expiry),
	}, nil
}

func (s *ImageObjectStorage) GetObjectMetadata(ctx context.Context, bucket, key string) (*dto.ObjectMetadata, error) {
	out, err := s.Client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("ImageObjectStorage - GetObjectMetadata - s.Client.HeadObject: %w: %w", errs.ErrMetadataFailed, err)
	}

	if out.ContentLength == nil {
		return nil, fmt.Errorf("ImageObjectStorage - GetObjectMetadata - key=%s: %w: no content length", key, errs.ErrMetadataFailed)
	}

	return &dto.ObjectMetadata{
		SizeBytes: *out.ContentLength,
	}, nil
}

func (s *ImageObjectStorage) DeleteObject(ctx context.Context, bucket, key string) error {
	_, err := s.Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("ImageObjectStorage - DeleteObject - s.Client.DeleteObject: %w: %w", errs.ErrDeleteFailed, err)
	}

	return nil
}

// withSignedContentType puts Content-Type back on the request after the SDK
// removed it, so the signature covers it.
func withSignedContentType(contentType string) func(*s3.PresignOptions) {
	restore := middleware.BuildMiddlewareFunc("RestoreSignedContentType", func(
		ctx context.Context, in middleware.BuildInput, next middleware.BuildHandler,
	) (middleware.BuildOutput, middleware.Metadata, error) {
		if req, ok := in.Request.(*smithyhttp.Request); ok {
			req.Header.Set("Content-Type", contentType)
		}

		return next.HandleBuild(ctx, in)
	})

	return func(po *s3.PresignOptions) {
		po.ClientOptions = append(po.ClientOptions[:len(po.ClientOptions):len(po.ClientOptions)], func(o *s3.Options) {
			o.APIOptions = append(o.APIOptions[:len(o.APIOptions):len(o.APIOptions)], func(stack *middleware.Stack) error {
				return stack.Build.Insert(restore, _removeContentTypeMiddleware, middleware.After)
			})
		})
	}
}
