// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/MKhiriev/go-client-panel/internal/config"
	"github.com/MKhiriev/go-client-panel/internal/logger"
	"github.com/MKhiriev/go-client-panel/internal/utils"
	"github.com/MKhiriev/go-client-panel/models"
)

// s3API is the part of *s3.Client the bin client uses.
type s3API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// maxBinBytes caps how much of an object GetBin reads.
const maxBinBytes = 32 << 20

type s3BinClient struct {
	api     s3API
	bucket  string
	timeout time.Duration
	now     func() time.Time
	logger  *logger.Logger
}

// NewS3BinClient constructs a [BinClient] keeping each bin as
// bins/<id>.json in an S3 or MinIO bucket.
func NewS3BinClient(ctx context.Context, adapterCfg config.Adapter, logger *logger.Logger) (BinClient, error) {
	s3Cfg := adapterCfg.S3
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(s3Cfg.Region)}
	if s3Cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(s3Cfg.AccessKey, s3Cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		logger.Err(err).Str("func", "NewS3BinClient").Msg("error loading aws config")
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if s3Cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(s3Cfg.Endpoint)
		}
		o.UsePathStyle = s3Cfg.UsePathStyle
	})

	return newS3BinClient(client, s3Cfg.Bucket, adapterCfg.RequestTimeout, logger), nil
}

func newS3BinClient(api s3API, bucket string, timeout time.Duration, logger *logger.Logger) *s3BinClient {
	return &s3BinClient{api: api, bucket: bucket, timeout: timeout, now: time.Now, logger: logger}
}

func binKey(id string) string {
	return "bins/" + id + ".json"
}

// Configured implements [BinClient].
func (c *s3BinClient) Configured() bool {
	return true
}

// CreateBin implements [BinClient]. The object is written with
// If-None-Match: * so an existing id is never overwritten.
func (c *s3BinClient) CreateBin(ctx context.Context, blob string) (string, error) {
	body, err := marshalBin(blob)
	if err != nil {
		return "", err
	}

	var lastErr error
	for range createAttempts {
		id := utils.NewBinID(c.now())

		lastErr = c.put(ctx, id, body, true)
		if lastErr == nil {
			return id, nil
		}
		if !errors.Is(lastErr, ErrConflict) {
			return "", lastErr
		}
		c.logger.Warn().Str("func", "*s3BinClient.CreateBin").Str("bin_id", id).Msg("bin id collision, retrying with a new id")
	}

	return "", fmt.Errorf("create bin: %w", lastErr)
}

// GetBin implements [BinClient].
func (c *s3BinClient) GetBin(ctx context.Context, id string) (string, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	out, err := c.api.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(binKey(id)),
	})
	if err != nil {
		return "", mapS3Error(err)
	}
	defer out.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(out.Body, maxBinBytes))
	if err != nil {
		return "", fmt.Errorf("%w: read bin object: %w", ErrRemoteUnavailable, err)
	}

	bin, err := models.DecodeBin(raw)
	if err != nil {
		return "", ErrInvalidFormat
	}
	return bin.Data, nil
}

// UpdateBin implements [BinClient].
func (c *s3BinClient) UpdateBin(ctx context.Context, id, blob string) error {
	body, err := marshalBin(blob)
	if err != nil {
		return err
	}
	return c.put(ctx, id, body, false)
}

func (c *s3BinClient) put(ctx context.Context, id string, body []byte, createOnly bool) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	in := &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(binKey(id)),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	}
	if createOnly {
		in.IfNoneMatch = aws.String("*")
	}

	if _, err := c.api.PutObject(ctx, in); err != nil {
		return mapS3Error(err)
	}
	return nil
}

func (c *s3BinClient) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.timeout)
}

func mapS3Error(err error) error {
	var noSuchKey *types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return ErrNotFound
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return ErrNotFound
		case "PreconditionFailed", "ConditionalRequestConflict":
			return fmt.Errorf("%w: %s", ErrConflict, apiErr.ErrorMessage())
		}
	}

	return fmt.Errorf("%w: %w", ErrRemoteUnavailable, err)
}
