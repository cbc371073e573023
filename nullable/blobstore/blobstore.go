package blobstore

import (
	"bytes"
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"io"
	"log/slog"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	s3aws "github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/dmitrymomot/outputtracker/core/logger"
	"github.com/dmitrymomot/outputtracker/integration/storage/s3"
	"github.com/dmitrymomot/outputtracker/threadsafe"
)

var (
	// ErrInvalidKey is returned by Put for empty keys, keys ending in a slash
	// and keys with empty, "." or ".." segments.
	ErrInvalidKey = errors.New("invalid object key")

	// ErrUploadFailed wraps failures to read the body or store the object.
	ErrUploadFailed = errors.New("failed to upload object")
)

const defaultContentType = "application/octet-stream"

// PutObjectAPI is the part of the S3 client the Uploader needs.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3aws.PutObjectInput, optFns ...func(*s3aws.Options)) (*s3aws.PutObjectOutput, error)
}

// Upload describes one stored object.
type Upload struct {
	Bucket      string
	Key         string
	ContentType string
	Size        int64
	ETag        string
	Body        []byte
}

// Clone returns a copy that does not share Body.
func (u Upload) Clone() Upload {
	u.Body = bytes.Clone(u.Body)
	return u
}

// Uploader stores objects in one bucket.
type Uploader struct {
	client  PutObjectAPI
	bucket  string
	prefix  string
	uploads threadsafe.Subject[Upload]
	log     *slog.Logger
}

// Option configures an Uploader.
type Option func(*Uploader)

// WithLogger sets the logger used to report failed emits.
func WithLogger(log *slog.Logger) Option {
	return func(u *Uploader) {
		if log != nil {
			u.log = log
		}
	}
}

// WithPrefix stores every object under prefix.
func WithPrefix(prefix string) Option {
	return func(u *Uploader) {
		u.prefix = strings.Trim(prefix, "/")
	}
}

// New returns an Uploader writing to bucket through client.
func New(client PutObjectAPI, bucket string, opts ...Option) *Uploader {
	u := &Uploader{
		client:  client,
		bucket:  bucket,
		uploads: threadsafe.NewSubject[Upload](),
		log:     logger.Discard(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// NewNulled returns an Uploader whose client accepts every object.
func NewNulled(bucket string, opts ...Option) *Uploader {
	return New(nulledClient{}, bucket, opts...)
}

// TrackUploads returns a tracker receiving every object stored from now on.
func (u *Uploader) TrackUploads() (*threadsafe.Tracker[Upload], error) {
	return u.uploads.CreateTracker()
}

// Put reads body and stores it under key. An empty content type defaults to
// application/octet-stream.
func (u *Uploader) Put(ctx context.Context, key, contentType string, body io.Reader) (Upload, error) {
	key, err := u.objectKey(key)
	if err != nil {
		return Upload{}, err
	}
	if contentType == "" {
		contentType = defaultContentType
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return Upload{}, errors.Join(ErrUploadFailed, err)
	}

	out, err := u.client.PutObject(ctx, &s3aws.PutObjectInput{
		Bucket:        aws.String(u.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return Upload{}, errors.Join(ErrUploadFailed, s3.ClassifyError(err, "upload"))
	}

	upload := Upload{
		Bucket:      u.bucket,
		Key:         key,
		ContentType: contentType,
		Size:        int64(len(data)),
		ETag:        strings.Trim(aws.ToString(out.ETag), `"`),
		Body:        data,
	}

	if err := u.uploads.Emit(upload); err != nil {
		u.log.WarnContext(ctx, "upload not reported to trackers",
			logger.Component("blobstore"),
			logger.Subject("uploads"),
			logger.Key("key", key),
			logger.Error(err),
		)
	}
	return upload, nil
}

func (u *Uploader) objectKey(key string) (string, error) {
	key = strings.TrimPrefix(strings.TrimSpace(key), "/")
	if key == "" || strings.HasSuffix(key, "/") {
		return "", ErrInvalidKey
	}
	for _, part := range strings.Split(key, "/") {
		if part == ".." || part == "." || part == "" {
			return "", ErrInvalidKey
		}
	}
	if u.prefix != "" {
		key = path.Join(u.prefix, key)
	}
	return key, nil
}

type nulledClient struct{}

func (nulledClient) PutObject(_ context.Context, params *s3aws.PutObjectInput, _ ...func(*s3aws.Options)) (*s3aws.PutObjectOutput, error) {
	h := md5.New()
	if params.Body != nil {
		if _, err := io.Copy(h, params.Body); err != nil {
			return nil, err
		}
	}
	return &s3aws.PutObjectOutput{ETag: aws.String(`"` + hex.EncodeToString(h.Sum(nil)) + `"`)}, nil
}
