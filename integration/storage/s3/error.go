package s3

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

var (
	// ErrInvalidConfig is returned by NewClient when the bucket or region is missing.
	ErrInvalidConfig = errors.New("invalid s3 configuration")

	// ErrObjectNotFound reports a NoSuchKey response.
	ErrObjectNotFound = errors.New("object not found")

	// ErrBucketNotFound reports a NoSuchBucket response.
	ErrBucketNotFound = errors.New("bucket not found")

	// ErrAccessDenied reports an AccessDenied response.
	ErrAccessDenied = errors.New("access denied")

	// ErrOperationTimeout reports a context deadline or a RequestTimeout response.
	ErrOperationTimeout = errors.New("operation timed out")

	// ErrOperationCanceled reports a canceled context.
	ErrOperationCanceled = errors.New("operation canceled")

	// ErrServiceUnavailable reports SlowDown and ServiceUnavailable responses.
	ErrServiceUnavailable = errors.New("service unavailable")
)

// ClassifyError maps SDK errors to the sentinels of this package, keeping
// the SDK error in the chain where it carries detail.
func ClassifyError(err error, operation string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s operation", ErrOperationTimeout, operation)
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %s operation", ErrOperationCanceled, operation)
	}

	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return fmt.Errorf("%w: %w", ErrObjectNotFound, err)
	}
	var nsb *types.NoSuchBucket
	if errors.As(err, &nsb) {
		return ErrBucketNotFound
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch code := apiErr.ErrorCode(); code {
		case "AccessDenied":
			return fmt.Errorf("%w: %s operation", ErrAccessDenied, operation)
		case "RequestTimeout":
			return fmt.Errorf("%w: %s operation", ErrOperationTimeout, operation)
		case "SlowDown", "ServiceUnavailable":
			return fmt.Errorf("%w: %s operation", ErrServiceUnavailable, operation)
		case "NoSuchKey":
			return fmt.Errorf("%w: %w", ErrObjectNotFound, err)
		case "NoSuchBucket":
			return ErrBucketNotFound
		default:
			return fmt.Errorf("%s operation failed (code: %s): %w", operation, code, err)
		}
	}

	return fmt.Errorf("%s operation failed: %w", operation, err)
}
