// Package s3 builds AWS SDK v2 S3 clients and classifies their errors.
//
//	client, err := s3.NewClient(ctx, s3.Config{
//		Bucket:         "attachments",
//		Region:         "us-east-1",
//		Endpoint:       "http://localhost:9000",
//		ForcePathStyle: true,
//	})
//	if err != nil {
//		return err
//	}
//	uploader := blobstore.New(client, "attachments")
//
// ClassifyError turns SDK and smithy API errors into ErrObjectNotFound,
// ErrBucketNotFound, ErrAccessDenied, ErrOperationTimeout,
// ErrOperationCanceled or ErrServiceUnavailable so callers can branch with
// errors.Is.
package s3
