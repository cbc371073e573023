// Package blobstore uploads objects to S3 and reports every stored object to
// output trackers.
//
// New takes any client with a PutObject method, normally *s3.Client from the
// AWS SDK built by integration/storage/s3. NewNulled accepts every upload
// without a network call. Tracked uploads carry a private copy of the body,
// so tests can compare content after the caller reuses its buffer.
//
// An Uploader is safe for concurrent use.
package blobstore
