// Copyright (c) 2026 Bookvault. All rights reserved.

/*
Package storage abstracts the S3-compatible object store that holds book
files and cover images.

The production target is Cloudflare R2, reached through the standard AWS S3
API with a custom endpoint. The domain layers depend only on the [Uploader]
interface so tests can substitute an in-memory fake.
*/
package storage

import (
	"context"
	"io"
)

// Uploader is the write surface of the object store.
type Uploader interface {
	// Put streams body into the bucket under key. contentType may be empty.
	Put(ctx context.Context, key string, body io.Reader, contentType string) error

	// Delete removes the object under key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// Config carries the credentials and addressing for the bucket.
type Config struct {
	Endpoint        string
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
}
