// Package blob abstracts where store snapshots land: a local directory by
// default, an S3 bucket when the shop wants off-device copies.
package blob

import "context"

type Driver string

const (
	DriverFilesystem Driver = "fs"
	DriverS3         Driver = "s3"
)

type Store interface {
	// Put writes one object; keys never repeat (snapshot names carry a
	// timestamp), so overwrite semantics are irrelevant.
	Put(ctx context.Context, key string, data []byte, contentType string) error

	// List returns stored keys with the given prefix, sorted.
	List(ctx context.Context, prefix string) ([]string, error)

	Driver() Driver
}
