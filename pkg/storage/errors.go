package storage

import "errors"

var (
	ErrInvalidKey    = errors.New("invalid storage key") // empty, absolute or escaping the root
	ErrInvalidConfig = errors.New("invalid storage configuration")
	ErrUnknownDriver = errors.New("unknown storage driver")

	ErrObjectNotFound    = errors.New("object not found")
	ErrDirectoryNotFound = errors.New("directory not found")

	ErrFailedToWrite  = errors.New("failed to write object")
	ErrFailedToRead   = errors.New("failed to read object")
	ErrFailedToDelete = errors.New("failed to delete object")
	ErrFailedToList   = errors.New("failed to list objects")

	ErrBucketNotFound     = errors.New("bucket not found")
	ErrAccessDenied       = errors.New("access denied")
	ErrServiceUnavailable = errors.New("service temporarily unavailable")
	ErrOperationTimeout   = errors.New("operation timed out")
	ErrOperationCanceled  = errors.New("operation canceled")
	ErrFailedToLoadConfig = errors.New("failed to load AWS config")
)
