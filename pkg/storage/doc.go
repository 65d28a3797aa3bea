// Package storage archives rendered documents in a local directory or an
// S3 bucket behind one Storage interface.
//
// Keys are slash-separated relative paths. Keys that are empty or contain
// ".." segments are rejected with ErrInvalidKey by every backend, and the
// local backend additionally confines resolved paths to its base directory.
//
//	store, err := storage.New(ctx, storage.Config{Driver: "local", Dir: "./archive"})
//	key := storage.NewKey("invoices", inv.Number, ".html", time.Now())
//	obj, err := store.Put(ctx, key, []byte(doc.HTML), "text/html; charset=utf-8")
//	fmt.Println(obj.URL)
//
// S3 errors are mapped to the package sentinels: NoSuchKey and NotFound to
// ErrObjectNotFound, NoSuchBucket to ErrBucketNotFound, AccessDenied to
// ErrAccessDenied, throttling to ErrServiceUnavailable.
package storage
