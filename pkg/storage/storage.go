package storage

import (
	"context"
	"fmt"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Object describes a stored object.
type Object struct {
	Key         string `json:"key"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type,omitempty"`
	URL         string `json:"url"`
}

// Entry is one item of a directory listing.
type Entry struct {
	Name  string `json:"name"`
	Key   string `json:"key"`
	IsDir bool   `json:"is_dir"`
	Size  int64  `json:"size"`
}

// Storage is a flat object store for rendered documents.
type Storage interface {
	// Put writes data under key, replacing any existing object.
	Put(ctx context.Context, key string, data []byte, contentType string) (*Object, error)
	// Get reads the object stored under key.
	Get(ctx context.Context, key string) ([]byte, error)
	// Delete removes a single object.
	Delete(ctx context.Context, key string) error
	// Exists reports whether key exists. Errors count as absent.
	Exists(ctx context.Context, key string) bool
	// List returns the direct children of dir.
	List(ctx context.Context, dir string) ([]Entry, error)
	// URL returns the public URL for key.
	URL(key string) string
}

var unsafeKeyChars = regexp.MustCompile(`[^a-zA-Z0-9\-_.]+`)

// NewKey builds a unique key "<dir>/<yyyy>/<mm>/<name>-<uuid><ext>" for a
// document issued at t. name is reduced to safe characters.
//
// Example:
//
//	storage.NewKey("invoices", "INV 2024/01", ".html", now)
//	// "invoices/2024/03/INV-2024-01-0b6c...e1.html"
func NewKey(dir, name, ext string, t time.Time) string {
	name = strings.Trim(unsafeKeyChars.ReplaceAllString(name, "-"), "-.")
	if name == "" {
		name = "document"
	}
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	file := fmt.Sprintf("%s-%s%s", name, uuid.NewString(), ext)
	return path.Join(dir, t.Format("2006"), t.Format("01"), file)
}

// cleanKey normalizes key to a slash-separated relative path and rejects
// keys that are empty or point outside the store.
func cleanKey(key string) (string, error) {
	key = strings.ReplaceAll(key, "\\", "/")
	key = strings.TrimPrefix(key, "/")
	if key == "" || strings.Contains(key, "\x00") {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	for _, part := range strings.Split(key, "/") {
		if part == ".." {
			return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
		}
	}
	return path.Clean(key), nil
}

// cleanDir is like cleanKey but allows the root and returns a prefix with
// a trailing slash, or "" for the root.
func cleanDir(dir string) (string, error) {
	dir = strings.Trim(strings.ReplaceAll(dir, "\\", "/"), "/")
	if dir == "" || dir == "." {
		return "", nil
	}
	key, err := cleanKey(dir)
	if err != nil {
		return "", err
	}
	return key + "/", nil
}

func checkContext(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
