package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage stores objects as files below a base directory.
// Every key is confined to that directory.
type LocalStorage struct {
	baseDir  string // absolute
	baseURL  string // public prefix, e.g. "/archive/"
	dirPerm  os.FileMode
	filePerm os.FileMode
}

// LocalOption configures LocalStorage.
type LocalOption func(*LocalStorage)

// WithPermissions overrides the default 0755 / 0644 permissions.
func WithPermissions(dir, file os.FileMode) LocalOption {
	return func(s *LocalStorage) {
		s.dirPerm = dir
		s.filePerm = file
	}
}

// NewLocalStorage creates baseDir if needed and returns a store rooted there.
func NewLocalStorage(baseDir, baseURL string, opts ...LocalOption) (*LocalStorage, error) {
	if baseDir == "" {
		return nil, fmt.Errorf("%w: base directory is required", ErrInvalidConfig)
	}

	abs, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if baseURL != "" && !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	s := &LocalStorage{
		baseDir:  abs,
		baseURL:  baseURL,
		dirPerm:  0o755,
		filePerm: 0o644,
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := os.MkdirAll(abs, s.dirPerm); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToWrite, err)
	}
	return s, nil
}

// Put writes data to a temporary file and renames it into place, so readers
// never see a partial object.
func (s *LocalStorage) Put(ctx context.Context, key string, data []byte, contentType string) (*Object, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	key, abs, err := s.resolve(key)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(abs), s.dirPerm); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToWrite, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(abs), ".put-*")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToWrite, err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return nil, fmt.Errorf("%w: %w", ErrFailedToWrite, err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToWrite, err)
	}
	if err := os.Chmod(tmp.Name(), s.filePerm); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToWrite, err)
	}
	if err := os.Rename(tmp.Name(), abs); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToWrite, err)
	}

	return &Object{
		Key:         key,
		Size:        int64(len(data)),
		ContentType: contentType,
		URL:         s.URL(key),
	}, nil
}

func (s *LocalStorage) Get(ctx context.Context, key string) ([]byte, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	key, abs, err := s.resolve(key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrObjectNotFound, key)
		}
		return nil, fmt.Errorf("%w: %w", ErrFailedToRead, err)
	}
	return data, nil
}

// Delete removes a file. Directories are never removed.
func (s *LocalStorage) Delete(ctx context.Context, key string) error {
	if err := checkContext(ctx); err != nil {
		return err
	}

	key, abs, err := s.resolve(key)
	if err != nil {
		return err
	}
	info, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrObjectNotFound, key)
		}
		return fmt.Errorf("%w: %w", ErrFailedToDelete, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrInvalidKey, key)
	}
	if err := os.Remove(abs); err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToDelete, err)
	}
	return nil
}

func (s *LocalStorage) Exists(ctx context.Context, key string) bool {
	if checkContext(ctx) != nil {
		return false
	}
	_, abs, err := s.resolve(key)
	if err != nil {
		return false
	}
	_, err = os.Stat(abs)
	return err == nil
}

func (s *LocalStorage) List(ctx context.Context, dir string) ([]Entry, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	prefix, err := cleanDir(dir)
	if err != nil {
		return nil, err
	}
	abs := filepath.Join(s.baseDir, filepath.FromSlash(prefix))

	items, err := os.ReadDir(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDirectoryNotFound, dir)
		}
		return nil, fmt.Errorf("%w: %w", ErrFailedToList, err)
	}

	entries := make([]Entry, 0, len(items))
	for _, it := range items {
		if strings.HasPrefix(it.Name(), ".put-") {
			continue
		}
		e := Entry{Name: it.Name(), Key: prefix + it.Name(), IsDir: it.IsDir()}
		if !it.IsDir() {
			if info, err := it.Info(); err == nil {
				e.Size = info.Size()
			}
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func (s *LocalStorage) URL(key string) string {
	return s.baseURL + strings.TrimPrefix(filepath.ToSlash(key), "/")
}

// resolve validates key and maps it to an absolute path inside baseDir.
func (s *LocalStorage) resolve(key string) (string, string, error) {
	key, err := cleanKey(key)
	if err != nil {
		return "", "", err
	}
	abs := filepath.Join(s.baseDir, filepath.FromSlash(key))
	if !strings.HasPrefix(abs, s.baseDir+string(filepath.Separator)) {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return key, abs, nil
}
