package storage

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// FSStore is a filesystem BlobStore. Files land under base and are served by
// the HTTP layer from publicBase (e.g. http://localhost:8080/files).
type FSStore struct {
	base       string
	publicBase string
}

func NewFSStore(base, publicBase string) (*FSStore, error) {
	if base == "" {
		base = "./data"
	}
	if err := os.MkdirAll(base, 0o755); err != nil {
		return nil, err
	}
	return &FSStore{base: base, publicBase: strings.TrimRight(publicBase, "/")}, nil
}

func (s *FSStore) Put(key string, r io.Reader) (string, error) {
	if key == "" {
		return "", errors.New("empty key")
	}
	key = filepath.ToSlash(filepath.Clean(key))
	if strings.HasPrefix(key, "..") {
		return "", errors.New("key escapes storage root")
	}
	dst := filepath.Join(s.base, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", err
	}
	f, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		return "", err
	}
	return key, nil
}

func (s *FSStore) Get(key string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(s.base, filepath.FromSlash(filepath.Clean(key))))
}

func (s *FSStore) PublicURL(key string) string {
	return s.publicBase + "/" + key
}

// Base is the root directory, exposed so the router can serve it statically.
func (s *FSStore) Base() string {
	return s.base
}
