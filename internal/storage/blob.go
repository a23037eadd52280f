package storage

import "io"

// BlobStore holds uploaded book and resource files. Keys are slash-separated
// paths like "books/pdfs/<uuid>_name.pdf".
type BlobStore interface {
	Put(key string, r io.Reader) (string, error) // returns canonical key
	Get(key string) (io.ReadCloser, error)
	PublicURL(key string) string
}
