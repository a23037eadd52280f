package storage

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFSStore_PutAndGet(t *testing.T) {
	store, err := NewFSStore(t.TempDir(), "http://localhost:8080/files")
	require.NoError(t, err)

	key, err := store.Put("books/pdfs/sample.pdf", strings.NewReader("pdf-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "books/pdfs/sample.pdf", key)
	assert.Equal(t, "http://localhost:8080/files/books/pdfs/sample.pdf", store.PublicURL(key))

	rc, err := store.Get(key)
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "pdf-bytes", string(data))
}

func TestFSStore_RejectsEscapingKeys(t *testing.T) {
	store, err := NewFSStore(t.TempDir(), "")
	require.NoError(t, err)

	_, err = store.Put("", strings.NewReader("x"))
	assert.Error(t, err)

	_, err = store.Put("../outside.txt", strings.NewReader("x"))
	assert.Error(t, err)
}
