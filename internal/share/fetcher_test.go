package share

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simidle/simidle/internal/clipboard"
	"github.com/simidle/simidle/internal/palette"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0x0D}

func TestFetcher_Fetch(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/code", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("  3BB6A2FFF8E1\n"))
	})
	mux.HandleFunc("/untyped", func(w http.ResponseWriter, r *http.Request) {
		w.Header()["Content-Type"] = nil
		w.Write([]byte("3BB6A2FFF8E1"))
	})
	mux.HandleFunc("/json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"code":"3BB6A2FFF8E1"}`))
	})
	mux.HandleFunc("/image", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write(pngHeader)
	})
	mux.HandleFunc("/missing", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	f := NewFetcher(5 * time.Second)
	ctx := context.Background()

	t.Run("text body trimmed", func(t *testing.T) {
		text, err := f.Fetch(ctx, server.URL+"/code")
		require.NoError(t, err)
		assert.Equal(t, "3BB6A2FFF8E1", text)
	})

	t.Run("missing content type accepted", func(t *testing.T) {
		text, err := f.Fetch(ctx, server.URL+"/untyped")
		require.NoError(t, err)
		assert.Equal(t, "3BB6A2FFF8E1", text)
	})

	t.Run("non-text content type", func(t *testing.T) {
		_, err := f.Fetch(ctx, server.URL+"/json")
		assert.ErrorIs(t, err, ErrNotText)
	})

	t.Run("binary body", func(t *testing.T) {
		_, err := f.Fetch(ctx, server.URL+"/image")
		assert.ErrorIs(t, err, ErrBinaryBody)
	})

	t.Run("bad status", func(t *testing.T) {
		_, err := f.Fetch(ctx, server.URL+"/missing")
		assert.ErrorIs(t, err, ErrUnexpectedStatus)
	})

	t.Run("codes validated", func(t *testing.T) {
		elements, err := f.FetchCodes(ctx, server.URL+"/code")
		require.NoError(t, err)
		assert.Equal(t, []palette.ColorElement{el("#3BB6A2", "#FFF8E1")}, elements)
	})
}

func TestFetcher_InvalidCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("3BB6A2FFF8E"))
	}))
	defer server.Close()

	_, err := NewFetcher(0).FetchCodes(context.Background(), server.URL)
	assert.ErrorIs(t, err, clipboard.ErrInvalidFormat)
}

func TestFetcher_Cancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("3BB6A2FFF8E1"))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewFetcher(time.Second).Fetch(ctx, server.URL)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReadCodesFile(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "palette.txt")
	require.NoError(t, os.WriteFile(good, []byte("3BB6A2FFF8E14A4A4AF8F8F5\n"), 0o644))
	elements, err := ReadCodesFile(good)
	require.NoError(t, err)
	assert.Len(t, elements, 2)

	binary := filepath.Join(dir, "palette.png")
	require.NoError(t, os.WriteFile(binary, pngHeader, 0o644))
	_, err = ReadCodesFile(binary)
	assert.ErrorIs(t, err, ErrBinaryBody)

	_, err = ReadCodesFile(filepath.Join(dir, "nope.txt"))
	assert.Error(t, err)
}
