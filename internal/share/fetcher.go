package share

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/h2non/filetype"
	"github.com/vfaronov/httpheader"

	"github.com/simidle/simidle/internal/clipboard"
	"github.com/simidle/simidle/internal/palette"
	"github.com/simidle/simidle/internal/utils"
)

const (
	// DefaultFetchTimeout bounds a share-code download
	DefaultFetchTimeout = 10 * time.Second
	// maxCodeBytes is far more than any valid code; longer bodies are cut
	maxCodeBytes = 4096
)

var (
	ErrNotText          = errors.New("share code is not text")
	ErrBinaryBody       = errors.New("share code looks like a binary file")
	ErrUnexpectedStatus = errors.New("unexpected status code")
)

// Fetcher downloads share codes published at a URL
type Fetcher struct {
	client *http.Client
}

// NewFetcher creates a fetcher with the given timeout
func NewFetcher(timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	return &Fetcher{client: &http.Client{Timeout: timeout}}
}

// Fetch returns the trimmed text body at rawurl. The response must be a
// 200 whose Content-Type, when present, is text/*.
func (f *Fetcher) Fetch(ctx context.Context, rawurl string) (string, error) {
	utils.Debug("Fetching share code: %s", rawurl)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawurl, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "text/plain")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	if mtype, _ := httpheader.ContentType(resp.Header); mtype != "" && !strings.HasPrefix(mtype, "text/") {
		utils.Debug("Rejected content type: %s", mtype)
		return "", fmt.Errorf("%w: %s", ErrNotText, mtype)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxCodeBytes))
	if err != nil {
		return "", fmt.Errorf("failed to read body: %w", err)
	}
	return sniffText(body)
}

// FetchCodes fetches rawurl and validates it as a palette code
func (f *Fetcher) FetchCodes(ctx context.Context, rawurl string) ([]palette.ColorElement, error) {
	text, err := f.Fetch(ctx, rawurl)
	if err != nil {
		return nil, err
	}
	return clipboard.ParseCodes(text)
}

// ReadCodesFile reads a palette code from a local file
func ReadCodesFile(path string) ([]palette.ColorElement, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(data) > maxCodeBytes {
		data = data[:maxCodeBytes]
	}
	text, err := sniffText(data)
	if err != nil {
		return nil, err
	}
	return clipboard.ParseCodes(text)
}

func sniffText(data []byte) (string, error) {
	if kind, _ := filetype.Match(data); kind != filetype.Unknown {
		utils.Debug("Rejected binary share code: %s", kind.MIME.Value)
		return "", fmt.Errorf("%w (%s)", ErrBinaryBody, kind.MIME.Value)
	}
	return strings.TrimSpace(string(data)), nil
}
