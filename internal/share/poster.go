package share

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/pkg/browser"

	"github.com/simidle/simidle/internal/palette"
	"github.com/simidle/simidle/internal/utils"
)

// DefaultPostBaseURL is the share intent endpoint
const DefaultPostBaseURL = "https://twitter.com/intent/tweet"

// Opener hands a URL to something that can show it
type Opener interface {
	Open(rawurl string) error
}

// BrowserOpener opens URLs in the default browser
type BrowserOpener struct{}

func init() {
	// The opener's own output would draw over the TUI
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
}

func (BrowserOpener) Open(rawurl string) error {
	if err := browser.OpenURL(rawurl); err != nil {
		return fmt.Errorf("failed to open %s: %w", rawurl, err)
	}
	return nil
}

// Poster posts palette codes through a social share intent
type Poster struct {
	baseURL string
	opener  Opener
}

// NewPoster creates a poster. An empty baseURL uses DefaultPostBaseURL.
func NewPoster(baseURL string, opener Opener) *Poster {
	if baseURL == "" {
		baseURL = DefaultPostBaseURL
	}
	return &Poster{baseURL: baseURL, opener: opener}
}

// PostText formats the message: a title line, one colour code per line,
// then the hashtag
func PostText(elements []palette.ColorElement) string {
	var b strings.Builder
	b.WriteString("SimIdle space codes\n")
	for _, code := range palette.ColorCodes(elements) {
		b.WriteString("\n")
		b.WriteString(code)
	}
	b.WriteString("\n\n#SimIdle")
	return b.String()
}

// IntentURL returns the share URL with the post text as a query parameter
func (p *Poster) IntentURL(elements []palette.ColorElement) string {
	sep := "?"
	if strings.Contains(p.baseURL, "?") {
		sep = "&"
	}
	return p.baseURL + sep + "text=" + url.QueryEscape(PostText(elements))
}

// ShareColorCodes opens the share intent for elements. Failures are
// logged only.
func (p *Poster) ShareColorCodes(elements []palette.ColorElement) {
	intent := p.IntentURL(elements)
	if err := p.opener.Open(intent); err != nil {
		utils.Debug("Failed to post color codes: %v", err)
		return
	}
	utils.Debug("Opened share intent for %d colors", len(elements))
}
