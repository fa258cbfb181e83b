package share

import (
	"errors"
	"io"
	"net/url"
	"testing"

	"github.com/pkg/browser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simidle/simidle/internal/palette"
)

type recordingOpener struct {
	urls []string
	err  error
}

func (o *recordingOpener) Open(rawurl string) error {
	o.urls = append(o.urls, rawurl)
	return o.err
}

func TestPostText(t *testing.T) {
	text := PostText([]palette.ColorElement{
		el("#3BB6A2", "#FFF8E1"),
		el("#4A4A4A", "#F8F8F5"),
	})
	assert.Equal(t, "SimIdle space codes\n\n3BB6A2FFF8E1\n4A4A4AF8F8F5\n\n#SimIdle", text)

	assert.Equal(t, "SimIdle space codes\n\n\n#SimIdle", PostText(nil))
}

func TestPoster_IntentURL(t *testing.T) {
	p := NewPoster("", &recordingOpener{})
	elements := []palette.ColorElement{el("#3BB6A2", "#FFF8E1")}

	intent := p.IntentURL(elements)
	u, err := url.Parse(intent)
	require.NoError(t, err)
	assert.Equal(t, "twitter.com", u.Host)
	assert.Equal(t, "/intent/tweet", u.Path)
	assert.Equal(t, PostText(elements), u.Query().Get("text"))
}

func TestPoster_IntentURLKeepsExistingQuery(t *testing.T) {
	p := NewPoster("https://example.com/share?via=simidle", &recordingOpener{})
	u, err := url.Parse(p.IntentURL(nil))
	require.NoError(t, err)
	assert.Equal(t, "simidle", u.Query().Get("via"))
	assert.Equal(t, PostText(nil), u.Query().Get("text"))
}

func TestPoster_ShareColorCodes(t *testing.T) {
	opener := &recordingOpener{}
	p := NewPoster("https://example.com/post", opener)
	elements := []palette.ColorElement{colorA}

	p.ShareColorCodes(elements)
	require.Len(t, opener.urls, 1)
	assert.Equal(t, p.IntentURL(elements), opener.urls[0])
}

func TestPoster_OpenFailureIsSwallowed(t *testing.T) {
	opener := &recordingOpener{err: errors.New("no browser")}
	assert.NotPanics(t, func() {
		NewPoster("", opener).ShareColorCodes([]palette.ColorElement{colorA})
	})
	assert.Len(t, opener.urls, 1)
}

func TestBrowserOpener_Quiet(t *testing.T) {
	var _ Opener = BrowserOpener{}
	assert.Equal(t, io.Discard, browser.Stdout)
	assert.Equal(t, io.Discard, browser.Stderr)
}
