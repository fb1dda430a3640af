package mood

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMarkup(t *testing.T) {
	doc := `<!DOCTYPE html>
<html><body>
<ul id="mood-list">
  <li class="mood-item" data-playlist="https://www.youtube.com/playlist?list=PLchill">Chill</li>
  <li class="mood-item active" data-playlist="PLfocus">
    <span>Deep</span> Focus
  </li>
  <li class="mood-item" data-playlist="">Broken</li>
  <li class="other">Not a mood</li>
</ul>
</body></html>`

	entries, err := ParseMarkup(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, Entry{
		Label:    "Chill",
		Playlist: "https://www.youtube.com/playlist?list=PLchill",
	}, entries[0])
	assert.Equal(t, Entry{
		Label:    "Deep Focus",
		Playlist: "PLfocus",
		Active:   true,
	}, entries[1])
	assert.Equal(t, "Broken", entries[2].Label)
	assert.Empty(t, entries[2].Playlist)
}

func TestParseMarkup_NoItems(t *testing.T) {
	entries, err := ParseMarkup(strings.NewReader(`<p>nothing here</p>`))
	require.NoError(t, err)
	assert.Empty(t, entries)
}
