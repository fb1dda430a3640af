package mood

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalog(t *testing.T) {
	tests := []struct {
		name           string
		entries        []Entry
		expectedActive int
		expectedLabels []string
	}{
		{
			name: "no active entry defaults to first",
			entries: []Entry{
				{Label: "Chill", Playlist: "PL1"},
				{Label: "Focus", Playlist: "PL2"},
			},
			expectedActive: 0,
			expectedLabels: []string{"Chill", "Focus"},
		},
		{
			name: "pre-marked active entry",
			entries: []Entry{
				{Label: "Chill", Playlist: "PL1"},
				{Label: "Focus", Playlist: "PL2", Active: true},
				{Label: "Party", Playlist: "PL3"},
			},
			expectedActive: 1,
			expectedLabels: []string{"Chill", "Focus", "Party"},
		},
		{
			name: "first of several active entries wins",
			entries: []Entry{
				{Label: "Chill", Playlist: "PL1"},
				{Label: "Focus", Playlist: "PL2", Active: true},
				{Label: "Party", Playlist: "PL3", Active: true},
			},
			expectedActive: 1,
			expectedLabels: []string{"Chill", "Focus", "Party"},
		},
		{
			name: "labels are trimmed",
			entries: []Entry{
				{Label: "  Rainy day \n", Playlist: "PL1"},
			},
			expectedActive: 0,
			expectedLabels: []string{"Rainy day"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCatalog(tt.entries)
			require.NoError(t, err)

			assert.Equal(t, len(tt.entries), c.Len())
			assert.Equal(t, tt.expectedActive, c.Active())
			assert.Equal(t, tt.expectedLabels, c.Labels())
		})
	}
}

func TestNewCatalog_Empty(t *testing.T) {
	c, err := NewCatalog(nil)
	assert.Nil(t, c)
	assert.ErrorIs(t, err, ErrEmptyCatalog)
}

func TestCatalog_MoodsReturnsCopy(t *testing.T) {
	c, err := NewCatalog([]Entry{{Label: "Chill", Playlist: "PL1"}})
	require.NoError(t, err)

	moods := c.Moods()
	moods[0].Label = "changed"

	assert.Equal(t, "Chill", c.At(0).Label)
}

func TestMood_PlaylistID(t *testing.T) {
	m := Mood{Label: "Chill", Playlist: "https://www.youtube.com/playlist?list=PLchill"}

	id, ok := m.PlaylistID()
	assert.True(t, ok)
	assert.Equal(t, "PLchill", id)
}
