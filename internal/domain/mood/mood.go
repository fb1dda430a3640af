// Package mood provides the Mood domain entity and the mood catalog.
package mood

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

// ErrEmptyCatalog is returned when a catalog is built without any moods.
var ErrEmptyCatalog = errors.New("mood catalog is empty")

// Mood represents a user-selectable playlist entry.
type Mood struct {
	Label    string // Display label
	Playlist string // Playlist reference (raw ID or URL)
}

// PlaylistID resolves the mood's playlist reference.
func (m Mood) PlaylistID() (string, bool) {
	return ResolvePlaylistID(m.Playlist)
}

// Entry is a mood as declared in config or markup.
type Entry struct {
	Label    string
	Playlist string
	Active   bool // Pre-marked as the initially selected mood
}

// Catalog is the fixed, ordered set of moods loaded at startup.
type Catalog struct {
	moods  []Mood
	active int
}

// NewCatalog builds a catalog from declared entries. Insertion order is display
// order; the first entry marked active becomes the initial selection (default 0).
func NewCatalog(entries []Entry) (*Catalog, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyCatalog
	}

	moods := lo.Map(entries, func(e Entry, _ int) Mood {
		return Mood{
			Label:    strings.TrimSpace(e.Label),
			Playlist: e.Playlist,
		}
	})

	_, active, found := lo.FindIndexOf(entries, func(e Entry) bool { return e.Active })
	if !found {
		active = 0
	}

	return &Catalog{moods: moods, active: active}, nil
}

// Len returns the number of moods.
func (c *Catalog) Len() int {
	return len(c.moods)
}

// At returns the mood at index i.
func (c *Catalog) At(i int) Mood {
	return c.moods[i]
}

// Active returns the initially selected index.
func (c *Catalog) Active() int {
	return c.active
}

// Labels returns the display labels in order.
func (c *Catalog) Labels() []string {
	return lo.Map(c.moods, func(m Mood, _ int) string { return m.Label })
}

// Moods returns a copy of the moods.
func (c *Catalog) Moods() []Mood {
	result := make([]Mood, len(c.moods))
	copy(result, c.moods)
	return result
}
