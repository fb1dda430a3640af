package playback

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osa030/moodbox/internal/domain/mood"
)

// fakePlayer records calls and reports a configurable position.
type fakePlayer struct {
	state    State
	index    int
	playlist []string

	loadErr error
	loads   []load
	calls   []string
}

type load struct {
	list  string
	index int
}

func (p *fakePlayer) LoadPlaylist(list string, index int) error {
	p.calls = append(p.calls, "load")
	if p.loadErr != nil {
		return p.loadErr
	}
	p.loads = append(p.loads, load{list: list, index: index})
	p.index = index
	return nil
}

func (p *fakePlayer) Play() error        { p.calls = append(p.calls, "play"); return nil }
func (p *fakePlayer) Pause() error       { p.calls = append(p.calls, "pause"); return nil }
func (p *fakePlayer) Next() error        { p.calls = append(p.calls, "next"); return nil }
func (p *fakePlayer) Previous() error    { p.calls = append(p.calls, "previous"); return nil }
func (p *fakePlayer) State() State       { return p.state }
func (p *fakePlayer) PlaylistIndex() int { return p.index }
func (p *fakePlayer) Playlist() []string { return p.playlist }

type fakeFactory struct {
	player  *fakePlayer
	err     error
	created []Options
	handler Handler
}

func (f *fakeFactory) NewPlayer(opts Options, h Handler) (Player, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = append(f.created, opts)
	f.handler = h
	return f.player, nil
}

type recordingSink struct {
	views []View
}

func (s *recordingSink) PublishView(v View) {
	s.views = append(s.views, v)
}

func newTestController(t *testing.T, entries []mood.Entry) (*Controller, *fakeFactory, *recordingSink) {
	t.Helper()

	catalog, err := mood.NewCatalog(entries)
	require.NoError(t, err)

	factory := &fakeFactory{player: &fakePlayer{state: StateUnstarted}}
	sink := &recordingSink{}
	c := NewController(catalog, factory, sink, Config{
		ElementID: "player",
		Width:     "100%",
		Height:    "100%",
		Vars:      DefaultVars(),
		Messages:  DefaultMessages(),
	})
	return c, factory, sink
}

func threeMoods() []mood.Entry {
	return []mood.Entry{
		{Label: "A", Playlist: "PLa"},
		{Label: "B", Playlist: "https://www.youtube.com/playlist?list=PLb"},
		{Label: "C", Playlist: "PLc"},
	}
}

func TestController_InitialState(t *testing.T) {
	c, _, _ := newTestController(t, []mood.Entry{
		{Label: "A", Playlist: "PLa"},
		{Label: "B", Playlist: "PLb", Active: true},
	})

	v := c.View()
	assert.Equal(t, ModeMenu, v.Mode)
	assert.Equal(t, 1, v.Selected)
	assert.Equal(t, "Select a mood", v.Overlay)
	assert.False(t, v.HasPlayer)
	assert.Equal(t, []string{"A", "B"}, v.Moods)
}

func TestController_ForwardWrapsAround(t *testing.T) {
	c, _, sink := newTestController(t, threeMoods())

	require.NoError(t, c.Press(ButtonForward))
	assert.Equal(t, 1, c.View().Selected)
	assert.Equal(t, "B", c.View().Overlay)

	require.NoError(t, c.Press(ButtonForward))
	assert.Equal(t, 2, c.View().Selected)
	assert.Equal(t, "C", c.View().Overlay)

	require.NoError(t, c.Press(ButtonForward))
	assert.Equal(t, 0, c.View().Selected)
	assert.Equal(t, "A", c.View().Overlay)

	assert.Len(t, sink.views, 3)
}

func TestController_SelectionModularArithmetic(t *testing.T) {
	tests := []struct {
		name     string
		button   Button
		presses  int
		expected int
	}{
		{name: "forward once", button: ButtonForward, presses: 1, expected: 1},
		{name: "forward full cycle", button: ButtonForward, presses: 3, expected: 0},
		{name: "forward seven", button: ButtonForward, presses: 7, expected: 1},
		{name: "backward once wraps", button: ButtonBackward, presses: 1, expected: 2},
		{name: "backward five", button: ButtonBackward, presses: 5, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _, _ := newTestController(t, threeMoods())
			for i := 0; i < tt.presses; i++ {
				require.NoError(t, c.Press(tt.button))
			}
			assert.Equal(t, tt.expected, c.View().Selected)
		})
	}
}

func TestController_Select(t *testing.T) {
	c, _, _ := newTestController(t, threeMoods())

	require.NoError(t, c.Select(2))
	assert.Equal(t, 2, c.View().Selected)
	assert.Equal(t, "C", c.View().Overlay)

	err := c.Select(3)
	assert.ErrorIs(t, err, ErrInvalidSelection)
	err = c.Select(-1)
	assert.ErrorIs(t, err, ErrInvalidSelection)
	assert.Equal(t, 2, c.View().Selected)
}

func TestController_StartPlayback_InvalidPlaylist(t *testing.T) {
	c, factory, _ := newTestController(t, []mood.Entry{
		{Label: "Broken", Playlist: "  "},
	})

	c.StartPlayback()

	v := c.View()
	assert.Equal(t, ModeMenu, v.Mode)
	assert.Equal(t, "Invalid playlist", v.Overlay)
	assert.False(t, v.HasPlayer)
	assert.Empty(t, factory.created)
}

func TestController_StartPlayback_CreatesPlayer(t *testing.T) {
	c, factory, _ := newTestController(t, threeMoods())
	require.NoError(t, c.Select(1))

	require.NoError(t, c.Press(ButtonCenter))

	v := c.View()
	assert.Equal(t, ModePlaying, v.Mode)
	assert.True(t, v.HasPlayer)
	assert.Equal(t, "PLb", v.PlaylistID)

	require.Len(t, factory.created, 1)
	opts := factory.created[0]
	assert.Equal(t, "player", opts.ElementID)
	assert.Equal(t, "100%", opts.Width)
	assert.Equal(t, Vars{
		List:           "PLb",
		ListType:       "playlist",
		Index:          0,
		Controls:       0,
		DisableKB:      1,
		ModestBranding: 1,
		Rel:            0,
		FS:             0,
	}, opts.Vars)
	assert.Same(t, c, factory.handler)
}

func TestController_StartPlayback_ReusesPlayer(t *testing.T) {
	c, factory, _ := newTestController(t, threeMoods())

	require.NoError(t, c.Press(ButtonCenter))
	require.NoError(t, c.Press(ButtonMenu))
	assert.Equal(t, ModeMenu, c.View().Mode)
	assert.Equal(t, "Select a mood", c.View().Overlay)

	require.NoError(t, c.Press(ButtonForward))
	require.NoError(t, c.Press(ButtonCenter))

	assert.Len(t, factory.created, 1, "player should be created only once")
	assert.Equal(t, []load{{list: "PLb", index: 0}}, factory.player.loads)
	assert.Equal(t, []string{"load", "play"}, factory.player.calls)
	assert.Equal(t, ModePlaying, c.View().Mode)
}

func TestController_StartPlayback_FactoryFailure(t *testing.T) {
	c, factory, _ := newTestController(t, threeMoods())
	factory.err = errors.New("no player host")

	require.NoError(t, c.Press(ButtonCenter))

	v := c.View()
	assert.Equal(t, "Error: cannot load video", v.Overlay)
	assert.False(t, v.HasPlayer)

	// Still responsive to menu input.
	require.NoError(t, c.Press(ButtonMenu))
	assert.Equal(t, ModeMenu, c.View().Mode)
}

func TestController_MenuInMenuResetsOverlay(t *testing.T) {
	c, _, _ := newTestController(t, threeMoods())

	require.NoError(t, c.Press(ButtonForward))
	assert.Equal(t, "B", c.View().Overlay)

	require.NoError(t, c.Press(ButtonMenu))
	assert.Equal(t, ModeMenu, c.View().Mode)
	assert.Equal(t, "Select a mood", c.View().Overlay)
}

func TestController_Toggle(t *testing.T) {
	tests := []struct {
		name     string
		button   Button
		state    State
		expected string
	}{
		{name: "down while playing pauses", button: ButtonDown, state: StatePlaying, expected: "pause"},
		{name: "down while paused plays", button: ButtonDown, state: StatePaused, expected: "play"},
		{name: "center while playing pauses", button: ButtonCenter, state: StatePlaying, expected: "pause"},
		{name: "center while buffering plays", button: ButtonCenter, state: StateBuffering, expected: "play"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, factory, _ := newTestController(t, threeMoods())
			require.NoError(t, c.Press(ButtonCenter))
			p := factory.player
			p.calls = nil
			p.state = tt.state

			require.NoError(t, c.Press(tt.button))

			assert.Equal(t, []string{tt.expected}, p.calls)
		})
	}
}

func TestController_DownStartsPlaybackWithoutPlayer(t *testing.T) {
	c, factory, _ := newTestController(t, threeMoods())

	require.NoError(t, c.Press(ButtonDown))

	assert.Equal(t, ModePlaying, c.View().Mode)
	assert.Len(t, factory.created, 1)
}

func TestController_DownTogglesInMenuWhenPlayerExists(t *testing.T) {
	c, factory, _ := newTestController(t, threeMoods())
	require.NoError(t, c.Press(ButtonCenter))
	require.NoError(t, c.Press(ButtonMenu))
	p := factory.player
	p.calls = nil
	p.state = StatePlaying

	require.NoError(t, c.Press(ButtonDown))

	assert.Equal(t, []string{"pause"}, p.calls)
	assert.Equal(t, ModeMenu, c.View().Mode)
}

func TestController_TransportInPlaying(t *testing.T) {
	c, factory, _ := newTestController(t, threeMoods())
	require.NoError(t, c.Press(ButtonCenter))
	p := factory.player
	p.calls = nil

	require.NoError(t, c.Press(ButtonForward))
	require.NoError(t, c.Press(ButtonBackward))

	assert.Equal(t, []string{"next", "previous"}, p.calls)
	assert.Equal(t, 0, c.View().Selected, "selection must not move while playing")
}

func TestController_OnReady(t *testing.T) {
	c, factory, _ := newTestController(t, threeMoods())
	require.NoError(t, c.Press(ButtonCenter))
	factory.player.calls = nil

	c.OnReady()

	assert.Equal(t, "Playing…", c.View().Overlay)
	assert.Equal(t, []string{"play"}, factory.player.calls)
}

func TestController_OnStateChange(t *testing.T) {
	tests := []struct {
		state    State
		expected string
	}{
		{state: StatePlaying, expected: "Playing…"},
		{state: StatePaused, expected: "Paused"},
		{state: StateEnded, expected: "End of playlist"},
		{state: StateBuffering, expected: "Buffering…"},
		{state: StateCued, expected: "A"},
		{state: StateUnstarted, expected: "A"},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			c, _, _ := newTestController(t, threeMoods())
			require.NoError(t, c.Select(0))
			require.NoError(t, c.Press(ButtonCenter))

			c.OnStateChange(tt.state)

			assert.Equal(t, tt.expected, c.View().Overlay)
		})
	}
}

func TestController_OnError_SkipsToNextItem(t *testing.T) {
	c, factory, _ := newTestController(t, threeMoods())
	require.NoError(t, c.Press(ButtonCenter))
	p := factory.player
	p.playlist = []string{"v0", "v1", "v2"}
	p.index = 1

	c.OnError(ErrorNotFound)

	require.Len(t, p.loads, 1)
	assert.Equal(t, load{list: "PLa", index: 2}, p.loads[0])
	assert.NotEqual(t, "Error: cannot load video", c.View().Overlay)

	// The item at index 2 fails too and is the last one.
	p.calls = nil
	c.OnError(ErrorNotEmbeddable)

	assert.Equal(t, "Error: cannot load video", c.View().Overlay)
	assert.Empty(t, p.calls, "no further retry on the last item")
	assert.Len(t, p.loads, 1)
}

func TestController_OnError_LoadFailure(t *testing.T) {
	c, factory, _ := newTestController(t, threeMoods())
	require.NoError(t, c.Press(ButtonCenter))
	p := factory.player
	p.playlist = []string{"v0", "v1", "v2"}
	p.index = 0
	p.loadErr = errors.New("player host detached")

	c.OnError(ErrorHTML5)

	assert.Equal(t, "Error: cannot load video", c.View().Overlay)
	assert.Equal(t, []string{"load"}, p.calls[len(p.calls)-1:])
}

func TestController_OnError_UnknownPlaylist(t *testing.T) {
	c, factory, _ := newTestController(t, threeMoods())
	require.NoError(t, c.Press(ButtonCenter))
	factory.player.playlist = nil

	c.OnError(ErrorInvalidParameter)

	assert.Equal(t, "Error: cannot load video", c.View().Overlay)
	assert.Empty(t, factory.player.loads)
}

func TestController_CallbacksWithoutPlayerAreIgnored(t *testing.T) {
	c, _, sink := newTestController(t, threeMoods())

	c.OnReady()
	c.OnError(ErrorNotFound)

	assert.Equal(t, "Select a mood", c.View().Overlay)
	assert.Empty(t, sink.views)
}

func TestController_PressUnknownButton(t *testing.T) {
	c, _, _ := newTestController(t, threeMoods())

	err := c.Press(Button(42))
	assert.ErrorIs(t, err, ErrUnknownButton)
}
