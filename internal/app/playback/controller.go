package playback

import (
	"sync"

	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/moodbox/internal/domain/mood"
)

// ErrInvalidSelection is returned when a mood index is out of range.
var ErrInvalidSelection = errors.New("invalid mood selection")

// Config holds controller configuration.
type Config struct {
	ElementID string   // Target element of the player widget
	Width     string   // Player width
	Height    string   // Player height
	Vars      Vars     // Chrome flags (list, listType and index are filled per playback)
	Messages  Messages // Overlay texts
}

// Controller is the mood remote's state machine. It owns the selection, the
// UI mode and the single player handle, and maps button presses and player
// callbacks to transitions.
//
// Every entry point holds the controller lock for the whole transition, so
// input handlers and player callbacks never interleave.
type Controller struct {
	mu sync.Mutex

	catalog *mood.Catalog
	factory Factory
	sink    ViewSink
	config  Config

	mode       Mode
	selected   int
	overlay    string
	player     Player
	playlistID string
}

// NewController creates a controller in menu mode with the catalog's active
// mood selected.
func NewController(catalog *mood.Catalog, factory Factory, sink ViewSink, config Config) *Controller {
	return &Controller{
		catalog:  catalog,
		factory:  factory,
		sink:     sink,
		config:   config,
		mode:     ModeMenu,
		selected: catalog.Active(),
		overlay:  config.Messages.SelectMood,
	}
}

// View returns the current view.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewLocked()
}

// Press handles a button press.
func (c *Controller) Press(b Button) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	zlog.Debug().Msgf("playback: button pressed: button=%s mode=%s", b, c.mode)

	switch b {
	case ButtonMenu:
		if c.mode == ModePlaying {
			c.showMenuLocked()
		} else {
			c.overlay = c.config.Messages.SelectMood
		}
	case ButtonForward:
		c.stepLocked(1)
	case ButtonBackward:
		c.stepLocked(-1)
	case ButtonCenter:
		if c.mode == ModeMenu {
			c.startPlaybackLocked()
		} else if c.player != nil {
			c.toggleLocked()
		}
	case ButtonDown:
		if c.player != nil {
			c.toggleLocked()
		} else if c.mode == ModeMenu {
			c.startPlaybackLocked()
		}
	default:
		return errors.Wrapf(ErrUnknownButton, "%d", int(b))
	}

	c.publishLocked()
	return nil
}

// Select selects the mood at index i directly.
func (c *Controller) Select(i int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i < 0 || i >= c.catalog.Len() {
		return errors.Wrapf(ErrInvalidSelection, "index %d of %d", i, c.catalog.Len())
	}

	c.selectLocked(i)
	c.publishLocked()
	return nil
}

// StartPlayback plays the selected mood's playlist.
func (c *Controller) StartPlayback() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.startPlaybackLocked()
	c.publishLocked()
}

// OnReady implements Handler.
func (c *Controller) OnReady() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.player == nil {
		return
	}

	zlog.Debug().Msg("playback: player ready")
	c.overlay = c.config.Messages.Playing
	if err := c.player.Play(); err != nil {
		zlog.Warn().Msgf("playback: failed to start player: %v", err)
	}
	c.publishLocked()
}

// OnStateChange implements Handler.
func (c *Controller) OnStateChange(state State) {
	c.mu.Lock()
	defer c.mu.Unlock()

	zlog.Debug().Msgf("playback: player state changed: state=%s", state)

	switch state {
	case StatePlaying:
		c.overlay = c.config.Messages.Playing
	case StatePaused:
		c.overlay = c.config.Messages.Paused
	case StateEnded:
		c.overlay = c.config.Messages.Ended
	case StateBuffering:
		c.overlay = c.config.Messages.Buffering
	default:
		return
	}
	c.publishLocked()
}

// OnError implements Handler. A failed item is skipped by loading the
// playlist at the next index; when no item remains, or that load fails, the
// error is shown. Each error event advances at most one item.
func (c *Controller) OnError(code ErrorCode) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.player == nil {
		return
	}

	current := c.player.PlaylistIndex()
	length := len(c.player.Playlist())
	zlog.Warn().Msgf("playback: video error, skipping to next: code=%s index=%d length=%d", code, current, length)

	if length > current+1 {
		c.tryPlayLocked(current + 1)
	} else {
		c.overlay = c.config.Messages.LoadError
	}
	c.publishLocked()
}

func (c *Controller) startPlaybackLocked() {
	id, ok := c.catalog.At(c.selected).PlaylistID()
	if !ok {
		c.overlay = c.config.Messages.InvalidPlaylist
		return
	}

	c.mode = ModePlaying
	c.playlistID = id

	if c.player != nil {
		c.tryPlayLocked(0)
		return
	}

	vars := c.config.Vars
	vars.List = id
	vars.ListType = ListTypePlaylist
	vars.Index = 0

	p, err := c.factory.NewPlayer(Options{
		ElementID: c.config.ElementID,
		Width:     c.config.Width,
		Height:    c.config.Height,
		Vars:      vars,
	}, c)
	if err != nil {
		zlog.Warn().Msgf("playback: failed to create player: playlist=%s: %v", id, err)
		c.overlay = c.config.Messages.LoadError
		return
	}
	c.player = p
	zlog.Info().Msgf("playback: player created: playlist=%s", id)
}

// tryPlayLocked loads the current playlist at index and starts it.
func (c *Controller) tryPlayLocked(index int) {
	if err := c.player.LoadPlaylist(c.playlistID, index); err != nil {
		zlog.Warn().Msgf("playback: failed to play video at index %d: %v", index, err)
		c.overlay = c.config.Messages.LoadError
		return
	}
	if err := c.player.Play(); err != nil {
		zlog.Warn().Msgf("playback: failed to play video at index %d: %v", index, err)
		c.overlay = c.config.Messages.LoadError
	}
}

func (c *Controller) toggleLocked() {
	var err error
	if c.player.State() == StatePlaying {
		err = c.player.Pause()
	} else {
		err = c.player.Play()
	}
	if err != nil {
		zlog.Warn().Msgf("playback: toggle failed: %v", err)
	}
}

func (c *Controller) stepLocked(delta int) {
	if c.mode == ModeMenu {
		c.selectLocked(c.selected + delta)
		return
	}
	if c.player == nil {
		return
	}

	var err error
	if delta > 0 {
		err = c.player.Next()
	} else {
		err = c.player.Previous()
	}
	if err != nil {
		zlog.Warn().Msgf("playback: skip failed: %v", err)
	}
}

func (c *Controller) selectLocked(i int) {
	n := c.catalog.Len()
	c.selected = ((i % n) + n) % n
	c.overlay = c.catalog.At(c.selected).Label
}

func (c *Controller) showMenuLocked() {
	c.mode = ModeMenu
	c.overlay = c.config.Messages.SelectMood
}

func (c *Controller) viewLocked() View {
	return View{
		Mode:       c.mode,
		Selected:   c.selected,
		Moods:      c.catalog.Labels(),
		Overlay:    c.overlay,
		HasPlayer:  c.player != nil,
		PlaylistID: c.playlistID,
	}
}

func (c *Controller) publishLocked() {
	if c.sink != nil {
		c.sink.PublishView(c.viewLocked())
	}
}
