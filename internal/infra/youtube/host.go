// Package youtube drives YouTube IFrame players hosted in remote browser pages.
//
// The Go side never talks to YouTube directly. A Host turns player calls into
// commands for the attached pages and mirrors the state those pages report
// back from the widget's callbacks.
package youtube

import (
	"sync"

	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/moodbox/internal/app/playback"
)

var (
	ErrNoHost       = errors.New("no player host attached")
	ErrPlayerExists = errors.New("player already created")
)

// CommandName identifies a widget call.
type CommandName string

const (
	CommandCreate       CommandName = "create"
	CommandLoadPlaylist CommandName = "loadPlaylist"
	CommandPlay         CommandName = "playVideo"
	CommandPause        CommandName = "pauseVideo"
	CommandNext         CommandName = "nextVideo"
	CommandPrevious     CommandName = "previousVideo"
)

// Command is a widget call to be executed by player hosts.
type Command struct {
	Name    CommandName
	Options *playback.Options // CommandCreate only
	List    string            // CommandLoadPlaylist only
	Index   int               // CommandLoadPlaylist only
}

// Transport delivers commands to the attached player hosts. It returns
// ErrNoHost when no host can execute the command.
type Transport interface {
	Deliver(cmd Command) error
}

// Host creates and owns the single remote player.
type Host struct {
	transport Transport

	mu      sync.Mutex
	player  *Player
	handler playback.Handler
}

var _ playback.Factory = (*Host)(nil)

// NewHost creates a new host.
func NewHost(transport Transport) *Host {
	return &Host{transport: transport}
}

// NewPlayer implements playback.Factory.
func (h *Host) NewPlayer(opts playback.Options, handler playback.Handler) (playback.Player, error) {
	h.mu.Lock()
	exists := h.player != nil
	h.mu.Unlock()
	if exists {
		return nil, ErrPlayerExists
	}

	if err := h.transport.Deliver(Command{Name: CommandCreate, Options: &opts}); err != nil {
		return nil, errors.Wrap(err, "failed to create player")
	}

	p := &Player{
		host:    h,
		options: opts,
		state:   playback.StateUnstarted,
		list:    opts.Vars.List,
		index:   opts.Vars.Index,
	}

	h.mu.Lock()
	h.player = p
	h.handler = handler
	h.mu.Unlock()

	return p, nil
}

// Report applies a widget callback reported by a player host and forwards it
// to the player's handler.
func (h *Host) Report(ev playback.Event) {
	h.mu.Lock()
	p, handler := h.player, h.handler
	h.mu.Unlock()

	if p == nil {
		zlog.Debug().Msgf("youtube: ignoring %s event, no player", ev.Type)
		return
	}

	p.apply(ev)
	ev.Dispatch(handler)
}

// Bootstrap returns the create command a newly attached host needs to build
// the current player, positioned where the player currently is.
func (h *Host) Bootstrap() (Command, bool) {
	h.mu.Lock()
	p := h.player
	h.mu.Unlock()

	if p == nil {
		return Command{}, false
	}

	opts := p.currentOptions()
	return Command{Name: CommandCreate, Options: &opts}, true
}
