package youtube

import (
	"sync"

	"github.com/osa030/moodbox/internal/app/playback"
)

// Player is a playback.Player backed by the widgets of attached hosts.
// Queries answer from the state last reported by a host.
type Player struct {
	host    *Host
	options playback.Options

	mu       sync.RWMutex
	state    playback.State
	list     string
	index    int
	playlist []string
}

var _ playback.Player = (*Player)(nil)

// LoadPlaylist loads list and starts at index.
func (p *Player) LoadPlaylist(list string, index int) error {
	if err := p.host.transport.Deliver(Command{
		Name:  CommandLoadPlaylist,
		List:  list,
		Index: index,
	}); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if list != p.list {
		p.playlist = nil
	}
	p.list = list
	p.index = index
	p.state = playback.StateUnstarted
	return nil
}

// Play starts or resumes playback.
func (p *Player) Play() error {
	return p.host.transport.Deliver(Command{Name: CommandPlay})
}

// Pause pauses playback.
func (p *Player) Pause() error {
	return p.host.transport.Deliver(Command{Name: CommandPause})
}

// Next skips to the next playlist item.
func (p *Player) Next() error {
	return p.host.transport.Deliver(Command{Name: CommandNext})
}

// Previous skips to the previous playlist item.
func (p *Player) Previous() error {
	return p.host.transport.Deliver(Command{Name: CommandPrevious})
}

// State returns the last reported widget state.
func (p *Player) State() playback.State {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state
}

// PlaylistIndex returns the last reported playlist index.
func (p *Player) PlaylistIndex() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.index
}

// Playlist returns the last reported playlist video IDs, nil if unknown.
func (p *Player) Playlist() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.playlist == nil {
		return nil
	}
	result := make([]string, len(p.playlist))
	copy(result, p.playlist)
	return result
}

func (p *Player) apply(ev playback.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if ev.Type == playback.EventStateChange {
		p.state = ev.State
	}
	if ev.Index >= 0 {
		p.index = ev.Index
	}
	if ev.Playlist != nil {
		p.playlist = ev.Playlist
	}
}

func (p *Player) currentOptions() playback.Options {
	p.mu.RLock()
	defer p.mu.RUnlock()

	opts := p.options
	opts.Vars.List = p.list
	opts.Vars.Index = p.index
	return opts
}
