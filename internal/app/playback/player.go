package playback

// Player is a handle to the embedded player widget.
type Player interface {
	LoadPlaylist(list string, index int) error
	Play() error
	Pause() error
	Next() error
	Previous() error
	State() State
	PlaylistIndex() int
	Playlist() []string
}

// Handler receives the player widget's asynchronous callbacks.
type Handler interface {
	OnReady()
	OnStateChange(state State)
	OnError(code ErrorCode)
}

// Factory constructs player widgets. Implementations must not invoke the
// handler from within NewPlayer.
type Factory interface {
	NewPlayer(opts Options, handler Handler) (Player, error)
}

// ListTypePlaylist is the only list type the controller loads.
const ListTypePlaylist = "playlist"

// Options configures a new player widget.
type Options struct {
	ElementID string `json:"elementId"`
	Width     string `json:"width"`
	Height    string `json:"height"`
	Vars      Vars   `json:"playerVars"`
}

// Vars holds the widget's player variables.
type Vars struct {
	List           string `json:"list" mapstructure:"-"`
	ListType       string `json:"listType" mapstructure:"-"`
	Index          int    `json:"index" mapstructure:"-"`
	Controls       int    `json:"controls" mapstructure:"controls" validate:"oneof=0 1 2"`
	DisableKB      int    `json:"disablekb" mapstructure:"disablekb" validate:"oneof=0 1"`
	ModestBranding int    `json:"modestbranding" mapstructure:"modestbranding" validate:"oneof=0 1"`
	Rel            int    `json:"rel" mapstructure:"rel" validate:"oneof=0 1"`
	FS             int    `json:"fs" mapstructure:"fs" validate:"oneof=0 1"`
}

// DefaultVars returns the minimal-chrome player variables: native controls
// hidden, widget keyboard shortcuts disabled, branding minimized, related
// videos and fullscreen disabled.
func DefaultVars() Vars {
	return Vars{
		Controls:       0,
		DisableKB:      1,
		ModestBranding: 1,
		Rel:            0,
		FS:             0,
	}
}
