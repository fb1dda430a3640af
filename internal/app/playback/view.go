package playback

// Messages holds the overlay texts.
type Messages struct {
	SelectMood      string
	InvalidPlaylist string
	Playing         string
	Paused          string
	Ended           string
	Buffering       string
	LoadError       string
}

// DefaultMessages returns the stock overlay texts.
func DefaultMessages() Messages {
	return Messages{
		SelectMood:      "Select a mood",
		InvalidPlaylist: "Invalid playlist",
		Playing:         "Playing…",
		Paused:          "Paused",
		Ended:           "End of playlist",
		Buffering:       "Buffering…",
		LoadError:       "Error: cannot load video",
	}
}

// View is the snapshot surfaces render after each transition.
type View struct {
	Mode       Mode
	Selected   int
	Moods      []string
	Overlay    string
	HasPlayer  bool
	PlaylistID string // Playlist loaded into the player ("" before first playback)
}

// ViewSink receives a view after every transition.
type ViewSink interface {
	PublishView(View)
}
