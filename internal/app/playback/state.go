// Package playback provides the mood remote's playback controller and the
// model of the embedded player widget it drives.
package playback

// State represents the embedded player's state as reported by the widget.
type State int

const (
	StateUnstarted State = -1 // Player created, nothing loaded yet
	StateEnded     State = 0  // Playlist reached its end
	StatePlaying   State = 1  // Video is playing
	StatePaused    State = 2  // Video is paused
	StateBuffering State = 3  // Video is buffering
	StateCued      State = 5  // Video is cued but not started
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateUnstarted:
		return "unstarted"
	case StateEnded:
		return "ended"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateBuffering:
		return "buffering"
	case StateCued:
		return "cued"
	default:
		return "unknown"
	}
}

// ErrorCode represents an error reported by the embedded player.
type ErrorCode int

const (
	ErrorInvalidParameter ErrorCode = 2   // Invalid request parameter
	ErrorHTML5            ErrorCode = 5   // HTML5 player failure
	ErrorNotFound         ErrorCode = 100 // Video removed or private
	ErrorNotEmbeddable    ErrorCode = 101 // Owner disallows embedding
	ErrorNotEmbeddableAlt ErrorCode = 150 // Same as 101, different code
)

// String returns the string representation of the error code.
func (e ErrorCode) String() string {
	switch e {
	case ErrorInvalidParameter:
		return "invalid_parameter"
	case ErrorHTML5:
		return "html5_error"
	case ErrorNotFound:
		return "not_found"
	case ErrorNotEmbeddable, ErrorNotEmbeddableAlt:
		return "not_embeddable"
	default:
		return "unknown"
	}
}
