package playback

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrUnknownButton is returned when a button name is not recognized.
var ErrUnknownButton = errors.New("unknown button")

// Mode represents the top-level UI mode.
type Mode int

const (
	ModeMenu    Mode = iota // Mood list shown
	ModePlaying             // Player shown
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlaying:
		return "playing"
	default:
		return "unknown"
	}
}

// Button represents one of the remote's five activation points.
type Button int

const (
	ButtonMenu     Button = iota // Back to menu
	ButtonForward                // Next mood / next video
	ButtonBackward               // Previous mood / previous video
	ButtonDown                   // Secondary play/pause toggle
	ButtonCenter                 // Confirm
)

// String returns the string representation of the button.
func (b Button) String() string {
	switch b {
	case ButtonMenu:
		return "menu"
	case ButtonForward:
		return "forward"
	case ButtonBackward:
		return "backward"
	case ButtonDown:
		return "down"
	case ButtonCenter:
		return "center"
	default:
		return "unknown"
	}
}

// ParseButton parses a button name.
func ParseButton(name string) (Button, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "menu":
		return ButtonMenu, nil
	case "forward", "next":
		return ButtonForward, nil
	case "backward", "back", "previous":
		return ButtonBackward, nil
	case "down", "secondary":
		return ButtonDown, nil
	case "center", "confirm":
		return ButtonCenter, nil
	default:
		return 0, errors.Wrapf(ErrUnknownButton, "%q", name)
	}
}

// Buttons returns all buttons in display order.
func Buttons() []Button {
	return []Button{ButtonMenu, ButtonForward, ButtonBackward, ButtonDown, ButtonCenter}
}
