// Package remotev1 defines the wire messages and connect bindings of the
// moodbox remote service.
package remotev1

// PressRequest presses one of the remote's buttons.
type PressRequest struct {
	Button string `json:"button"`
}

// SelectRequest selects a mood directly.
type SelectRequest struct {
	Index int `json:"index"`
}

// GetViewRequest requests the current view.
type GetViewRequest struct{}

// ViewResponse carries the view after a request has been handled.
type ViewResponse struct {
	View *View `json:"view"`
}

// View is the rendered state of the remote.
type View struct {
	Mode       string   `json:"mode"`
	Selected   int      `json:"selected"`
	Moods      []string `json:"moods"`
	Overlay    string   `json:"overlay"`
	HasPlayer  bool     `json:"hasPlayer"`
	PlaylistID string   `json:"playlistId,omitempty"`
}

// PlayerEventRequest reports a player widget callback from a player host.
type PlayerEventRequest struct {
	Type      string   `json:"type"`
	State     int      `json:"state,omitempty"`
	ErrorCode int      `json:"errorCode,omitempty"`
	Index     int      `json:"index"`
	Playlist  []string `json:"playlist,omitempty"`
}

// PlayerEventResponse acknowledges a player event.
type PlayerEventResponse struct{}

// WatchRequest subscribes to view changes.
type WatchRequest struct{}

// NotificationType represents the kind of a notification.
type NotificationType string

const (
	NotificationTypeInitialState NotificationType = "initial_state"
	NotificationTypeView         NotificationType = "view"
	NotificationTypeCommand      NotificationType = "command"
)

// Notification is pushed to subscribers.
type Notification struct {
	Type       NotificationType `json:"type"`
	SequenceNo uint64           `json:"sequenceNo"`
	View       *View            `json:"view,omitempty"`
	Command    *Command         `json:"command,omitempty"`
}

// Command is a player widget call executed by player hosts.
type Command struct {
	Name     string         `json:"name"`
	Options  *PlayerOptions `json:"options,omitempty"`
	List     string         `json:"list,omitempty"`
	ListType string         `json:"listType,omitempty"`
	Index    int            `json:"index"`
}

// PlayerOptions configures a new player widget.
type PlayerOptions struct {
	ElementID  string     `json:"elementId"`
	Width      string     `json:"width"`
	Height     string     `json:"height"`
	PlayerVars PlayerVars `json:"playerVars"`
}

// PlayerVars holds the widget's player variables.
type PlayerVars struct {
	List           string `json:"list"`
	ListType       string `json:"listType"`
	Index          int    `json:"index"`
	Controls       int    `json:"controls"`
	DisableKB      int    `json:"disablekb"`
	ModestBranding int    `json:"modestbranding"`
	Rel            int    `json:"rel"`
	FS             int    `json:"fs"`
}
