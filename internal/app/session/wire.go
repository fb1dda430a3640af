package session

import (
	remotev1 "github.com/osa030/moodbox/internal/api/remotev1"
	"github.com/osa030/moodbox/internal/app/playback"
	"github.com/osa030/moodbox/internal/infra/youtube"
)

// ViewToWire converts a view to its wire form.
func ViewToWire(v playback.View) *remotev1.View {
	moods := make([]string, len(v.Moods))
	copy(moods, v.Moods)
	return &remotev1.View{
		Mode:       v.Mode.String(),
		Selected:   v.Selected,
		Moods:      moods,
		Overlay:    v.Overlay,
		HasPlayer:  v.HasPlayer,
		PlaylistID: v.PlaylistID,
	}
}

// CommandToWire converts a player command to its wire form.
func CommandToWire(cmd youtube.Command) *remotev1.Command {
	wc := &remotev1.Command{
		Name:  string(cmd.Name),
		List:  cmd.List,
		Index: cmd.Index,
	}
	if cmd.Name == youtube.CommandLoadPlaylist {
		wc.ListType = playback.ListTypePlaylist
	}
	if cmd.Options != nil {
		wc.Options = &remotev1.PlayerOptions{
			ElementID: cmd.Options.ElementID,
			Width:     cmd.Options.Width,
			Height:    cmd.Options.Height,
			PlayerVars: remotev1.PlayerVars{
				List:           cmd.Options.Vars.List,
				ListType:       cmd.Options.Vars.ListType,
				Index:          cmd.Options.Vars.Index,
				Controls:       cmd.Options.Vars.Controls,
				DisableKB:      cmd.Options.Vars.DisableKB,
				ModestBranding: cmd.Options.Vars.ModestBranding,
				Rel:            cmd.Options.Vars.Rel,
				FS:             cmd.Options.Vars.FS,
			},
		}
	}
	return wc
}

// EventFromWire converts a reported widget callback.
func EventFromWire(req *remotev1.PlayerEventRequest) (playback.Event, error) {
	typ, err := playback.ParseEventType(req.Type)
	if err != nil {
		return playback.Event{}, err
	}
	return playback.Event{
		Type:     typ,
		State:    playback.State(req.State),
		Error:    playback.ErrorCode(req.ErrorCode),
		Index:    req.Index,
		Playlist: req.Playlist,
	}, nil
}
