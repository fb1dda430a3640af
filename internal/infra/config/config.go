// Package config provides configuration loading from YAML files.
package config

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/osa030/moodbox/internal/app/playback"
	"github.com/osa030/moodbox/internal/domain/mood"
)

// Config represents the application configuration.
type Config struct {
	Server    ServerConfig   `yaml:"server"`
	Moods     []MoodConfig   `yaml:"moods" validate:"required_without=MoodsFile,dive"`
	MoodsFile string         `yaml:"moods_file"`
	Player    PlayerConfig   `yaml:"player"`
	Messages  MessagesConfig `yaml:"messages"`

	// dir is the directory of the loaded file; relative paths resolve against it.
	dir string
}

// ServerConfig represents server configuration.
type ServerConfig struct {
	Addr  string      `yaml:"addr" default:":8080"`
	Title string      `yaml:"title" default:"Mood Remote"`
	Token string      `yaml:"token"` // Required on remote calls when set
	Hooks HooksConfig `yaml:"hooks"`
}

// HooksConfig represents lifecycle hooks configuration.
type HooksConfig struct {
	OnStarted []string `yaml:"on_started"`
	OnStopped []string `yaml:"on_stopped"`
}

// MoodConfig represents a single mood entry.
type MoodConfig struct {
	Label    string `yaml:"label" validate:"required"`
	Playlist string `yaml:"playlist"`
	Active   bool   `yaml:"active"`
}

// PlayerConfig represents the embedded player configuration.
type PlayerConfig struct {
	ElementID string         `yaml:"element_id" default:"player"`
	Width     string         `yaml:"width" default:"100%"`
	Height    string         `yaml:"height" default:"100%"`
	Vars      map[string]any `yaml:"vars"`
}

// MessagesConfig represents the overlay texts.
type MessagesConfig struct {
	SelectMood      string `yaml:"select_mood" default:"Select a mood"`
	InvalidPlaylist string `yaml:"invalid_playlist" default:"Invalid playlist"`
	Playing         string `yaml:"playing" default:"Playing…"`
	Paused          string `yaml:"paused" default:"Paused"`
	Ended           string `yaml:"ended" default:"End of playlist"`
	Buffering       string `yaml:"buffering" default:"Buffering…"`
	LoadError       string `yaml:"load_error" default:"Error: cannot load video"`
}

// Load loads configuration from a YAML file.
// Environment variables take precedence over file values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config file")
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse config file")
	}
	cfg.dir = filepath.Dir(path)

	// Override with environment variables
	cfg.overrideFromEnv()

	// Set defaults using creasty/defaults
	if err := defaults.Set(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to set defaults")
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}

	return &cfg, nil
}

// overrideFromEnv overrides config values with environment variables.
func (c *Config) overrideFromEnv() {
	if v := os.Getenv("MOODBOX_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("MOODBOX_TOKEN"); v != "" {
		c.Server.Token = v
	}
	if v := os.Getenv("MOODBOX_MOODS_FILE"); v != "" {
		c.MoodsFile = v
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, "struct validation failed")
	}

	if _, err := c.PlayerVars(); err != nil {
		return err
	}

	return nil
}

// PlayerVars decodes the player vars over the minimal-chrome defaults.
func (c *Config) PlayerVars() (playback.Vars, error) {
	vars := playback.DefaultVars()
	if len(c.Player.Vars) == 0 {
		return vars, nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &vars,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return playback.Vars{}, errors.Wrap(err, "failed to create player vars decoder")
	}
	if err := decoder.Decode(c.Player.Vars); err != nil {
		return playback.Vars{}, errors.Wrap(err, "failed to decode player vars")
	}
	if err := validator.New().Struct(vars); err != nil {
		return playback.Vars{}, errors.Wrap(err, "player vars validation failed")
	}

	return vars, nil
}

// PlaybackMessages returns the overlay texts.
func (c *Config) PlaybackMessages() playback.Messages {
	return playback.Messages{
		SelectMood:      c.Messages.SelectMood,
		InvalidPlaylist: c.Messages.InvalidPlaylist,
		Playing:         c.Messages.Playing,
		Paused:          c.Messages.Paused,
		Ended:           c.Messages.Ended,
		Buffering:       c.Messages.Buffering,
		LoadError:       c.Messages.LoadError,
	}
}

// MoodEntries returns the declared moods. When moods_file is set the entries
// are read from that HTML markup, otherwise from the moods list.
func (c *Config) MoodEntries() ([]mood.Entry, error) {
	if c.MoodsFile == "" {
		entries := make([]mood.Entry, len(c.Moods))
		for i, m := range c.Moods {
			entries[i] = mood.Entry{
				Label:    m.Label,
				Playlist: m.Playlist,
				Active:   m.Active,
			}
		}
		return entries, nil
	}

	path := c.MoodsFile
	if !filepath.IsAbs(path) && c.dir != "" {
		path = filepath.Join(c.dir, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open moods file")
	}
	defer f.Close()

	entries, err := mood.ParseMarkup(f)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, errors.Newf("moods file %s declares no mood-item entries", path)
	}
	return entries, nil
}
