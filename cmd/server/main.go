// Package main provides the server entry point.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	zlog "github.com/rs/zerolog/log"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/osa030/moodbox/internal/api/web"
	"github.com/osa030/moodbox/internal/app/playback"
	"github.com/osa030/moodbox/internal/app/session"
	"github.com/osa030/moodbox/internal/domain/mood"
	"github.com/osa030/moodbox/internal/infra/config"
	"github.com/osa030/moodbox/internal/infra/logger"
)

var (
	app        = kingpin.New("moodbox-server", "moodbox mood playlist remote server")
	configPath = app.Flag("config", "Path to config file").Default("config/server.yaml").String()
	verbose    = app.Flag("verbose", "Enable verbose (DEBUG) logging").Short('v').Bool()
	logfile    = app.Flag("logfile", "Path to log file (default: stdout)").String()
	logFormat  = app.Flag("log-format", "Log format").Default("").Enum("", "console", "json")

	// list-moods command
	listMoodsCmd = app.Command("list-moods", "List configured moods and their playlists, then exit")
)

func init() {
	// start command (default) - no need to store the command
	app.Command("start", "Start the server (default)").Default()
}

func main() {
	// Load .env file if it exists (errors are ignored)
	_ = godotenv.Load()

	// Parse command
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	// Initialize logger
	loggerConfig := logger.Config{
		Output: "stdout",
		Level:  "info",
		Format: *logFormat,
	}
	// Override with command-line flags if specified
	if *verbose {
		loggerConfig.Level = "debug"
	}
	if *logfile != "" {
		loggerConfig.Output = *logfile
	}
	closer, err := logger.Init(loggerConfig)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer closer.Close()

	// Load config
	zlog.Info().Msgf("Loading config from %s", *configPath)
	cfg, err := config.Load(*configPath)
	if err != nil {
		zlog.Fatal().Msgf("Failed to load config: %v", err)
	}

	catalog, err := loadCatalog(cfg)
	if err != nil {
		zlog.Fatal().Msgf("Failed to load moods: %v", err)
	}

	// Handle list-moods command
	if command == listMoodsCmd.FullCommand() {
		printMoods(catalog)
		return
	}

	// Run server (defer ensures shutdown hook is called)
	if err := run(cfg, catalog); err != nil {
		zlog.Error().Msgf("Server error: %v", err)
		closer.Close()
		os.Exit(1)
	}
}

// loadCatalog builds the mood catalog and warns about moods that cannot play.
func loadCatalog(cfg *config.Config) (*mood.Catalog, error) {
	entries, err := cfg.MoodEntries()
	if err != nil {
		return nil, err
	}
	catalog, err := mood.NewCatalog(entries)
	if err != nil {
		return nil, err
	}

	for _, m := range catalog.Moods() {
		if _, ok := m.PlaylistID(); !ok {
			zlog.Warn().Msgf("Mood has no usable playlist reference: label=%s", m.Label)
		}
	}
	zlog.Info().Msgf("Loaded moods: count=%d active=%s", catalog.Len(), catalog.At(catalog.Active()).Label)
	return catalog, nil
}

// run executes the main server logic. Using a separate function ensures
// defer statements are executed even when returning with an error.
func run(cfg *config.Config, catalog *mood.Catalog) error {
	vars, err := cfg.PlayerVars()
	if err != nil {
		return errors.Wrap(err, "invalid player vars")
	}

	// Create session manager
	sessionMgr := session.NewManager(catalog, playback.Config{
		ElementID: cfg.Player.ElementID,
		Width:     cfg.Player.Width,
		Height:    cfg.Player.Height,
		Vars:      vars,
		Messages:  cfg.PlaybackMessages(),
	})

	// Create HTTP router (page, player host events, RPC)
	router := web.New(web.Config{
		Session:   sessionMgr,
		Title:     cfg.Server.Title,
		ElementID: cfg.Player.ElementID,
		Token:     cfg.Server.Token,
	})

	// Determine server address
	serverAddr := cfg.Server.Addr
	// Create server with h2c (HTTP/2 cleartext) support
	server := &http.Server{
		Addr:              serverAddr,
		Handler:           h2c.NewHandler(router, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Channel to capture server startup errors
	serverErrCh := make(chan error, 1)
	serverStartedCh := make(chan struct{})

	// Start server
	go func() {
		zlog.Info().Msgf("Starting server: addr=%s", serverAddr)
		// Signal that we're about to start listening
		close(serverStartedCh)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrCh <- err
		}
	}()

	// Wait for server to start listening
	<-serverStartedCh
	// Give the server a moment to fully initialize
	time.Sleep(100 * time.Millisecond)

	// Execute startup hook if configured (after server is running)
	executeHooks(cfg.Server.Hooks.OnStarted, "on_started")

	// Wait for shutdown signal, session end, or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigCh:
		zlog.Info().Msg("Received shutdown signal...")
	case <-sessionMgr.Done():
		zlog.Info().Msg("Session ended, shutting down...")
	case err := <-serverErrCh:
		sessionMgr.Close()
		return errors.Wrap(err, "server error")
	}

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Close session manager first to terminate active connections/streams
	sessionMgr.Close()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zlog.Error().Msgf("Failed to shutdown server: %v", err)
	}

	zlog.Info().Msg("Server stopped")

	// Execute shutdown hook if configured
	executeHooks(cfg.Server.Hooks.OnStopped, "on_stopped")

	return nil
}

// printMoods prints the catalog with the playlist each mood resolves to.
func printMoods(catalog *mood.Catalog) {
	fmt.Println("Moods:")
	for i, m := range catalog.Moods() {
		marker := " "
		if i == catalog.Active() {
			marker = "*"
		}
		id, ok := m.PlaylistID()
		if !ok {
			id = "(invalid playlist)"
		}
		fmt.Printf(" %s %2d. %-24s %s\n", marker, i+1, m.Label, id)
	}
}

// executeHooks runs a list of shell commands.
func executeHooks(hooks []string, stage string) {
	if len(hooks) == 0 {
		return
	}

	zlog.Info().Msgf("Executing %s hooks (%d commands)", stage, len(hooks))

	for _, hook := range hooks {
		zlog.Info().Msgf("Executing hook: %s", hook)
		// Use sh -c to allow shell features like redirection or pipes
		cmd := exec.Command("sh", "-c", hook)
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr

		if err := cmd.Run(); err != nil {
			zlog.Error().Err(err).Msgf("Failed to execute hook: %s", hook)
		}
	}
}
