// Package main provides the remote CLI entry point.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"github.com/alecthomas/kingpin/v2"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	apiconnect "github.com/osa030/moodbox/internal/api/connect"
	remotev1 "github.com/osa030/moodbox/internal/api/remotev1"
	"github.com/osa030/moodbox/internal/tui"
)

var (
	app    = kingpin.New("moodbox-remotecli", "moodbox remote control client")
	server = app.Flag("server", "Server address").Default("http://localhost:8080").Envar("MOODBOX_SERVER").String()
	token  = app.Flag("token", "Remote token").Envar("MOODBOX_TOKEN").String()

	// press command
	pressCmd    = app.Command("press", "Press a remote button")
	pressButton = pressCmd.Arg("button", "Button to press").Required().Enum(
		"menu", "forward", "backward", "down", "center",
		"next", "back", "previous", "secondary", "confirm",
	)

	// select command
	selectCmd   = app.Command("select", "Select a mood by number")
	selectIndex = selectCmd.Arg("number", "Mood number (1-based)").Required().Int()

	// status command
	statusCmd = app.Command("status", "Show the current view")

	// watch command
	watchCmd = app.Command("watch", "Watch view changes")

	// tui command
	tuiCmd   = app.Command("tui", "Open the terminal remote")
	tuiTitle = tuiCmd.Flag("title", "Title shown in the terminal remote").Default("Mood Remote").String()
)

func main() {
	// Load .env file if it exists (errors are ignored)
	_ = godotenv.Load()

	// Parse command
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	// Create client
	client := remotev1.NewRemoteServiceClient(
		http.DefaultClient,
		*server,
		connect.WithInterceptors(apiconnect.NewClientTokenInterceptor(*token)),
	)

	ctx := context.Background()

	// Execute command
	switch command {
	case pressCmd.FullCommand():
		press(ctx, client, *pressButton)
	case selectCmd.FullCommand():
		selectMood(ctx, client, *selectIndex)
	case statusCmd.FullCommand():
		status(ctx, client)
	case watchCmd.FullCommand():
		watch(ctx, client)
	case tuiCmd.FullCommand():
		runTUI(ctx, client, *tuiTitle)
	}
}

func press(ctx context.Context, client remotev1.RemoteServiceClient, button string) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	resp, err := client.Press(ctx, connect.NewRequest(&remotev1.PressRequest{Button: button}))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	printView(resp.Msg.View)
}

func selectMood(ctx context.Context, client remotev1.RemoteServiceClient, number int) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	resp, err := client.Select(ctx, connect.NewRequest(&remotev1.SelectRequest{Index: number - 1}))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	printView(resp.Msg.View)
}

func status(ctx context.Context, client remotev1.RemoteServiceClient) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	resp, err := client.GetView(ctx, connect.NewRequest(&remotev1.GetViewRequest{}))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	printView(resp.Msg.View)
}

func watch(ctx context.Context, client remotev1.RemoteServiceClient) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	stream, err := client.Watch(ctx, connect.NewRequest(&remotev1.WatchRequest{}))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Watching view changes. Press Ctrl+C to exit.")

	// Handle shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Println("\nStopping...")
		cancel()
	}()

	// Receive notifications
	for stream.Receive() {
		n := stream.Msg()
		fmt.Printf("\n[#%d %s] %s\n", n.SequenceNo, n.Type, time.Now().Format(time.TimeOnly))
		printView(n.View)
	}

	if err := stream.Err(); err != nil && ctx.Err() == nil {
		fmt.Printf("Stream error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Stream closed")
}

func runTUI(ctx context.Context, client remotev1.RemoteServiceClient, title string) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(tui.New(ctx, tui.NewClientRemote(client), title), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func formatMode(mode string) string {
	switch mode {
	case "menu":
		return "☰  Menu"
	case "playing":
		return "▶️  Playing"
	default:
		return "❓ Unknown"
	}
}

func printView(v *remotev1.View) {
	if v == nil {
		return
	}

	fmt.Printf("Mode:    %s\n", formatMode(v.Mode))
	fmt.Printf("Overlay: %s\n", v.Overlay)
	if v.PlaylistID != "" {
		fmt.Printf("Playlist: %s\n", v.PlaylistID)
	}
	if !v.HasPlayer {
		fmt.Println("Player:  not created")
	}
	fmt.Println("Moods:")
	for i, label := range v.Moods {
		marker := " "
		if i == v.Selected {
			marker = ">"
		}
		fmt.Printf(" %s %2d. %s\n", marker, i+1, label)
	}
}
