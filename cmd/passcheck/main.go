package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/Blackgod0/Passcode-manager/internal/config"
	"github.com/Blackgod0/Passcode-manager/internal/genpass"
	"github.com/Blackgod0/Passcode-manager/internal/backend"
	"github.com/Blackgod0/Passcode-manager/internal/tui"
)

func main() {
	// .env is optional; env vars override config file values either way
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	client := backend.NewClient(cfg.Backend.BaseURL, &http.Client{Timeout: cfg.Backend.Timeout()})
	gen := genpass.New(client)

	app := tui.New(cfg, client, gen)
	program := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		log.Fatalf("passcheck: %v", err)
	}
	if err := app.FatalErr(); err != nil {
		fmt.Fprintf(os.Stderr, "passcheck: %v\n", err)
		os.Exit(1)
	}
}
