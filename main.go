package main

import (
	"context"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"tablero/internal/config"
	"tablero/internal/database"
	"tablero/internal/logging"
	"tablero/internal/services/column"
	"tablero/internal/services/placement"
	"tablero/internal/tui"
	"tablero/internal/user"
)

func main() {
	// Logs go to a file; the TUI owns the terminal.
	if err := logging.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()
	db, err := database.InitDB(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	userID := user.CurrentUsername()
	if err := database.SeedDefaultColumns(ctx, db, userID); err != nil {
		log.Fatalf("Failed to seed columns: %v", err)
	}

	columns := column.NewService(database.NewColumnRepository(db), userID)
	placements := placement.NewService(database.NewCardRepository(db), userID)

	model := tui.InitialModel(columns, placements, cfg)

	// All-motion mouse reporting: drags need motion events between press and
	// release, not just clicks.
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		log.Fatal(err)
	}
}
