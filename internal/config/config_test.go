package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.Board.ColumnWidth != 30 || cfg.Board.CardHeight != 4 || cfg.Board.VisibleColumns != 4 {
		t.Errorf("Unexpected board defaults: %+v", cfg.Board)
	}
	if cfg.Theme.DropTarget == "" {
		t.Error("Expected theme defaults to be applied")
	}
}

func TestSaveAndLoad(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := defaultConfig()
	cfg.Board.ColumnWidth = 42
	cfg.Theme.Accent = "99"

	if err := cfg.Save(); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if loaded.Board.ColumnWidth != 42 {
		t.Errorf("Expected column width 42, got %d", loaded.Board.ColumnWidth)
	}
	if loaded.Theme.Accent != "99" {
		t.Errorf("Expected accent 99, got %q", loaded.Theme.Accent)
	}
	// Unset values are backfilled with defaults on load.
	if loaded.Board.CardHeight != 4 {
		t.Errorf("Expected default card height, got %d", loaded.Board.CardHeight)
	}
}

func TestLoad_PartialFileGetsDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	configDir := filepath.Join(dir, "tablero")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	partial := "board:\n  column_width: 25\n"
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(partial), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.Board.ColumnWidth != 25 {
		t.Errorf("Expected column width 25, got %d", cfg.Board.ColumnWidth)
	}
	if cfg.Board.VisibleColumns != 4 {
		t.Errorf("Expected default visible columns, got %d", cfg.Board.VisibleColumns)
	}
}
