package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Play.Slots != nil || cfg.Play.List != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigPlaySection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := "[play]\nlist = \"katakana\"\nslots = 6\nwidth-fold = true\n\n[stats]\nlast = 30\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Play.List == nil || *cfg.Play.List != "katakana" {
		t.Fatalf("unexpected list: %v", cfg.Play.List)
	}
	if cfg.Play.Slots == nil || *cfg.Play.Slots != 6 {
		t.Fatalf("unexpected slots: %v", cfg.Play.Slots)
	}
	if cfg.Play.WidthFold == nil || !*cfg.Play.WidthFold {
		t.Fatalf("expected width-fold to be set")
	}
	if cfg.Play.Goal != nil {
		t.Fatalf("expected goal to stay unset")
	}
	if cfg.Stats.Last == nil || *cfg.Stats.Last != 30 {
		t.Fatalf("unexpected stats last: %v", cfg.Stats.Last)
	}
}

func TestLoadConfigUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[play]\nslot = 3\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err := LoadConfig(path)
	if err == nil || !strings.Contains(err.Error(), "play.slot") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestDefaultPathsUseXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	t.Setenv("XDG_DATA_HOME", "/data")
	if got := DefaultConfigPath(); got != filepath.Join("/cfg", "taipo", "config.toml") {
		t.Fatalf("unexpected config path: %s", got)
	}
	if got := DefaultMenuPath(); got != filepath.Join("/cfg", "taipo", "menu.toml") {
		t.Fatalf("unexpected menu path: %s", got)
	}
	if got := DefaultDBPath(); got != filepath.Join("/data", "taipo", "taipo.db") {
		t.Fatalf("unexpected db path: %s", got)
	}
}
