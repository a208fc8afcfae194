package config

import (
	"errors"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Display.Color != "auto" {
		t.Errorf("Display.Color = %q, want %q", cfg.Display.Color, "auto")
	}
	if cfg.Display.ShowInsights == nil || !*cfg.Display.ShowInsights {
		t.Error("Display.ShowInsights should default to true")
	}
	if cfg.Display.Chart == nil || !*cfg.Display.Chart {
		t.Error("Display.Chart should default to true")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name        string
		color       string
		expectError bool
	}{
		{name: "auto", color: "auto"},
		{name: "on", color: "on"},
		{name: "off", color: "off"},
		{name: "empty is allowed", color: ""},
		{name: "unknown mode", color: "sometimes", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Display: DisplayConfig{Color: tt.color}}
			err := cfg.Validate()
			if tt.expectError && err == nil {
				t.Errorf("Validate() with color %q: expected error, got nil", tt.color)
			}
			if !tt.expectError && err != nil {
				t.Errorf("Validate() with color %q: unexpected error %v", tt.color, err)
			}
		})
	}
}

func TestLoadMissingConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := Load()
	if !errors.Is(err, ErrNoConfig) {
		t.Errorf("Load() with no config file: error = %v, want ErrNoConfig", err)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	no := false
	saved := Config{
		Display: DisplayConfig{
			Color:        "off",
			ShowInsights: &no,
		},
	}
	if err := Save(&saved); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if loaded.Display.Color != "off" {
		t.Errorf("Display.Color = %q, want %q", loaded.Display.Color, "off")
	}
	if loaded.Display.ShowInsights == nil || *loaded.Display.ShowInsights {
		t.Error("Display.ShowInsights should stay false after round trip")
	}
	// Missing fields pick up defaults on load.
	if loaded.Display.Chart == nil || !*loaded.Display.Chart {
		t.Error("Display.Chart should default to true when absent from the file")
	}
}
