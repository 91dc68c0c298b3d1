package theme

import (
	"regexp"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

func TestTokensAreComplete(t *testing.T) {
	want := []string{
		"accent", "background", "error", "info",
		"on-background", "on-primary", "on-secondary", "on-surface",
		"primary", "secondary", "success", "surface", "warning",
	}
	got := Tokens()
	if len(got) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestBuiltinThemesAreValidHex(t *testing.T) {
	for _, th := range []Theme{Light(), Dark()} {
		colors := th.Colors.All()
		if len(colors) != len(Tokens()) {
			t.Errorf("%s: expected %d colors, got %d", th.Name, len(Tokens()), len(colors))
		}
		for _, c := range colors {
			if !hexColorRegex.MatchString(string(c)) {
				t.Errorf("%s: invalid hex color: %q", th.Name, c)
			}
		}
	}
}

func TestLightMatchesPopcornPalette(t *testing.T) {
	tests := []struct {
		token string
		want  lipgloss.Color
	}{
		{"primary", "#DC143C"},
		{"secondary", "#FFD700"},
		{"accent", "#000000"},
		{"error", "#DC143C"},
		{"warning", "#FFA500"},
		{"info", "#FFD700"},
		{"success", "#32CD32"},
		{"surface", "#FFFFFF"},
		{"background", "#FFFEF7"},
		{"on-primary", "#FFFFFF"},
		{"on-secondary", "#000000"},
		{"on-surface", "#000000"},
		{"on-background", "#000000"},
	}
	light := Light()
	if light.Dark {
		t.Fatalf("light theme should not be dark")
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, ok := light.Colors.Token(tt.token)
			if !ok {
				t.Fatalf("token %q missing", tt.token)
			}
			if got != tt.want {
				t.Errorf("%s = %q, want %q", tt.token, got, tt.want)
			}
		})
	}
}

func TestNamed(t *testing.T) {
	tests := []struct {
		name    string
		want    string
		wantErr bool
	}{
		{"", "light", false},
		{"Light", "light", false},
		{" dark ", "dark", false},
		{"solarized", "", true},
	}
	for _, tt := range tests {
		th, err := Named(tt.name)
		if tt.wantErr {
			if err == nil {
				t.Errorf("Named(%q) expected error", tt.name)
			}
			continue
		}
		if err != nil {
			t.Fatalf("Named(%q): %v", tt.name, err)
		}
		if th.Name != tt.want {
			t.Errorf("Named(%q) = %q, want %q", tt.name, th.Name, tt.want)
		}
	}
}

func TestWithOverrides(t *testing.T) {
	base := Light()
	th, err := base.WithOverrides(map[string]string{
		"primary":    "#123456",
		"On_Surface": "#abc",
	})
	if err != nil {
		t.Fatalf("WithOverrides: %v", err)
	}
	if th.Colors.Primary != "#123456" {
		t.Errorf("primary = %q", th.Colors.Primary)
	}
	if th.Colors.OnSurface != "#abc" {
		t.Errorf("on-surface = %q", th.Colors.OnSurface)
	}
	if base.Colors.Primary != "#DC143C" {
		t.Errorf("base theme should be untouched, got %q", base.Colors.Primary)
	}
}

func TestWithOverridesRejectsBadInput(t *testing.T) {
	bad := []map[string]string{
		{"tertiary": "#123456"},
		{"primary": "red"},
		{"primary": "#12345"},
	}
	for _, o := range bad {
		if _, err := Light().WithOverrides(o); err == nil {
			t.Errorf("expected error for %v", o)
		}
	}
}

func TestNewStylesRenders(t *testing.T) {
	s := NewStyles(Dark())
	if out := s.Header.Render("rollcall"); out == "" {
		t.Fatalf("header style rendered nothing")
	}
}
