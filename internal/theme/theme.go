// Package theme holds the named color tokens the terminal UI renders with.
// Nothing outside rendering depends on it.
package theme

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	ErrUnknownTheme = errors.New("unknown theme")
	ErrUnknownToken = errors.New("unknown color token")
	ErrInvalidColor = errors.New("invalid hex color")
)

var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Palette maps every color token to a concrete color.
type Palette struct {
	Primary      lipgloss.Color
	Secondary    lipgloss.Color
	Accent       lipgloss.Color
	Error        lipgloss.Color
	Warning      lipgloss.Color
	Info         lipgloss.Color
	Success      lipgloss.Color
	Surface      lipgloss.Color
	Background   lipgloss.Color
	OnPrimary    lipgloss.Color
	OnSecondary  lipgloss.Color
	OnSurface    lipgloss.Color
	OnBackground lipgloss.Color
}

type Theme struct {
	Name   string
	Dark   bool
	Colors Palette
}

// Light is the default theme: theater red and butter yellow on cream.
func Light() Theme {
	return Theme{
		Name: "light",
		Colors: Palette{
			Primary:      crimson,
			Secondary:    gold,
			Accent:       black,
			Error:        crimson,
			Warning:      orange,
			Info:         gold,
			Success:      limeGreen,
			Surface:      white,
			Background:   cream,
			OnPrimary:    white,
			OnSecondary:  black,
			OnSurface:    black,
			OnBackground: black,
		},
	}
}

func Dark() Theme {
	return Theme{
		Name: "dark",
		Dark: true,
		Colors: Palette{
			Primary:      mochaPink,
			Secondary:    mochaYellow,
			Accent:       mochaLavender,
			Error:        mochaRed,
			Warning:      mochaPeach,
			Info:         mochaTeal,
			Success:      mochaGreen,
			Surface:      mochaSurface0,
			Background:   mochaBase,
			OnPrimary:    mochaCrust,
			OnSecondary:  mochaCrust,
			OnSurface:    mochaText,
			OnBackground: mochaText,
		},
	}
}

// Named resolves a theme by name. Empty selects the light theme.
func Named(name string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "light":
		return Light(), nil
	case "dark":
		return Dark(), nil
	default:
		return Theme{}, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
}

// Tokens lists the token names in a stable order.
func Tokens() []string {
	out := make([]string, 0, len(tokenFields))
	for name := range tokenFields {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

var tokenFields = map[string]func(p *Palette) *lipgloss.Color{
	"primary":       func(p *Palette) *lipgloss.Color { return &p.Primary },
	"secondary":     func(p *Palette) *lipgloss.Color { return &p.Secondary },
	"accent":        func(p *Palette) *lipgloss.Color { return &p.Accent },
	"error":         func(p *Palette) *lipgloss.Color { return &p.Error },
	"warning":       func(p *Palette) *lipgloss.Color { return &p.Warning },
	"info":          func(p *Palette) *lipgloss.Color { return &p.Info },
	"success":       func(p *Palette) *lipgloss.Color { return &p.Success },
	"surface":       func(p *Palette) *lipgloss.Color { return &p.Surface },
	"background":    func(p *Palette) *lipgloss.Color { return &p.Background },
	"on-primary":    func(p *Palette) *lipgloss.Color { return &p.OnPrimary },
	"on-secondary":  func(p *Palette) *lipgloss.Color { return &p.OnSecondary },
	"on-surface":    func(p *Palette) *lipgloss.Color { return &p.OnSurface },
	"on-background": func(p *Palette) *lipgloss.Color { return &p.OnBackground },
}

// Token returns the color for a token name.
func (p Palette) Token(name string) (lipgloss.Color, bool) {
	field, ok := tokenFields[normalizeToken(name)]
	if !ok {
		return "", false
	}
	return *field(&p), true
}

// All returns every token color, ordered like Tokens.
func (p Palette) All() []lipgloss.Color {
	names := Tokens()
	out := make([]lipgloss.Color, 0, len(names))
	for _, name := range names {
		c, _ := p.Token(name)
		out = append(out, c)
	}
	return out
}

// WithOverrides returns a copy of t with the given tokens replaced.
// Keys accept "on-primary" or "on_primary".
func (t Theme) WithOverrides(overrides map[string]string) (Theme, error) {
	out := t
	for key, value := range overrides {
		name := normalizeToken(key)
		field, ok := tokenFields[name]
		if !ok {
			return Theme{}, fmt.Errorf("%w: %q", ErrUnknownToken, key)
		}
		value = strings.TrimSpace(value)
		if !hexColor.MatchString(value) {
			return Theme{}, fmt.Errorf("%w for %s: %q", ErrInvalidColor, name, value)
		}
		*field(&out.Colors) = lipgloss.Color(value)
	}
	return out, nil
}

func normalizeToken(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
}
