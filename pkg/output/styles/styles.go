// Package styles defines the visual styling for tplgen's terminal output.
//
// Styles have semantic names and adaptive colors that adjust to light and
// dark terminal themes. They are read from the embedded styles.yaml and can
// be replaced at runtime with LoadStyles.
package styles

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Theme is the YAML document: a palette and the styles that refer to it by name.
type Theme struct {
	Colors map[string]Color `yaml:"colors"`
	Styles map[string]Spec  `yaml:"styles"`

	built map[string]lipgloss.Style
}

// Color is an adaptive color, picked by terminal background.
type Color struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// Spec describes one named style. Foreground and Background name a palette entry.
type Spec struct {
	Bold         bool   `yaml:"bold,omitempty"`
	Italic       bool   `yaml:"italic,omitempty"`
	Underline    bool   `yaml:"underline,omitempty"`
	Foreground   string `yaml:"foreground,omitempty"`
	Background   string `yaml:"background,omitempty"`
	MarginTop    int    `yaml:"marginTop,omitempty"`
	MarginBottom int    `yaml:"marginBottom,omitempty"`
	PaddingLeft  int    `yaml:"paddingLeft,omitempty"`
}

//go:embed styles.yaml
var embeddedStyles []byte

var current = &Theme{built: map[string]lipgloss.Style{}}

func init() {
	if theme, err := ParseTheme(embeddedStyles); err == nil {
		current = theme
	}
}

// ParseTheme decodes YAML and builds every style in it. Unknown color
// references leave the attribute unset.
func ParseTheme(data []byte) (*Theme, error) {
	theme := &Theme{}
	if err := yaml.Unmarshal(data, theme); err != nil {
		return nil, fmt.Errorf("failed to parse styles data: %w", err)
	}

	theme.built = make(map[string]lipgloss.Style, len(theme.Styles))
	for name, spec := range theme.Styles {
		theme.built[name] = theme.build(spec)
	}
	return theme, nil
}

func (t *Theme) color(name string) (lipgloss.AdaptiveColor, bool) {
	if name == "" {
		return lipgloss.AdaptiveColor{}, false
	}
	c, ok := t.Colors[name]
	return lipgloss.AdaptiveColor{Light: c.Light, Dark: c.Dark}, ok
}

func (t *Theme) build(spec Spec) lipgloss.Style {
	style := lipgloss.NewStyle().
		Bold(spec.Bold).
		Italic(spec.Italic).
		Underline(spec.Underline)

	if fg, ok := t.color(spec.Foreground); ok {
		style = style.Foreground(fg)
	}
	if bg, ok := t.color(spec.Background); ok {
		style = style.Background(bg)
	}
	if spec.MarginTop > 0 {
		style = style.MarginTop(spec.MarginTop)
	}
	if spec.MarginBottom > 0 {
		style = style.MarginBottom(spec.MarginBottom)
	}
	if spec.PaddingLeft > 0 {
		style = style.PaddingLeft(spec.PaddingLeft)
	}
	return style
}

// Style returns the named style, or a plain one.
func (t *Theme) Style(name string) lipgloss.Style {
	if style, ok := t.built[name]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// Names lists the defined style names in order.
func (t *Theme) Names() []string {
	names := make([]string, 0, len(t.built))
	for name := range t.built {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadStyles replaces the active theme with the one in a YAML file.
func LoadStyles(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read styles file %s: %w", path, err)
	}
	return LoadStylesFromData(data)
}

// LoadStylesFromData replaces the active theme. On error the active theme is kept.
func LoadStylesFromData(data []byte) error {
	theme, err := ParseTheme(data)
	if err != nil {
		return err
	}
	current = theme
	return nil
}

// Current returns the active theme.
func Current() *Theme {
	return current
}

// GetStyle returns the named style from the active theme.
func GetStyle(name string) lipgloss.Style {
	return current.Style(name)
}

// Render applies the named style to text.
func Render(name, text string) string {
	return current.Style(name).Render(text)
}
