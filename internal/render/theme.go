package render

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Theme is the rendering configuration injected into a Renderer.
type Theme struct {
	Border       string `yaml:"border"`
	HeaderColor  string `yaml:"header_color"`
	BorderColor  string `yaml:"border_color"`
	SuccessColor string `yaml:"success_color"`
	ErrorColor   string `yaml:"error_color"`
	MutedColor   string `yaml:"muted_color"`
	ShowID       bool   `yaml:"show_id"`
}

func DefaultTheme() Theme {
	return Theme{
		Border:       "rounded",
		HeaderColor:  "#2196F3",
		BorderColor:  "#5f6b7a",
		SuccessColor: "#8BC34A",
		ErrorColor:   "#e53935",
		MutedColor:   "#9aa4b2",
		ShowID:       true,
	}
}

// LoadTheme overlays the YAML file at path on DefaultTheme. An empty path
// returns the default.
func LoadTheme(path string) (Theme, error) {
	theme := DefaultTheme()
	if strings.TrimSpace(path) == "" {
		return theme, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("read theme %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &theme); err != nil {
		return Theme{}, fmt.Errorf("parse theme %s: %w", path, err)
	}
	if _, ok := borders[theme.Border]; !ok {
		return Theme{}, fmt.Errorf("unknown border %q", theme.Border)
	}
	return theme, nil
}

var borders = map[string]lipgloss.Border{
	"normal":  lipgloss.NormalBorder(),
	"rounded": lipgloss.RoundedBorder(),
	"thick":   lipgloss.ThickBorder(),
	"double":  lipgloss.DoubleBorder(),
	"hidden":  lipgloss.HiddenBorder(),
}

func (t Theme) border() lipgloss.Border {
	if b, ok := borders[t.Border]; ok {
		return b
	}
	return lipgloss.RoundedBorder()
}
