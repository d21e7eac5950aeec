package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/medaskca/tom/internal/model"
)

// Palette used by every presenter. ApplySkin replaces it.
var (
	ColorNavy   = lipgloss.Color("#1E3A5F")
	ColorBlue   = lipgloss.Color("#3B82F6")
	ColorCyan   = lipgloss.Color("#06B6D4")
	ColorTeal   = lipgloss.Color("#0D9488")
	ColorWhite  = lipgloss.Color("#FFFFFF")
	ColorGray   = lipgloss.Color("#6B7280")
	ColorRed    = lipgloss.Color("#DC2626")
	ColorOrange = lipgloss.Color("#F59E0B")
	ColorGreen  = lipgloss.Color("#16A34A")
)

// Skin is a named palette. Empty fields keep the built-in colour.
type Skin struct {
	Name    string `yaml:"name"`
	Navy    string `yaml:"navy"`
	Primary string `yaml:"primary"`
	Accent  string `yaml:"accent"`
	Banner  string `yaml:"banner"`
	Text    string `yaml:"text"`
	Muted   string `yaml:"muted"`
	Danger  string `yaml:"danger"`
	Warning string `yaml:"warning"`
	Success string `yaml:"success"`
}

var builtinSkins = map[string]Skin{
	"default": {
		Name:    "default",
		Navy:    "#1E3A5F",
		Primary: "#3B82F6",
		Accent:  "#06B6D4",
		Banner:  "#0D9488",
		Text:    "#FFFFFF",
		Muted:   "#6B7280",
		Danger:  "#DC2626",
		Warning: "#F59E0B",
		Success: "#16A34A",
	},
	"high-contrast": {
		Name:    "high-contrast",
		Navy:    "0",
		Primary: "12",
		Accent:  "14",
		Banner:  "4",
		Text:    "15",
		Muted:   "250",
		Danger:  "9",
		Warning: "11",
		Success: "10",
	},
}

// SkinNames lists the built-in skins.
func SkinNames() []string {
	return []string{"default", "high-contrast"}
}

// LoadSkin resolves a skin by built-in name or from <dir>/<name>.yml.
func LoadSkin(name, dir string) (Skin, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = model.DefaultSkin
	}
	if s, ok := builtinSkins[name]; ok {
		return s, nil
	}
	path := filepath.Join(dir, name+".yml")
	data, err := os.ReadFile(path)
	if err != nil {
		return Skin{}, fmt.Errorf("read skin %q: %w", name, err)
	}
	s, err := ParseSkin(data)
	if err != nil {
		return Skin{}, err
	}
	if s.Name == "" {
		s.Name = name
	}
	return s, nil
}

// ParseSkin decodes a YAML skin file.
func ParseSkin(data []byte) (Skin, error) {
	var s Skin
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Skin{}, fmt.Errorf("parse skin: %w", err)
	}
	return s, nil
}

// ApplySkin installs s over the current palette.
func ApplySkin(s Skin) {
	set := func(dst *lipgloss.Color, v string) {
		if v = strings.TrimSpace(v); v != "" {
			*dst = lipgloss.Color(v)
		}
	}
	set(&ColorNavy, s.Navy)
	set(&ColorBlue, s.Primary)
	set(&ColorCyan, s.Accent)
	set(&ColorTeal, s.Banner)
	set(&ColorWhite, s.Text)
	set(&ColorGray, s.Muted)
	set(&ColorRed, s.Danger)
	set(&ColorOrange, s.Warning)
	set(&ColorGreen, s.Success)
}
