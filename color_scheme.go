package ask

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ColorScheme defines the colors used when composing a frame.
type ColorScheme struct {
	Name     string `yaml:"name"`
	Question Color  `yaml:"question"`
	Hint     Color  `yaml:"hint"`
	Filter   Color  `yaml:"filter"`
	Choice   Color  `yaml:"choice"`
	Selected Color  `yaml:"selected"`
}

// Color represents an RGB color with optional bold formatting.
type Color struct {
	R    uint8 `yaml:"r"`
	G    uint8 `yaml:"g"`
	B    uint8 `yaml:"b"`
	Bold bool  `yaml:"bold"`
}

// ThemeDefault is the default scheme: white question text, muted hints and
// a cyan selection marker.
var ThemeDefault = &ColorScheme{
	Name:     "default",
	Question: Color{R: 255, G: 255, B: 255, Bold: true},
	Hint:     Color{R: 128, G: 128, B: 128},
	Filter:   Color{R: 255, G: 255, B: 0},
	Choice:   Color{R: 200, G: 200, B: 200},
	Selected: Color{R: 0, G: 255, B: 255, Bold: true},
}

// ThemeDark is a Dracula-flavored dark scheme.
var ThemeDark = &ColorScheme{
	Name:     "dark",
	Question: Color{R: 248, G: 248, B: 242, Bold: true},
	Hint:     Color{R: 98, G: 114, B: 164},
	Filter:   Color{R: 241, G: 250, B: 140},
	Choice:   Color{R: 189, G: 147, B: 249},
	Selected: Color{R: 80, G: 250, B: 123, Bold: true},
}

// ThemeLight is a light-background scheme with dark text.
var ThemeLight = &ColorScheme{
	Name:     "light",
	Question: Color{R: 36, G: 41, B: 46, Bold: true},
	Hint:     Color{R: 149, G: 157, B: 165},
	Filter:   Color{R: 215, G: 58, B: 73},
	Choice:   Color{R: 88, G: 96, B: 105},
	Selected: Color{R: 40, G: 167, B: 69, Bold: true},
}

// LoadColorScheme reads a color scheme from a YAML file.
//
// Example scheme file:
//
//	name: custom
//	question: {r: 255, g: 255, b: 255, bold: true}
//	hint: {r: 128, g: 128, b: 128}
//	filter: {r: 255, g: 255, b: 0}
//	choice: {r: 200, g: 200, b: 200}
//	selected: {r: 0, g: 255, b: 255, bold: true}
func LoadColorScheme(path string) (*ColorScheme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read color scheme: %w", err)
	}
	var scheme ColorScheme
	if err := yaml.Unmarshal(data, &scheme); err != nil {
		return nil, fmt.Errorf("failed to parse color scheme: %w", err)
	}
	return &scheme, nil
}

// ToANSI converts a Color to an ANSI escape sequence.
func (c Color) ToANSI() string {
	var codes []string
	if c.Bold {
		codes = append(codes, "1")
	}
	codes = append(codes, fmt.Sprintf("38;2;%d;%d;%d", c.R, c.G, c.B))
	return fmt.Sprintf("\x1b[%sm", strings.Join(codes, ";"))
}

// Reset returns the ANSI reset sequence.
func Reset() string {
	return "\x1b[0m"
}
