// Package theme provides color theming for lexfmt CLI output.
package theme

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color palette the CLI renders with.
type Theme struct {
	NodeType      lipgloss.Color // AST node type names in tree output
	Label         lipgloss.Color // node labels and text excerpts
	Attribute     lipgloss.Color // attribute key=value pairs
	Branch        lipgloss.Color // tree branch glyphs
	Muted         lipgloss.Color // dim/subtle text (ranges, counts)
	GradientStart lipgloss.Color // tree depth gradient start
	GradientEnd   lipgloss.Color // tree depth gradient end
}

var defaultTheme = &Theme{
	NodeType:      lipgloss.Color("99"),  // Purple/violet
	Label:         lipgloss.Color("252"), // Near-white
	Attribute:     lipgloss.Color("108"), // Soft green
	Branch:        lipgloss.Color("240"), // Dim gray
	Muted:         lipgloss.Color("240"), // Dim gray
	GradientStart: lipgloss.Color("99"),  // Purple
	GradientEnd:   lipgloss.Color("205"), // Pink
}

var darkTheme = &Theme{
	NodeType:      lipgloss.Color("141"), // Bright purple
	Label:         lipgloss.Color("255"), // White
	Attribute:     lipgloss.Color("114"), // Bright green
	Branch:        lipgloss.Color("238"), // Dark gray
	Muted:         lipgloss.Color("243"), // Medium gray
	GradientStart: lipgloss.Color("141"), // Bright purple
	GradientEnd:   lipgloss.Color("213"), // Bright pink
}

var lightTheme = &Theme{
	NodeType:      lipgloss.Color("55"),  // Dark purple
	Label:         lipgloss.Color("16"),  // Black
	Attribute:     lipgloss.Color("28"),  // Dark green
	Branch:        lipgloss.Color("250"), // Light gray
	Muted:         lipgloss.Color("246"), // Light gray
	GradientStart: lipgloss.Color("55"),  // Dark purple
	GradientEnd:   lipgloss.Color("125"), // Dark pink
}

var solarizedTheme = &Theme{
	NodeType:      lipgloss.Color("33"),  // Blue
	Label:         lipgloss.Color("230"), // Base3
	Attribute:     lipgloss.Color("64"),  // Green
	Branch:        lipgloss.Color("240"), // Base01
	Muted:         lipgloss.Color("240"), // Base01
	GradientStart: lipgloss.Color("33"),  // Blue
	GradientEnd:   lipgloss.Color("125"), // Magenta
}

var monokaiTheme = &Theme{
	NodeType:      lipgloss.Color("141"), // Purple
	Label:         lipgloss.Color("231"), // White
	Attribute:     lipgloss.Color("148"), // Green
	Branch:        lipgloss.Color("237"), // Dark gray
	Muted:         lipgloss.Color("243"), // Gray
	GradientStart: lipgloss.Color("141"), // Purple
	GradientEnd:   lipgloss.Color("197"), // Pink
}

// themes is the registry of all available themes
var themes = map[string]*Theme{
	"default":   defaultTheme,
	"dark":      darkTheme,
	"light":     lightTheme,
	"solarized": solarizedTheme,
	"monokai":   monokaiTheme,
}

// current holds the currently active theme
var current *Theme

// Get returns the theme with the given name.
// Returns an error if the theme does not exist.
func Get(name string) (*Theme, error) {
	theme, ok := themes[name]
	if !ok {
		return nil, fmt.Errorf("theme not found: %s", name)
	}

	return theme, nil
}

// Load loads the theme with the given name as the current theme.
// Returns an error if the theme does not exist.
func Load(name string) error {
	theme, err := Get(name)
	if err != nil {
		return err
	}
	current = theme

	return nil
}

// Current returns the currently active theme.
// If no theme has been loaded, returns the default theme.
func Current() *Theme {
	if current == nil {
		return defaultTheme
	}

	return current
}

// Available returns a sorted list of all available theme names.
func Available() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
