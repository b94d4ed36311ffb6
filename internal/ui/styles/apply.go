// Package styles contains Lip Gloss style definitions.
package styles

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// styleRebuilders holds callbacks to rebuild styles in other packages.
// This avoids import cycles (styles can't import ui, but ui can register).
var styleRebuilders []func()

// RegisterStyleRebuilder adds a callback that will be called after ApplyTheme
// updates colors. Use this to rebuild styles in packages that depend on styles.
func RegisterStyleRebuilder(fn func()) {
	styleRebuilders = append(styleRebuilders, fn)
}

// ThemeConfig mirrors config.ThemeConfig to avoid circular imports.
type ThemeConfig struct {
	Preset string
	Mode   string
	Colors map[string]string
}

// ApplyTheme applies a complete theme configuration.
// Order of application:
// 1. Force light/dark mode (if specified)
// 2. Start with default colors
// 3. Apply preset (if specified)
// 4. Apply individual color overrides
// 5. Rebuild all Style objects
func ApplyTheme(cfg ThemeConfig) error {
	// Step 1: Force the background mode, or leave terminal detection alone
	switch cfg.Mode {
	case "":
	case "dark":
		lipgloss.SetHasDarkBackground(true)
	case "light":
		lipgloss.SetHasDarkBackground(false)
	default:
		return fmt.Errorf("unknown theme mode: %s", cfg.Mode)
	}

	// Step 2: Start with default preset
	colors := maps.Clone(DefaultPreset.Colors)

	// Step 3: Apply preset if specified
	if cfg.Preset != "" && cfg.Preset != "default" {
		preset, ok := Presets[cfg.Preset]
		if !ok {
			return fmt.Errorf("unknown theme preset: %s", cfg.Preset)
		}
		maps.Copy(colors, preset.Colors)
	}

	// Step 4: Apply individual color overrides
	for key, value := range cfg.Colors {
		token := ColorToken(key)
		if !isValidToken(token) {
			return fmt.Errorf("unknown color token: %s", key)
		}
		if !isValidHexColor(value) {
			return fmt.Errorf("invalid hex color for %s: %s", key, value)
		}
		colors[token] = value
	}

	// Step 5: Apply colors to variables and rebuild Style objects
	applyColors(colors)
	rebuildStyles()

	return nil
}

func applyColors(colors map[ColorToken]string) {
	// Helper to create adaptive color (uses same color for both modes)
	makeColor := func(hex string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: hex, Dark: hex}
	}

	// SQL syntax
	if c, ok := colors[TokenStyleDefault]; ok {
		StyleDefaultColor = makeColor(c)
	}
	if c, ok := colors[TokenStyleKeyword]; ok {
		StyleKeywordColor = makeColor(c)
	}
	if c, ok := colors[TokenStyleKeyword2]; ok {
		StyleKeyword2Color = makeColor(c)
	}
	if c, ok := colors[TokenStyleUser1]; ok {
		StyleUser1Color = makeColor(c)
	}
	if c, ok := colors[TokenStyleNumber]; ok {
		StyleNumberColor = makeColor(c)
	}
	if c, ok := colors[TokenStyleHex]; ok {
		StyleHexColor = makeColor(c)
	}
	if c, ok := colors[TokenStyleBit]; ok {
		StyleBitColor = makeColor(c)
	}
	if c, ok := colors[TokenStyleVariable]; ok {
		StyleVariableColor = makeColor(c)
	}
	if c, ok := colors[TokenStyleIdentifier]; ok {
		StyleIdentifierColor = makeColor(c)
	}
	if c, ok := colors[TokenStyleQuotedIdentifier]; ok {
		StyleQuotedIdentifierColor = makeColor(c)
	}
	if c, ok := colors[TokenStyleComment]; ok {
		StyleCommentColor = makeColor(c)
	}
	if c, ok := colors[TokenStyleCommentLine]; ok {
		StyleCommentLineColor = makeColor(c)
	}
	if c, ok := colors[TokenStyleCommentDoc]; ok {
		StyleCommentDocColor = makeColor(c)
	}
	if c, ok := colors[TokenStyleCharacter]; ok {
		StyleCharacterColor = makeColor(c)
	}
	if c, ok := colors[TokenStyleString]; ok {
		StyleStringColor = makeColor(c)
	}
	if c, ok := colors[TokenStyleOperator]; ok {
		StyleOperatorColor = makeColor(c)
	}

	// Properties syntax
	if c, ok := colors[TokenPropsSection]; ok {
		PropsSectionColor = makeColor(c)
	}
	if c, ok := colors[TokenPropsKey]; ok {
		PropsKeyColor = makeColor(c)
	}
	if c, ok := colors[TokenPropsAssignment]; ok {
		PropsAssignmentColor = makeColor(c)
	}
	if c, ok := colors[TokenPropsDefVal]; ok {
		PropsDefValColor = makeColor(c)
	}
	if c, ok := colors[TokenPropsComment]; ok {
		PropsCommentColor = makeColor(c)
	}

	// Text hierarchy
	if c, ok := colors[TokenTextPrimary]; ok {
		TextPrimaryColor = makeColor(c)
	}
	if c, ok := colors[TokenTextMuted]; ok {
		TextMutedColor = makeColor(c)
	}

	// Gutter
	if c, ok := colors[TokenGutterLineNumber]; ok {
		GutterLineNumberColor = makeColor(c)
	}
	if c, ok := colors[TokenGutterFold]; ok {
		GutterFoldColor = makeColor(c)
	}
	if c, ok := colors[TokenGutterCollapsed]; ok {
		GutterCollapsedColor = makeColor(c)
	}

	// Borders
	if c, ok := colors[TokenBorderDefault]; ok {
		BorderDefaultColor = makeColor(c)
	}
	if c, ok := colors[TokenBorderFocus]; ok {
		BorderFocusColor = makeColor(c)
	}

	// Status bar
	if c, ok := colors[TokenStatusBarFg]; ok {
		StatusBarFgColor = makeColor(c)
	}
	if c, ok := colors[TokenStatusBarBg]; ok {
		StatusBarBgColor = makeColor(c)
	}

	// Search
	if c, ok := colors[TokenSearchMatch]; ok {
		SearchMatchColor = makeColor(c)
	}
	if c, ok := colors[TokenSearchCurrent]; ok {
		SearchCurrentColor = makeColor(c)
	}

	// Status indicators
	if c, ok := colors[TokenStatusError]; ok {
		StatusErrorColor = makeColor(c)
	}
}

// rebuildStyles recreates all Style objects with updated colors.
// This is necessary because lipgloss.Style objects capture colors at creation time.
func rebuildStyles() {
	// Gutter
	LineNumberStyle = lipgloss.NewStyle().Foreground(GutterLineNumberColor)
	FoldMarkerStyle = lipgloss.NewStyle().Foreground(GutterFoldColor)
	CollapsedStyle = lipgloss.NewStyle().Foreground(GutterCollapsedColor).Bold(true)

	// Status bar
	StatusBarStyle = lipgloss.NewStyle().
		Foreground(StatusBarFgColor).
		Background(StatusBarBgColor).
		Padding(0, 1)

	// Search highlights
	SearchMatchStyle = lipgloss.NewStyle().Background(SearchMatchColor)
	SearchCurrentStyle = lipgloss.NewStyle().Background(SearchCurrentColor).Bold(true)

	// Error display
	ErrorStyle = lipgloss.NewStyle().
		Foreground(StatusErrorColor).
		Bold(true).
		Padding(1, 2)

	// Borders
	BorderDefaultStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderDefaultColor)

	BorderFocusStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderFocusColor)

	// Text
	TextPrimaryStyle = lipgloss.NewStyle().Foreground(TextPrimaryColor)
	TextMutedStyle = lipgloss.NewStyle().Foreground(TextMutedColor)

	// Syntax lookup tables
	rebuildSyntaxStyles()

	// Call registered rebuilders (e.g., ui.RebuildStyles)
	for _, fn := range styleRebuilders {
		fn()
	}
}

func isValidToken(token ColorToken) bool {
	return slices.Contains(AllTokens(), token)
}

func isValidHexColor(s string) bool {
	if !strings.HasPrefix(s, "#") {
		return false
	}
	hex := s[1:]
	if len(hex) != 3 && len(hex) != 6 {
		return false
	}
	_, err := strconv.ParseUint(hex, 16, 64)
	return err == nil
}
