// Package styles contains Lip Gloss style definitions.
package styles

// Preset represents a complete color theme.
type Preset struct {
	Name        string
	Description string
	Colors      map[ColorToken]string
}

// Presets contains all built-in theme presets.
var Presets = map[string]Preset{
	"default":          DefaultPreset,
	"catppuccin-mocha": CatppuccinMochaPreset,
	"catppuccin-latte": CatppuccinLattePreset,
	"dracula":          DraculaPreset,
	"nord":             NordPreset,
	"high-contrast":    HighContrastPreset,
}

// DefaultPreset is the quill color scheme, a neutral dark palette.
var DefaultPreset = Preset{
	Name:        "default",
	Description: "Default quill theme",
	Colors: map[ColorToken]string{
		TokenStyleDefault:          "#CCCCCC",
		TokenStyleKeyword:          "#569CD6",
		TokenStyleKeyword2:         "#4EC9B0",
		TokenStyleUser1:            "#C586C0",
		TokenStyleNumber:           "#B5CEA8",
		TokenStyleHex:              "#B5CEA8",
		TokenStyleBit:              "#B5CEA8",
		TokenStyleVariable:         "#9CDCFE",
		TokenStyleIdentifier:       "#CCCCCC",
		TokenStyleQuotedIdentifier: "#D7BA7D",
		TokenStyleComment:          "#6A9955",
		TokenStyleCommentLine:      "#6A9955",
		TokenStyleCommentDoc:       "#608B4E",
		TokenStyleCharacter:        "#CE9178",
		TokenStyleString:           "#CE9178",
		TokenStyleOperator:         "#D4D4D4",

		TokenPropsSection:    "#569CD6",
		TokenPropsKey:        "#9CDCFE",
		TokenPropsAssignment: "#D4D4D4",
		TokenPropsDefVal:     "#B5CEA8",
		TokenPropsComment:    "#6A9955",

		TokenTextPrimary: "#CCCCCC",
		TokenTextMuted:   "#696969",

		TokenGutterLineNumber: "#696969",
		TokenGutterFold:       "#8C8C8C",
		TokenGutterCollapsed:  "#FECA57",

		TokenBorderDefault: "#696969",
		TokenBorderFocus:   "#FFFFFF",

		TokenStatusBarFg: "#BBBBBB",
		TokenStatusBarBg: "#2D3436",

		TokenSearchMatch:   "#FECA57",
		TokenSearchCurrent: "#FF9F43",

		TokenStatusError: "#FF8787",
	},
}

// CatppuccinMochaPreset is the dark Catppuccin variant.
var CatppuccinMochaPreset = Preset{
	Name:        "catppuccin-mocha",
	Description: "Catppuccin Mocha (dark)",
	Colors: map[ColorToken]string{
		TokenStyleDefault:          "#CDD6F4", // text
		TokenStyleKeyword:          "#CBA6F7", // mauve
		TokenStyleKeyword2:         "#94E2D5", // teal
		TokenStyleUser1:            "#F5C2E7", // pink
		TokenStyleNumber:           "#FAB387", // peach
		TokenStyleHex:              "#FAB387",
		TokenStyleBit:              "#FAB387",
		TokenStyleVariable:         "#89B4FA", // blue
		TokenStyleIdentifier:       "#CDD6F4",
		TokenStyleQuotedIdentifier: "#F9E2AF", // yellow
		TokenStyleComment:          "#6C7086", // overlay0
		TokenStyleCommentLine:      "#6C7086",
		TokenStyleCommentDoc:       "#7F849C", // overlay1
		TokenStyleCharacter:        "#A6E3A1", // green
		TokenStyleString:           "#A6E3A1",
		TokenStyleOperator:         "#89DCEB", // sky

		TokenPropsSection:    "#CBA6F7",
		TokenPropsKey:        "#89B4FA",
		TokenPropsAssignment: "#89DCEB",
		TokenPropsDefVal:     "#FAB387",
		TokenPropsComment:    "#6C7086",

		TokenTextPrimary: "#CDD6F4",
		TokenTextMuted:   "#585B70", // surface2

		TokenGutterLineNumber: "#585B70",
		TokenGutterFold:       "#7F849C",
		TokenGutterCollapsed:  "#F9E2AF",

		TokenBorderDefault: "#45475A", // surface1
		TokenBorderFocus:   "#B4BEFE", // lavender

		TokenStatusBarFg: "#BAC2DE", // subtext1
		TokenStatusBarBg: "#313244", // surface0

		TokenSearchMatch:   "#F9E2AF",
		TokenSearchCurrent: "#FAB387",

		TokenStatusError: "#F38BA8", // red
	},
}

// CatppuccinLattePreset is the light Catppuccin variant.
var CatppuccinLattePreset = Preset{
	Name:        "catppuccin-latte",
	Description: "Catppuccin Latte (light)",
	Colors: map[ColorToken]string{
		TokenStyleDefault:          "#4C4F69", // text
		TokenStyleKeyword:          "#8839EF", // mauve
		TokenStyleKeyword2:         "#179299", // teal
		TokenStyleUser1:            "#EA76CB", // pink
		TokenStyleNumber:           "#FE640B", // peach
		TokenStyleHex:              "#FE640B",
		TokenStyleBit:              "#FE640B",
		TokenStyleVariable:         "#1E66F5", // blue
		TokenStyleIdentifier:       "#4C4F69",
		TokenStyleQuotedIdentifier: "#DF8E1D", // yellow
		TokenStyleComment:          "#9CA0B0", // overlay0
		TokenStyleCommentLine:      "#9CA0B0",
		TokenStyleCommentDoc:       "#8C8FA1", // overlay1
		TokenStyleCharacter:        "#40A02B", // green
		TokenStyleString:           "#40A02B",
		TokenStyleOperator:         "#04A5E5", // sky

		TokenPropsSection:    "#8839EF",
		TokenPropsKey:        "#1E66F5",
		TokenPropsAssignment: "#04A5E5",
		TokenPropsDefVal:     "#FE640B",
		TokenPropsComment:    "#9CA0B0",

		TokenTextPrimary: "#4C4F69",
		TokenTextMuted:   "#ACB0BE", // surface2

		TokenGutterLineNumber: "#ACB0BE",
		TokenGutterFold:       "#8C8FA1",
		TokenGutterCollapsed:  "#DF8E1D",

		TokenBorderDefault: "#BCC0CC", // surface1
		TokenBorderFocus:   "#7287FD", // lavender

		TokenStatusBarFg: "#5C5F77", // subtext1
		TokenStatusBarBg: "#CCD0DA", // surface0

		TokenSearchMatch:   "#DF8E1D",
		TokenSearchCurrent: "#FE640B",

		TokenStatusError: "#D20F39", // red
	},
}

// DraculaPreset is the classic Dracula palette.
var DraculaPreset = Preset{
	Name:        "dracula",
	Description: "Dracula (dark)",
	Colors: map[ColorToken]string{
		TokenStyleDefault:          "#F8F8F2", // foreground
		TokenStyleKeyword:          "#FF79C6", // pink
		TokenStyleKeyword2:         "#8BE9FD", // cyan
		TokenStyleUser1:            "#BD93F9", // purple
		TokenStyleNumber:           "#BD93F9",
		TokenStyleHex:              "#BD93F9",
		TokenStyleBit:              "#BD93F9",
		TokenStyleVariable:         "#50FA7B", // green
		TokenStyleIdentifier:       "#F8F8F2",
		TokenStyleQuotedIdentifier: "#FFB86C", // orange
		TokenStyleComment:          "#6272A4", // comment
		TokenStyleCommentLine:      "#6272A4",
		TokenStyleCommentDoc:       "#6272A4",
		TokenStyleCharacter:        "#F1FA8C", // yellow
		TokenStyleString:           "#F1FA8C",
		TokenStyleOperator:         "#FF79C6",

		TokenPropsSection:    "#FF79C6",
		TokenPropsKey:        "#50FA7B",
		TokenPropsAssignment: "#FF79C6",
		TokenPropsDefVal:     "#BD93F9",
		TokenPropsComment:    "#6272A4",

		TokenTextPrimary: "#F8F8F2",
		TokenTextMuted:   "#6272A4",

		TokenGutterLineNumber: "#6272A4",
		TokenGutterFold:       "#BD93F9",
		TokenGutterCollapsed:  "#FFB86C",

		TokenBorderDefault: "#44475A", // current line
		TokenBorderFocus:   "#F8F8F2",

		TokenStatusBarFg: "#F8F8F2",
		TokenStatusBarBg: "#44475A",

		TokenSearchMatch:   "#F1FA8C",
		TokenSearchCurrent: "#FFB86C",

		TokenStatusError: "#FF5555", // red
	},
}

// NordPreset is the arctic Nord palette.
var NordPreset = Preset{
	Name:        "nord",
	Description: "Nord (dark)",
	Colors: map[ColorToken]string{
		TokenStyleDefault:          "#D8DEE9", // nord4
		TokenStyleKeyword:          "#81A1C1", // nord9
		TokenStyleKeyword2:         "#88C0D0", // nord8
		TokenStyleUser1:            "#B48EAD", // nord15
		TokenStyleNumber:           "#B48EAD",
		TokenStyleHex:              "#B48EAD",
		TokenStyleBit:              "#B48EAD",
		TokenStyleVariable:         "#8FBCBB", // nord7
		TokenStyleIdentifier:       "#D8DEE9",
		TokenStyleQuotedIdentifier: "#EBCB8B", // nord13
		TokenStyleComment:          "#616E88",
		TokenStyleCommentLine:      "#616E88",
		TokenStyleCommentDoc:       "#616E88",
		TokenStyleCharacter:        "#A3BE8C", // nord14
		TokenStyleString:           "#A3BE8C",
		TokenStyleOperator:         "#81A1C1",

		TokenPropsSection:    "#81A1C1",
		TokenPropsKey:        "#8FBCBB",
		TokenPropsAssignment: "#81A1C1",
		TokenPropsDefVal:     "#B48EAD",
		TokenPropsComment:    "#616E88",

		TokenTextPrimary: "#D8DEE9",
		TokenTextMuted:   "#4C566A", // nord3

		TokenGutterLineNumber: "#4C566A",
		TokenGutterFold:       "#616E88",
		TokenGutterCollapsed:  "#EBCB8B",

		TokenBorderDefault: "#3B4252", // nord1
		TokenBorderFocus:   "#ECEFF4", // nord6

		TokenStatusBarFg: "#E5E9F0", // nord5
		TokenStatusBarBg: "#3B4252",

		TokenSearchMatch:   "#EBCB8B",
		TokenSearchCurrent: "#D08770", // nord12

		TokenStatusError: "#BF616A", // nord11
	},
}

// HighContrastPreset uses pure colors for maximum legibility.
var HighContrastPreset = Preset{
	Name:        "high-contrast",
	Description: "High contrast",
	Colors: map[ColorToken]string{
		TokenStyleDefault:          "#FFFFFF",
		TokenStyleKeyword:          "#00FFFF",
		TokenStyleKeyword2:         "#00FF00",
		TokenStyleUser1:            "#FF00FF",
		TokenStyleNumber:           "#FFFF00",
		TokenStyleHex:              "#FFFF00",
		TokenStyleBit:              "#FFFF00",
		TokenStyleVariable:         "#00FFFF",
		TokenStyleIdentifier:       "#FFFFFF",
		TokenStyleQuotedIdentifier: "#FFFF00",
		TokenStyleComment:          "#C0C0C0",
		TokenStyleCommentLine:      "#C0C0C0",
		TokenStyleCommentDoc:       "#C0C0C0",
		TokenStyleCharacter:        "#00FF00",
		TokenStyleString:           "#00FF00",
		TokenStyleOperator:         "#FFFFFF",

		TokenPropsSection:    "#00FFFF",
		TokenPropsKey:        "#FFFFFF",
		TokenPropsAssignment: "#FFFF00",
		TokenPropsDefVal:     "#00FF00",
		TokenPropsComment:    "#C0C0C0",

		TokenTextPrimary: "#FFFFFF",
		TokenTextMuted:   "#C0C0C0",

		TokenGutterLineNumber: "#C0C0C0",
		TokenGutterFold:       "#FFFFFF",
		TokenGutterCollapsed:  "#FFFF00",

		TokenBorderDefault: "#FFFFFF",
		TokenBorderFocus:   "#FFFF00",

		TokenStatusBarFg: "#000000",
		TokenStatusBarBg: "#FFFFFF",

		TokenSearchMatch:   "#FFFF00",
		TokenSearchCurrent: "#FF00FF",

		TokenStatusError: "#FF0000",
	},
}
