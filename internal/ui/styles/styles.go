// Package styles contains Lip Gloss style definitions.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/quill/internal/lexer"
)

var (
	// SQL syntax colors
	StyleDefaultColor          = lipgloss.AdaptiveColor{Light: "#4C4F69", Dark: "#CCCCCC"}
	StyleKeywordColor          = lipgloss.AdaptiveColor{Light: "#1E66F5", Dark: "#569CD6"}
	StyleKeyword2Color         = lipgloss.AdaptiveColor{Light: "#179299", Dark: "#4EC9B0"}
	StyleUser1Color            = lipgloss.AdaptiveColor{Light: "#8839EF", Dark: "#C586C0"}
	StyleNumberColor           = lipgloss.AdaptiveColor{Light: "#FE640B", Dark: "#B5CEA8"}
	StyleHexColor              = lipgloss.AdaptiveColor{Light: "#FE640B", Dark: "#B5CEA8"}
	StyleBitColor              = lipgloss.AdaptiveColor{Light: "#FE640B", Dark: "#B5CEA8"}
	StyleVariableColor         = lipgloss.AdaptiveColor{Light: "#D20F39", Dark: "#9CDCFE"}
	StyleIdentifierColor       = lipgloss.AdaptiveColor{Light: "#4C4F69", Dark: "#CCCCCC"}
	StyleQuotedIdentifierColor = lipgloss.AdaptiveColor{Light: "#179299", Dark: "#CE9178"}
	StyleCommentColor          = lipgloss.AdaptiveColor{Light: "#9CA0B0", Dark: "#6A9955"}
	StyleCommentLineColor      = lipgloss.AdaptiveColor{Light: "#9CA0B0", Dark: "#6A9955"}
	StyleCommentDocColor       = lipgloss.AdaptiveColor{Light: "#9CA0B0", Dark: "#608B4E"}
	StyleCharacterColor        = lipgloss.AdaptiveColor{Light: "#40A02B", Dark: "#CE9178"}
	StyleStringColor           = lipgloss.AdaptiveColor{Light: "#40A02B", Dark: "#CE9178"}
	StyleOperatorColor         = lipgloss.AdaptiveColor{Light: "#4C4F69", Dark: "#D4D4D4"}

	// Properties syntax colors
	PropsSectionColor    = lipgloss.AdaptiveColor{Light: "#1E66F5", Dark: "#569CD6"}
	PropsKeyColor        = lipgloss.AdaptiveColor{Light: "#179299", Dark: "#9CDCFE"}
	PropsAssignmentColor = lipgloss.AdaptiveColor{Light: "#4C4F69", Dark: "#D4D4D4"}
	PropsDefValColor     = lipgloss.AdaptiveColor{Light: "#FE640B", Dark: "#B5CEA8"}
	PropsCommentColor    = lipgloss.AdaptiveColor{Light: "#9CA0B0", Dark: "#6A9955"}

	// Text hierarchy
	TextPrimaryColor = lipgloss.AdaptiveColor{Light: "#4C4F69", Dark: "#CCCCCC"}
	TextMutedColor   = lipgloss.AdaptiveColor{Light: "#9CA0B0", Dark: "#696969"}

	// Gutter colors
	GutterLineNumberColor = lipgloss.AdaptiveColor{Light: "#9CA0B0", Dark: "#858585"}
	GutterFoldColor       = lipgloss.AdaptiveColor{Light: "#9CA0B0", Dark: "#858585"}
	GutterCollapsedColor  = lipgloss.AdaptiveColor{Light: "#DF8E1D", Dark: "#D7BA7D"}

	// Border colors
	BorderDefaultColor = lipgloss.AdaptiveColor{Light: "#9CA0B0", Dark: "#696969"}
	BorderFocusColor   = lipgloss.AdaptiveColor{Light: "#1E66F5", Dark: "#569CD6"}

	// Status bar colors
	StatusBarFgColor = lipgloss.AdaptiveColor{Light: "#4C4F69", Dark: "#CCCCCC"}
	StatusBarBgColor = lipgloss.AdaptiveColor{Light: "#E6E9EF", Dark: "#333333"}

	// Search colors
	SearchMatchColor   = lipgloss.AdaptiveColor{Light: "#DF8E1D", Dark: "#613214"}
	SearchCurrentColor = lipgloss.AdaptiveColor{Light: "#FE640B", Dark: "#9E6A03"}

	// Status indicator colors
	StatusErrorColor = lipgloss.AdaptiveColor{Light: "#D20F39", Dark: "#FF8787"}

	// Gutter styles
	LineNumberStyle = lipgloss.NewStyle().Foreground(GutterLineNumberColor)
	FoldMarkerStyle = lipgloss.NewStyle().Foreground(GutterFoldColor)
	CollapsedStyle  = lipgloss.NewStyle().Foreground(GutterCollapsedColor).Bold(true)

	// Status bar
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(StatusBarFgColor).
			Background(StatusBarBgColor).
			Padding(0, 1)

	// Search highlight styles render as background washes so the syntax
	// foreground stays readable underneath.
	SearchMatchStyle   = lipgloss.NewStyle().Background(SearchMatchColor)
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

	// Text styles
	TextPrimaryStyle = lipgloss.NewStyle().Foreground(TextPrimaryColor)
	TextMutedStyle   = lipgloss.NewStyle().Foreground(TextMutedColor)
)

// sqlStyles maps lexer SQL style ids to render styles. Rebuilt by ApplyTheme.
var sqlStyles map[int]lipgloss.Style

// propsStyles maps lexer properties style ids to render styles.
var propsStyles map[int]lipgloss.Style

func init() {
	rebuildSyntaxStyles()
}

func rebuildSyntaxStyles() {
	keyword := lipgloss.NewStyle().Foreground(StyleKeywordColor).Bold(true)
	comment := lipgloss.NewStyle().Foreground(StyleCommentColor).Italic(true)

	sqlStyles = map[int]lipgloss.Style{
		lexer.StyleDefault:          lipgloss.NewStyle().Foreground(StyleDefaultColor),
		lexer.StyleComment:          comment,
		lexer.StyleCommentLine:      lipgloss.NewStyle().Foreground(StyleCommentLineColor).Italic(true),
		lexer.StyleCommentLineDoc:   lipgloss.NewStyle().Foreground(StyleCommentDocColor).Italic(true),
		lexer.StyleNumber:           lipgloss.NewStyle().Foreground(StyleNumberColor),
		lexer.StyleWord:             keyword,
		lexer.StyleWord2:            lipgloss.NewStyle().Foreground(StyleKeyword2Color),
		lexer.StyleUser1:            lipgloss.NewStyle().Foreground(StyleUser1Color),
		lexer.StyleString:           lipgloss.NewStyle().Foreground(StyleStringColor),
		lexer.StyleCharacter:        lipgloss.NewStyle().Foreground(StyleCharacterColor),
		lexer.StyleOperator:         lipgloss.NewStyle().Foreground(StyleOperatorColor),
		lexer.StyleIdentifier:       lipgloss.NewStyle().Foreground(StyleIdentifierColor),
		lexer.StyleQuotedIdentifier: lipgloss.NewStyle().Foreground(StyleQuotedIdentifierColor),
		lexer.StyleVariable:         lipgloss.NewStyle().Foreground(StyleVariableColor),
		lexer.StyleHex:              lipgloss.NewStyle().Foreground(StyleHexColor),
		lexer.StyleHex2:             lipgloss.NewStyle().Foreground(StyleHexColor),
		lexer.StyleBit:              lipgloss.NewStyle().Foreground(StyleBitColor),
		lexer.StyleBit2:             lipgloss.NewStyle().Foreground(StyleBitColor),
	}

	propsStyles = map[int]lipgloss.Style{
		lexer.PropsDefault:    lipgloss.NewStyle().Foreground(StyleDefaultColor),
		lexer.PropsComment:    lipgloss.NewStyle().Foreground(PropsCommentColor).Italic(true),
		lexer.PropsSection:    lipgloss.NewStyle().Foreground(PropsSectionColor).Bold(true),
		lexer.PropsAssignment: lipgloss.NewStyle().Foreground(PropsAssignmentColor),
		lexer.PropsDefVal:     lipgloss.NewStyle().Foreground(PropsDefValColor),
		lexer.PropsKey:        lipgloss.NewStyle().Foreground(PropsKeyColor),
	}
}

// SQLStyle returns the render style for a lexer SQL style id. Unknown ids get
// the default style.
func SQLStyle(id int) lipgloss.Style {
	if s, ok := sqlStyles[id]; ok {
		return s
	}
	return sqlStyles[lexer.StyleDefault]
}

// PropsStyle returns the render style for a lexer properties style id.
func PropsStyle(id int) lipgloss.Style {
	if s, ok := propsStyles[id]; ok {
		return s
	}
	return propsStyles[lexer.PropsDefault]
}
