// Package styles contains Lip Gloss style definitions.
package styles

// ColorToken represents a named, themeable color.
type ColorToken string

// Color tokens organized by category.
// These are the keys users can override in their config.
const (
	// SQL syntax styles
	TokenStyleDefault          ColorToken = "style.default"
	TokenStyleKeyword          ColorToken = "style.keyword"
	TokenStyleKeyword2         ColorToken = "style.keyword2"
	TokenStyleUser1            ColorToken = "style.user1"
	TokenStyleNumber           ColorToken = "style.number"
	TokenStyleHex              ColorToken = "style.hex"
	TokenStyleBit              ColorToken = "style.bit"
	TokenStyleVariable         ColorToken = "style.variable"
	TokenStyleIdentifier       ColorToken = "style.identifier"
	TokenStyleQuotedIdentifier ColorToken = "style.quoted_identifier"
	TokenStyleComment          ColorToken = "style.comment"
	TokenStyleCommentLine      ColorToken = "style.comment.line"
	TokenStyleCommentDoc       ColorToken = "style.comment.doc"
	TokenStyleCharacter        ColorToken = "style.character"
	TokenStyleString           ColorToken = "style.string"
	TokenStyleOperator         ColorToken = "style.operator"

	// Properties syntax styles
	TokenPropsSection    ColorToken = "style.props.section"
	TokenPropsKey        ColorToken = "style.props.key" //nolint:gosec // UI color token, not credentials
	TokenPropsAssignment ColorToken = "style.props.assignment"
	TokenPropsDefVal     ColorToken = "style.props.defval"
	TokenPropsComment    ColorToken = "style.props.comment"

	// Text hierarchy
	TokenTextPrimary ColorToken = "text.primary"
	TokenTextMuted   ColorToken = "text.muted"

	// Gutter
	TokenGutterLineNumber ColorToken = "gutter.line_number"
	TokenGutterFold       ColorToken = "gutter.fold"
	TokenGutterCollapsed  ColorToken = "gutter.collapsed"

	// Borders
	TokenBorderDefault ColorToken = "border.default"
	TokenBorderFocus   ColorToken = "border.focus"

	// Status bar
	TokenStatusBarFg ColorToken = "statusbar.fg"
	TokenStatusBarBg ColorToken = "statusbar.bg"

	// Search
	TokenSearchMatch   ColorToken = "search.match"
	TokenSearchCurrent ColorToken = "search.current"

	// Status indicators
	TokenStatusError ColorToken = "status.error"
)

// AllTokens returns every valid color token.
func AllTokens() []ColorToken {
	return []ColorToken{
		TokenStyleDefault, TokenStyleKeyword, TokenStyleKeyword2, TokenStyleUser1,
		TokenStyleNumber, TokenStyleHex, TokenStyleBit, TokenStyleVariable,
		TokenStyleIdentifier, TokenStyleQuotedIdentifier,
		TokenStyleComment, TokenStyleCommentLine, TokenStyleCommentDoc,
		TokenStyleCharacter, TokenStyleString, TokenStyleOperator,
		TokenPropsSection, TokenPropsKey, TokenPropsAssignment, TokenPropsDefVal, TokenPropsComment,
		TokenTextPrimary, TokenTextMuted,
		TokenGutterLineNumber, TokenGutterFold, TokenGutterCollapsed,
		TokenBorderDefault, TokenBorderFocus,
		TokenStatusBarFg, TokenStatusBarBg,
		TokenSearchMatch, TokenSearchCurrent,
		TokenStatusError,
	}
}
