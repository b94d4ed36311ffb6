package tracing

// Span attribute keys for lexing and search tracing.
// These constants define the semantic conventions for span attributes
// across the viewer pipeline.
const (
	// Search attributes
	AttrSearchPattern  = "search.pattern"
	AttrSearchFlags    = "search.flags"
	AttrSearchRevision = "search.revision"
	AttrSearchMatches  = "search.matches"
	AttrSearchCacheHit = "search.cache_hit"

	// Lex attributes
	AttrLexLanguage = "lex.language"
	AttrLexStart    = "lex.start"
	AttrLexLength   = "lex.length"
	AttrLexLines    = "lex.lines"

	// Fold attributes
	AttrFoldHeaders = "fold.headers"
	AttrFoldLines   = "fold.lines"

	// Document attributes
	AttrDocPath     = "doc.path"
	AttrDocBytes    = "doc.bytes"
	AttrDocRevision = "doc.revision"

	// Store attributes
	AttrStoreSnapshotID = "store.snapshot.id"

	// Error attributes
	AttrErrorMessage = "error.message"
	AttrErrorType    = "error.type"
)

// Span name prefixes for consistent naming.
const (
	SpanPrefixRegex  = "regex."
	SpanPrefixLex    = "lex."
	SpanPrefixFold   = "fold."
	SpanPrefixSearch = "search."
	SpanPrefixStore  = "store."
)

// Event names for span events.
const (
	EventPatternCompiled = "pattern.compiled"
	EventCacheHit        = "cache.hit"
	EventCacheMiss       = "cache.miss"
	EventDocumentLoaded  = "document.loaded"
	EventSnapshotSaved   = "snapshot.saved"
	EventErrorOccurred   = "error.occurred"
)
