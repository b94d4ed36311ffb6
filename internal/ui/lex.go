package ui

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/zjrosen/quill/internal/config"
	"github.com/zjrosen/quill/internal/document"
	"github.com/zjrosen/quill/internal/lexer"
	"github.com/zjrosen/quill/internal/log"
	"github.com/zjrosen/quill/internal/tracing"
	"github.com/zjrosen/quill/internal/wordlist"
)

// Language binds a lexer choice, its keyword lists and its property overrides
// into a single runtime that can restyle a document.
type Language struct {
	name      string
	lexerName string
	props     map[string]int

	keywords  *wordlist.List
	keywords2 *wordlist.List
	functions *wordlist.List

	folder *lexer.SQLFolder
}

// NewLanguage builds the runtime for one configured language. SQL languages
// load their keyword pack from the configured path, falling back to the
// built-in pack when none is set.
func NewLanguage(cfg config.LanguageConfig) (*Language, error) {
	l := &Language{
		name:      cfg.Name,
		lexerName: cfg.Lexer,
		props:     cfg.MergedProperties(),
	}

	switch cfg.Lexer {
	case "sql":
		pack := wordlist.DefaultSQL()
		if cfg.Wordlists != "" {
			loaded, err := wordlist.LoadPack(cfg.Wordlists)
			if err != nil {
				return nil, fmt.Errorf("failed to load wordlists for %s: %w", cfg.Name, err)
			}
			pack = loaded
		}
		l.keywords, l.keywords2, l.functions = pack.Lists()
		l.folder = lexer.NewSQLFolder()
	case "props":
	default:
		return nil, fmt.Errorf("unknown lexer: %s", cfg.Lexer)
	}
	return l, nil
}

// Name returns the configured language name.
func (l *Language) Name() string { return l.name }

// Configure writes the language's properties into the document so the
// styling and folding passes read the configured behaviour.
func (l *Language) Configure(doc *document.Document) {
	for name, value := range l.props {
		doc.SetProperty(name, value)
	}
}

// Relex restyles and refolds the whole document from scratch.
func (l *Language) Relex(ctx context.Context, tracer trace.Tracer, doc *document.Document) {
	_, span := tracer.Start(ctx, tracing.SpanPrefixLex+"document")
	defer span.End()

	span.SetAttributes(
		attribute.String(tracing.AttrLexLanguage, l.lexerName),
		attribute.String(tracing.AttrDocPath, doc.Path()),
		attribute.Int(tracing.AttrDocBytes, doc.Length()),
		attribute.Int(tracing.AttrLexLines, doc.Lines()),
	)

	switch l.lexerName {
	case "sql":
		lexer.ColouriseSQL(0, doc.Length(), 0, l.keywords, l.keywords2, l.functions, doc)
		l.folder.Fold(0, doc.Length(), 0, doc)
	case "props":
		lexer.ColouriseProps(0, doc.Length(), 0, doc)
		lexer.FoldProps(0, doc.Length(), 0, doc)
	}

	log.Debug(log.CatLex, "document lexed",
		"language", l.lexerName, "bytes", doc.Length(), "lines", doc.Lines())
}
