// Package search runs regex searches over a document with memoised results.
package search

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/zjrosen/quill/internal/cachemanager"
	"github.com/zjrosen/quill/internal/config"
	"github.com/zjrosen/quill/internal/document"
	"github.com/zjrosen/quill/internal/log"
	"github.com/zjrosen/quill/internal/regex"
	"github.com/zjrosen/quill/internal/tracing"
)

// Options select pattern syntax for a search.
type Options struct {
	CaseSensitive bool
	Posix         bool
}

// flagString encodes options into a short cache-key and trace-attribute token.
func (o Options) flagString() string {
	s := "ci"
	if o.CaseSensitive {
		s = "cs"
	}
	if o.Posix {
		s += "+px"
	}
	return s
}

// Match is one hit of a pattern in the document.
// Groups holds the text of tagged sub-matches 1..9 that participated.
type Match struct {
	Start  int
	End    int
	Line   int
	Text   string
	Groups []string
}

// searchInput carries the work for a cache miss. The computed flag is set by
// the compute function so the caller can tell a miss from a hit afterwards.
type searchInput struct {
	pattern  string
	opts     Options
	computed *bool
}

// Service owns the regex engine for one document and memoises match lists
// keyed by (pattern, flags, revision). Edits bump the document revision, so
// stale entries simply stop being addressed and age out.
type Service struct {
	doc    *document.Document
	engine *regex.Engine
	tracer trace.Tracer
	cache  *cachemanager.ReadThroughCache[string, []Match, searchInput]
	ttl    time.Duration
}

// NewService creates a search service for doc. The cache is skipped entirely
// when disabled, so every call recomputes.
func NewService(doc *document.Document, cfg config.SearchConfig, tracer trace.Tracer, cacheEnabled bool) *Service {
	s := &Service{
		doc:    doc,
		engine: regex.New(doc.IsWordChar),
		tracer: tracer,
		ttl:    time.Duration(cfg.CacheTTLSeconds) * time.Second,
	}
	manager := cachemanager.NewInMemoryCacheManager[string, []Match](
		"search", s.ttl, time.Minute,
	)
	skip := !cacheEnabled || cfg.CacheEntries == 0
	s.cache = cachemanager.NewReadThroughCache[string, []Match, searchInput](
		manager, s.findAll, skip,
	)
	return s
}

// Find returns every match of pattern in the document, in position order.
// A pattern that compiles but matches nothing yields an empty slice and no
// error.
func (s *Service) Find(ctx context.Context, pattern string, opts Options) ([]Match, error) {
	ctx, span := s.tracer.Start(ctx, tracing.SpanPrefixSearch+"find")
	defer span.End()

	revision := s.doc.Revision()
	span.SetAttributes(
		attribute.String(tracing.AttrSearchPattern, pattern),
		attribute.String(tracing.AttrSearchFlags, opts.flagString()),
		attribute.Int64(tracing.AttrSearchRevision, revision),
		attribute.String(tracing.AttrDocPath, s.doc.Path()),
	)

	computed := false
	key := cacheKey(pattern, opts, revision)
	matches, err := s.cache.Get(ctx, key, searchInput{pattern: pattern, opts: opts, computed: &computed}, s.ttl)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	if computed {
		span.AddEvent(tracing.EventCacheMiss)
	} else {
		span.AddEvent(tracing.EventCacheHit)
	}
	span.SetAttributes(
		attribute.Bool(tracing.AttrSearchCacheHit, !computed),
		attribute.Int(tracing.AttrSearchMatches, len(matches)),
	)
	return matches, nil
}

// findAll compiles the pattern and walks the document collecting matches.
func (s *Service) findAll(ctx context.Context, input searchInput) ([]Match, error) {
	_, span := s.tracer.Start(ctx, tracing.SpanPrefixRegex+"execute")
	defer span.End()

	if input.computed != nil {
		*input.computed = true
	}

	var flags regex.Flags
	if input.opts.Posix {
		flags |= regex.FlagPosix
	}
	if err := s.engine.Compile(input.pattern, input.opts.CaseSensitive, flags); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("failed to compile pattern %q: %w", input.pattern, err)
	}
	span.AddEvent(tracing.EventPatternCompiled)

	// Matching is line-local: anchors bind to line boundaries, so each line
	// is scanned independently.
	matches := make([]Match, 0)
	anchored := input.pattern != "" && input.pattern[0] == '^'
	for line := 0; line < s.doc.Lines(); line++ {
		lineStart := s.doc.LineStart(line)
		lineEnd := lineStart + len(s.doc.LineText(line))

		pos := lineStart
		lastStart, lastEnd := -1, -1
		for pos <= lineEnd {
			if anchored && pos > lineStart {
				// A leading ^ matches only at the line start
				break
			}
			if s.engine.Execute(s.doc, pos, lineEnd) == 0 {
				break
			}
			start := s.engine.MatchStart(0)
			end := s.engine.MatchEnd(0)
			if start == lastStart && end == lastEnd {
				// An anchored empty match repeats at the same position
				break
			}
			lastStart, lastEnd = start, end
			s.engine.GrabMatches(s.doc)

			var groups []string
			for i := 1; i < regex.MaxTag; i++ {
				if s.engine.MatchStart(i) == regex.NotFound {
					continue
				}
				groups = append(groups, s.engine.Match(i))
			}

			matches = append(matches, Match{
				Start:  start,
				End:    end,
				Line:   line,
				Text:   s.engine.Match(0),
				Groups: groups,
			})

			// An empty match still has to advance the scan position
			if end > pos {
				pos = end
			} else {
				pos++
			}
		}
	}

	span.SetAttributes(attribute.Int(tracing.AttrSearchMatches, len(matches)))
	log.Debug(log.CatRegex, "search complete",
		"pattern", input.pattern, "matches", len(matches))
	return matches, nil
}

// cacheKey builds the memoisation key for a pattern, options and revision.
func cacheKey(pattern string, opts Options, revision int64) string {
	return pattern + "\x00" + opts.flagString() + "\x00" + strconv.FormatInt(revision, 10)
}
