// Package ui implements the terminal document viewer.
package ui

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.opentelemetry.io/otel/trace"

	"github.com/zjrosen/quill/internal/config"
	"github.com/zjrosen/quill/internal/document"
	"github.com/zjrosen/quill/internal/flags"
	"github.com/zjrosen/quill/internal/keys"
	"github.com/zjrosen/quill/internal/log"
	"github.com/zjrosen/quill/internal/search"
	"github.com/zjrosen/quill/internal/store"
	"github.com/zjrosen/quill/internal/ui/styles"
	"github.com/zjrosen/quill/internal/watcher"
)

// fileChangedMsg signals that the watched file was modified on disk.
type fileChangedMsg struct{}

// reloadedMsg carries freshly read file contents back into the update loop.
type reloadedMsg struct {
	text []byte
	err  error
}

// searchDoneMsg carries the result of a search command.
type searchDoneMsg struct {
	pattern string
	matches []search.Match
	err     error
}

// Options wires the viewer's collaborators. Watcher and Snapshots are
// optional; the corresponding features stay off when nil.
type Options struct {
	Config    config.Config
	Tracer    trace.Tracer
	Flags     *flags.Registry
	Watcher   *watcher.Watcher
	Snapshots *store.FoldStore
}

// Model is the root bubbletea model for the document viewer.
type Model struct {
	doc      *document.Document
	lang     *Language
	searcher *search.Service
	tracer   trace.Tracer
	cfg      config.Config
	flags    *flags.Registry

	viewport  viewport.Model
	searchbar textinput.Model
	help      help.Model

	collapsed map[int]bool
	visible   []int
	cursor    int

	matches      []search.Match
	currentMatch int
	searchOpts   search.Options
	lastPattern  string
	searchErr    error
	lastDelta    reloadDelta

	fileWatcher *watcher.Watcher
	reloadCh    <-chan struct{}
	snapshots   *store.FoldStore
	logListener *log.LogListener
	lastAlert   string

	showStatus bool
	searching  bool
	ready      bool

	width  int
	height int
}

// New builds a viewer for an already lexed document.
func New(doc *document.Document, lang *Language, opts Options) Model {
	input := textinput.New()
	input.Prompt = "/"
	input.Placeholder = "pattern"

	cacheEnabled := opts.Flags != nil && opts.Flags.Enabled(flags.FlagSearchCache)

	var reloadCh <-chan struct{}
	if opts.Watcher != nil {
		ch, err := opts.Watcher.Start()
		if err != nil {
			log.ErrorErr(log.CatWatcher, "failed to start file watcher", err)
		} else {
			reloadCh = ch
		}
	}

	return Model{
		doc:          doc,
		lang:         lang,
		searcher:     search.NewService(doc, opts.Config.Search, opts.Tracer, cacheEnabled),
		tracer:       opts.Tracer,
		cfg:          opts.Config,
		flags:        opts.Flags,
		searchbar:    input,
		help:         help.New(),
		collapsed:    map[int]bool{},
		visible:      visibleLines(doc, map[int]bool{}),
		currentMatch: -1,
		fileWatcher:  opts.Watcher,
		reloadCh:     reloadCh,
		snapshots:    opts.Snapshots,
		logListener:  log.NewListener(context.Background()),
		showStatus:   opts.Config.UI.ShowStatusBar,
	}
}

// Init starts listening for file-change notifications and log events when
// they are wired up.
func (m Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.reloadCh != nil {
		cmds = append(cmds, listenReload(m.reloadCh))
	}
	if m.logListener != nil {
		cmds = append(cmds, m.logListener.Listen())
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// listenReload waits for the next debounced change notification.
func listenReload(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return fileChangedMsg{}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport = viewport.New(msg.Width, m.contentHeight())
		m.searchbar.Width = msg.Width - 4
		m.help.Width = msg.Width
		m.ready = true
		m.refreshContent()
		return m, nil

	case fileChangedMsg:
		return m, tea.Batch(m.reload(), listenReload(m.reloadCh))

	case log.LogEvent:
		entry := strings.TrimRight(msg.Payload, "\n")
		if strings.Contains(entry, "[WARN]") || strings.Contains(entry, "[ERROR]") {
			m.lastAlert = entry
		}
		if m.logListener == nil {
			return m, nil
		}
		return m, m.logListener.Listen()

	case reloadedMsg:
		if msg.err != nil {
			m.searchErr = msg.err
			return m, nil
		}
		m.applyReload(msg.text)
		if m.lastPattern != "" {
			return m, m.runSearch(m.lastPattern)
		}
		return m, nil

	case searchDoneMsg:
		m.searchErr = msg.err
		m.matches = msg.matches
		m.currentMatch = -1
		if msg.err == nil {
			m.lastPattern = msg.pattern
			if len(msg.matches) > 0 {
				m.currentMatch = 0
				m.revealLine(msg.matches[0].Line)
			}
		}
		m.refreshContent()
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearchInput(msg)
		}
		return m.updateViewer(msg)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// updateSearchInput handles keys while the search bar has focus.
func (m Model) updateSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Search.Execute):
		m.searching = false
		m.searchbar.Blur()
		pattern := m.searchbar.Value()
		if pattern == "" {
			return m, nil
		}
		return m, m.runSearch(pattern)

	case key.Matches(msg, keys.Search.Blur):
		m.searching = false
		m.searchbar.Blur()
		return m, nil

	case key.Matches(msg, keys.Search.ToggleCase):
		m.searchOpts.CaseSensitive = !m.searchOpts.CaseSensitive
		return m, nil

	case key.Matches(msg, keys.Search.TogglePosix):
		m.searchOpts.Posix = !m.searchOpts.Posix
		return m, nil
	}

	var cmd tea.Cmd
	m.searchbar, cmd = m.searchbar.Update(msg)
	return m, cmd
}

// updateViewer handles keys while the document has focus.
func (m Model) updateViewer(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Viewer.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Viewer.Up):
		m.moveCursor(-1)

	case key.Matches(msg, keys.Viewer.Down):
		m.moveCursor(1)

	case key.Matches(msg, keys.Viewer.PageUp):
		m.moveCursor(-m.viewport.Height)

	case key.Matches(msg, keys.Viewer.PageDown):
		m.moveCursor(m.viewport.Height)

	case key.Matches(msg, keys.Viewer.Top):
		m.cursor = 0
		m.refreshContent()

	case key.Matches(msg, keys.Viewer.Bottom):
		m.cursor = len(m.visible) - 1
		m.refreshContent()

	case key.Matches(msg, keys.Viewer.ToggleFold):
		m.toggleFold()

	case key.Matches(msg, keys.Viewer.ExpandAll):
		m.collapsed = map[int]bool{}
		m.refreshVisible()
		m.refreshContent()

	case key.Matches(msg, keys.Viewer.CollapseAll):
		m.collapseAll()

	case key.Matches(msg, keys.Viewer.FocusSearch):
		m.searching = true
		m.searchbar.SetValue("")
		return m, m.searchbar.Focus()

	case key.Matches(msg, keys.Viewer.NextMatch):
		m.jumpMatch(1)

	case key.Matches(msg, keys.Viewer.PrevMatch):
		m.jumpMatch(-1)

	case key.Matches(msg, keys.Viewer.Reload):
		return m, m.reload()

	case key.Matches(msg, keys.Viewer.ToggleStatus):
		m.showStatus = !m.showStatus
		m.viewport.Height = m.contentHeight()
		m.refreshContent()

	case key.Matches(msg, keys.Viewer.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.viewport.Height = m.contentHeight()
		m.refreshContent()

	case key.Matches(msg, keys.Viewer.Escape):
		m.matches = nil
		m.currentMatch = -1
		m.lastPattern = ""
		m.searchErr = nil
		m.lastAlert = ""
		m.searchbar.SetValue("")
		m.refreshContent()
	}

	return m, nil
}

// moveCursor moves the cursor by delta visible rows, clamped to the document.
func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	m.refreshContent()
}

// toggleFold flips the fold state of the header under the cursor.
func (m *Model) toggleFold() {
	if m.cursor >= len(m.visible) {
		return
	}
	line := m.visible[m.cursor]
	if !isFoldHeader(m.doc.LevelAt(line)) {
		return
	}
	if m.collapsed[line] {
		delete(m.collapsed, line)
	} else {
		m.collapsed[line] = true
	}
	m.refreshVisible()
	for i, l := range m.visible {
		if l == line {
			m.cursor = i
			break
		}
	}
	m.refreshContent()
}

// collapseAll collapses every fold header, keeping the cursor on its line's
// nearest still visible ancestor.
func (m *Model) collapseAll() {
	line := 0
	if m.cursor < len(m.visible) {
		line = m.visible[m.cursor]
	}
	for l := 0; l < m.doc.Lines(); l++ {
		if isFoldHeader(m.doc.LevelAt(l)) {
			m.collapsed[l] = true
		}
	}
	m.refreshVisible()
	m.cursor = 0
	for i, l := range m.visible {
		if l > line {
			break
		}
		m.cursor = i
	}
	m.refreshContent()
}

// jumpMatch moves to the next or previous match, wrapping at the ends.
func (m *Model) jumpMatch(direction int) {
	if len(m.matches) == 0 {
		return
	}
	m.currentMatch = (m.currentMatch + direction + len(m.matches)) % len(m.matches)
	m.revealLine(m.matches[m.currentMatch].Line)
	m.refreshContent()
}

// revealLine expands every collapsed ancestor of line and moves the cursor
// onto it.
func (m *Model) revealLine(line int) {
	level := foldLevel(m.doc.LevelAt(line))
	for parent := line - 1; parent >= 0; parent-- {
		pl := m.doc.LevelAt(parent)
		if isFoldHeader(pl) && foldLevel(pl) < level {
			delete(m.collapsed, parent)
			level = foldLevel(pl)
		}
	}
	m.refreshVisible()
	for i, l := range m.visible {
		m.cursor = i
		if l >= line {
			break
		}
	}
	m.refreshContent()
}

// reload re-reads the document's file in the background.
func (m Model) reload() tea.Cmd {
	path := m.doc.Path()
	if path == "" {
		return nil
	}
	return func() tea.Msg {
		text, err := os.ReadFile(path) // #nosec G304 -- path is the file the viewer was opened with
		return reloadedMsg{text: text, err: err}
	}
}

// applyReload swaps in new file contents and restyles the document.
func (m *Model) applyReload(text []byte) {
	m.lastDelta = diffLines(string(m.doc.Text()), string(text))
	m.doc.SetText(text)
	m.lang.Configure(m.doc)
	m.lang.Relex(context.Background(), m.tracer, m.doc)
	m.saveSnapshot()

	m.collapsed = map[int]bool{}
	m.matches = nil
	m.currentMatch = -1
	m.searchErr = nil
	m.refreshVisible()
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	m.refreshContent()
	log.Debug(log.CatUI, "document reloaded",
		"path", m.doc.Path(), "revision", m.doc.Revision(), "delta", m.lastDelta.String())
}

// saveSnapshot persists the current fold levels when the feature is wired up.
func (m *Model) saveSnapshot() {
	if m.snapshots == nil || m.flags == nil || !m.flags.Enabled(flags.FlagFoldSnapshots) {
		return
	}
	snap := &store.Snapshot{
		Path:     m.doc.Path(),
		Revision: m.doc.Revision(),
		Levels:   m.doc.Levels(),
	}
	if err := m.snapshots.Save(snap); err != nil {
		log.ErrorErr(log.CatStore, "failed to save fold snapshot", err)
	}
}

// runSearch executes the pattern against the document off the update loop.
func (m Model) runSearch(pattern string) tea.Cmd {
	opts := m.searchOpts
	return func() tea.Msg {
		matches, err := m.searcher.Find(context.Background(), pattern, opts)
		return searchDoneMsg{pattern: pattern, matches: matches, err: err}
	}
}

// refreshVisible recomputes the visible line set after fold changes.
func (m *Model) refreshVisible() {
	m.visible = visibleLines(m.doc, m.collapsed)
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// refreshContent re-renders the viewport and keeps the cursor in view.
func (m *Model) refreshContent() {
	if !m.ready {
		return
	}
	cursorLine := -1
	if m.cursor < len(m.visible) {
		cursorLine = m.visible[m.cursor]
	}
	rows := renderDocument(m.doc, m.lang, m.visible, m.collapsed, m.matches, m.currentMatch, renderOptions{
		width:           m.width,
		cursorLine:      cursorLine,
		showLineNumbers: m.cfg.UI.ShowLineNumbers,
		showFoldGutter:  m.cfg.UI.ShowFoldGutter,
	})
	m.viewport.SetContent(strings.Join(rows, "\n"))

	if m.cursor < m.viewport.YOffset {
		m.viewport.SetYOffset(m.cursor)
	}
	if m.cursor >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(m.cursor - m.viewport.Height + 1)
	}
}

// contentHeight returns the viewport height left over after the chrome rows.
func (m Model) contentHeight() int {
	h := m.height - 1
	if m.showStatus {
		h--
	}
	if m.help.ShowAll {
		h -= 3
	}
	if h < 1 {
		h = 1
	}
	return h
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	sections := []string{m.viewport.View()}

	if m.searching {
		sections = append(sections, m.searchbar.View())
	} else {
		sections = append(sections, m.help.View(keys.Viewer))
	}

	if m.showStatus {
		sections = append(sections, m.statusLine())
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// statusLine renders the status bar contents.
func (m Model) statusLine() string {
	if m.searchErr != nil {
		return styles.StatusBarStyle.Width(m.width).Render(
			styles.ErrorStyle.UnsetPadding().Render(m.searchErr.Error()))
	}
	if m.lastAlert != "" {
		return styles.StatusBarStyle.Width(m.width).Render(
			styles.ErrorStyle.UnsetPadding().Render(styles.TruncateString(m.lastAlert, m.width-2)))
	}

	name := m.doc.Path()
	if name == "" {
		name = "(no file)"
	}
	cursorLine := 0
	if m.cursor < len(m.visible) {
		cursorLine = m.visible[m.cursor]
	}

	parts := []string{
		name,
		m.lang.Name(),
		fmt.Sprintf("%d:%d", cursorLine+1, m.doc.Lines()),
	}
	if m.lastPattern != "" {
		parts = append(parts, fmt.Sprintf("/%s %d/%d", m.lastPattern, m.currentMatch+1, len(m.matches)))
	}
	if len(m.collapsed) > 0 {
		parts = append(parts, fmt.Sprintf("%d folded", len(m.collapsed)))
	}
	if !m.lastDelta.empty() {
		parts = append(parts, "reloaded "+m.lastDelta.String())
	}

	return styles.StatusBarStyle.Width(m.width).Render(
		styles.TruncateString(strings.Join(parts, " | "), m.width-2))
}
