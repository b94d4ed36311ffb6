package ui

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// reloadDelta summarises what changed between two revisions of a file.
type reloadDelta struct {
	added   int
	removed int
}

func (d reloadDelta) empty() bool { return d.added == 0 && d.removed == 0 }

func (d reloadDelta) String() string {
	return fmt.Sprintf("+%d/-%d", d.added, d.removed)
}

// diffLines counts lines added and removed between two buffers using a
// line-mode diff, so intra-line edits count as one removal plus one addition.
func diffLines(before, after string) reloadDelta {
	// A missing final newline is not a line change of its own
	if before != "" && !strings.HasSuffix(before, "\n") {
		before += "\n"
	}
	if after != "" && !strings.HasSuffix(after, "\n") {
		after += "\n"
	}
	dmp := diffmatchpatch.New()
	oldRunes, newRunes, lines := dmp.DiffLinesToRunes(before, after)
	diffs := dmp.DiffMainRunes(oldRunes, newRunes, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)

	var delta reloadDelta
	for _, d := range diffs {
		n := countLines(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			delta.added += n
		case diffmatchpatch.DiffDelete:
			delta.removed += n
		}
	}
	return delta
}

func countLines(text string) int {
	if text == "" {
		return 0
	}
	n := strings.Count(text, "\n")
	if !strings.HasSuffix(text, "\n") {
		n++
	}
	return n
}
