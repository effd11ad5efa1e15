// Package diffstat summarizes line-level differences between two texts.
package diffstat

import (
	"fmt"
	"strings"
	"time"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Timeout bounds the diff computation for very large files.
const Timeout = 100 * time.Millisecond

// Stat counts added and removed lines.
type Stat struct {
	Added   int
	Removed int
}

// Compute diffs before and after line by line.
func Compute(before, after string) Stat {
	if before == after {
		return Stat{}
	}

	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = Timeout

	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var s Stat
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			s.Added += countLines(d.Text)
		case diffmatchpatch.DiffDelete:
			s.Removed += countLines(d.Text)
		}
	}
	return s
}

// Empty reports whether nothing changed.
func (s Stat) Empty() bool {
	return s.Added == 0 && s.Removed == 0
}

// String formats the stat as "+N -M".
func (s Stat) String() string {
	return fmt.Sprintf("+%d -%d", s.Added, s.Removed)
}

// countLines counts lines in a diff chunk, including an unterminated last line.
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
