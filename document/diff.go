package document

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// DiffLine is a line of a line-oriented diff between two document texts.
// Line numbers are 1-based; OldLine is 0 for added lines, NewLine is 0 for
// removed lines.
type DiffLine struct {
	Op      byte // ' ', '+' or '-'
	Text    string
	OldLine int
	NewLine int
}

func (l DiffLine) String() string {
	return fmt.Sprintf("%c%s", l.Op, l.Text)
}

// LineDiff compares two texts line by line.
func LineDiff(before, after string) []DiffLine {
	dmp := diffmatchpatch.New()
	beforeChars, afterChars, lineArray := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffMain(beforeChars, afterChars, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	var lines []DiffLine
	oldLine, newLine := 1, 1
	for _, d := range diffs {
		chunk := strings.Split(d.Text, "\n")
		if len(chunk) > 0 && chunk[len(chunk)-1] == "" {
			chunk = chunk[:len(chunk)-1]
		}
		for _, text := range chunk {
			switch d.Type {
			case diffmatchpatch.DiffEqual:
				lines = append(lines, DiffLine{Op: ' ', Text: text, OldLine: oldLine, NewLine: newLine})
				oldLine++
				newLine++
			case diffmatchpatch.DiffDelete:
				lines = append(lines, DiffLine{Op: '-', Text: text, OldLine: oldLine})
				oldLine++
			case diffmatchpatch.DiffInsert:
				lines = append(lines, DiffLine{Op: '+', Text: text, NewLine: newLine})
				newLine++
			}
		}
	}
	return lines
}

// Changes is LineDiff without the context lines.
func Changes(before, after string) []DiffLine {
	var changed []DiffLine
	for _, l := range LineDiff(before, after) {
		if l.Op != ' ' {
			changed = append(changed, l)
		}
	}
	return changed
}

// FormatDiff renders diff lines, one per line, prefixed by their operation.
func FormatDiff(lines []DiffLine) string {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l.String())
		b.WriteByte('\n')
	}
	return b.String()
}
