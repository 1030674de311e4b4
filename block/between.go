package block

import "strings"

// Enclosure describes how a position on a line relates to a pair of
// delimiters, e.g. "{" and "}" or "/*" and "*/".
type Enclosure struct {
	AfterOpen   bool // an unmatched opening delimiter precedes the position
	BeforeClose bool // an unmatched closing delimiter follows the position
	Open        int  // index of the opening delimiter, or of the nearest foreign one, or 0
	Close       int  // index of the closing delimiter, or of the nearest foreign one, or len(line)
}

// Inside is true if the position is enclosed on both sides.
func (e Enclosure) Inside() bool {
	return e.AfterOpen && e.BeforeClose
}

// Touches is true if the position is enclosed on at least one side.
func (e Enclosure) Touches() bool {
	return e.AfterOpen || e.BeforeClose
}

// InBetween checks whether character position pos of line sits between
// delimiters open and close. Only the line itself is inspected: the text
// before pos is searched for the last open delimiter not followed by a
// close delimiter, the text after pos for the first close delimiter not
// preceded by an open delimiter.
func InBetween(line string, pos int, open, close string) Enclosure {
	pos = max(0, min(pos, len(line)))
	before, after := line[:pos], line[pos:]
	lastOpen, lastClose := strings.LastIndex(before, open), strings.LastIndex(before, close)
	firstClose, firstOpen := strings.Index(after, close), strings.Index(after, open)
	e := Enclosure{
		AfterOpen:   lastOpen != -1 && (lastClose == -1 || lastClose < lastOpen),
		BeforeClose: firstClose != -1 && (firstOpen == -1 || firstClose < firstOpen),
	}
	switch {
	case e.AfterOpen:
		e.Open = lastOpen
	case lastClose != -1:
		e.Open = lastClose
	}
	switch {
	case e.BeforeClose:
		e.Close = pos + firstClose
	case firstOpen != -1:
		e.Close = pos + firstOpen
	default:
		e.Close = len(line)
	}
	return e
}
