package decl

import (
	"regexp"

	"github.com/npillmayer/cssprefix/block"
	"github.com/npillmayer/cssprefix/maybe"
)

// Matcher finds declarations of a single property. A declaration is the
// property name, preceded by the start of the text, a brace, whitespace or
// a semicolon, and followed by optional blanks and a colon.
type Matcher struct {
	token string
	re    *regexp.Regexp
}

// NewMatcher creates a matcher for property token.
func NewMatcher(token string) Matcher {
	return Matcher{
		token: token,
		re:    regexp.MustCompile(`(^|\{|\}|[ \r\t\n]+|;)` + regexp.QuoteMeta(token) + `[ \t\r]*:`),
	}
}

// Token is the property name m matches.
func (m Matcher) Token() string {
	return m.token
}

// Value locates the value of the first declaration in text. from is the
// offset just after the colon, to the offset of the value's boundary.
func (m Matcher) Value(text string) (from, to int, found bool) {
	loc := m.re.FindStringIndex(text)
	if loc == nil {
		return 0, 0, false
	}
	return loc[1], valueEnd(text, loc[1]), true
}

// valueBoundary ends a value: a semicolon, a line break, or the start of
// what looks like another declaration.
var valueBoundary = regexp.MustCompile(`[\w-]+\W*:|;|[\n\r]`)

func valueEnd(text string, from int) int {
	loc := valueBoundary.FindStringIndex(text[from:])
	if loc == nil {
		return len(text)
	}
	return from + loc[0]
}

// ValueOf returns the value of the first declaration of token in text, or
// Nothing if text does not declare token. Values are not trimmed.
func ValueOf(text string, token string) maybe.Maybe[string] {
	from, to, found := NewMatcher(token).Value(text)
	if !found {
		return maybe.Nothing[string]()
	}
	return maybe.Just(text[from:to])
}

// ValueIn is ValueOf for the interior of a block.
func ValueIn(b block.Block, token string) maybe.Maybe[string] {
	v := ValueOf(b.Text, token)
	if v.IsNothing() {
		tracer().Debugf("no declaration of %q in block %s", token, b.Range())
	}
	return v
}
