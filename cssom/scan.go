package cssom

import (
	"strings"
	"unicode/utf8"

	"github.com/gorilla/css/scanner"
	"github.com/npillmayer/cssprefix/document"
)

// Declaration is the source location of a property declaration.
type Declaration struct {
	Property string
	Name     document.Position // start of the property name
	Value    document.Position // just after the colon
}

// Declarations scans text for declarations of the given properties, in
// document order. If props is empty, all declarations are reported.
//
// A declaration is an identifier followed by a colon, inside braces, at the
// start of a block or after a semicolon. Comments are skipped. Selectors
// with pseudo-classes nested inside a block ("a:hover") look like
// declarations of property "a"; restrict props to avoid them.
func Declarations(text string, props []string) []Declaration {
	want := make(map[string]bool, len(props))
	for _, p := range props {
		want[p] = true
	}
	lines := strings.Split(text, "\n")
	position := func(tok *scanner.Token) document.Position {
		line := min(max(tok.Line-1, 0), len(lines)-1)
		return document.Pos(line, byteOffset(lines[line], tok.Column-1))
	}
	var decls []Declaration
	var name *scanner.Token // candidate property name
	depth, atStart := 0, false
	s := scanner.New(text)
	for tok := s.Next(); tok.Type != scanner.TokenEOF && tok.Type != scanner.TokenError; tok = s.Next() {
		switch tok.Type {
		case scanner.TokenS, scanner.TokenComment:
			continue
		case scanner.TokenIdent:
			if atStart && depth > 0 {
				name, atStart = tok, false
				continue
			}
		case scanner.TokenChar:
			switch tok.Value {
			case "{":
				depth++
				name, atStart = nil, true
				continue
			case "}":
				depth = max(0, depth-1)
				name, atStart = nil, depth > 0
				continue
			case ";":
				name, atStart = nil, depth > 0
				continue
			case ":":
				if name != nil && (len(want) == 0 || want[name.Value]) {
					colon := position(tok)
					decls = append(decls, Declaration{
						Property: name.Value,
						Name:     position(name),
						Value:    colon.Translate(0, 1),
					})
				}
			}
		}
		name, atStart = nil, false
	}
	tracer().Debugf("found %d declarations", len(decls))
	return decls
}

// byteOffset converts a rune index into a byte index of line.
func byteOffset(line string, runes int) int {
	i := 0
	for n := 0; n < runes && i < len(line); n++ {
		_, size := utf8.DecodeRuneInString(line[i:])
		i += size
	}
	return i
}
