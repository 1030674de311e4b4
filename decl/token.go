package decl

import (
	"strings"

	"github.com/npillmayer/cssprefix/document"
	"github.com/npillmayer/cssprefix/maybe"
)

// TokenAt extracts the property name immediately left of the last colon
// before the caret on line. The name is not validated; anything which is
// not whitespace and not a delimiter (';', '{', '}') qualifies.
func TokenAt(caret document.Position, line string) maybe.Maybe[string] {
	upto := line[:max(0, min(caret.Character, len(line)))]
	colon := strings.LastIndexByte(upto, ':')
	if colon < 0 {
		return maybe.Nothing[string]()
	}
	begin, seen := colon, false
	for i := colon; i > 0; i-- {
		c := line[i-1]
		if c == ';' || c == '{' || c == '}' {
			break
		}
		if c == ' ' || c == '\t' || c == '\r' {
			if seen {
				break
			}
		} else {
			seen = true
		}
		begin = i - 1
	}
	token := strings.TrimSpace(line[begin:colon])
	if token == "" {
		return maybe.Nothing[string]()
	}
	return maybe.Just(token)
}
