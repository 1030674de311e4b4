package engine

// Outcome tells how a pass ended. All outcomes except Applied leave the
// document untouched.
type Outcome uint8

const (
	Busy                Outcome = iota // another pass is in progress
	Disabled                           // prefixing is switched off
	UnsupportedLanguage                // document is neither CSS nor SCSS
	EmptyDocument                      // nothing to do in an empty document
	SelectionNotEmpty                  // text is selected
	InsideComment                      // caret is inside a comment
	NoEnclosingBlock                   // caret is outside of any { … } block
	NoTokenAtCursor                    // no property name left of the caret
	UnconfiguredToken                  // property has no configured prefixes
	Planned                            // edits are ready to be applied
	Unchanged                          // prefixed declarations are up to date
	Applied                            // edits have been applied
	ApplyFailed                        // the editor rejected the edits
)

var outcomeNames = [...]string{
	Busy:                "busy",
	Disabled:            "disabled",
	UnsupportedLanguage: "unsupported language",
	EmptyDocument:       "empty document",
	SelectionNotEmpty:   "selection not empty",
	InsideComment:       "inside comment",
	NoEnclosingBlock:    "no enclosing block",
	NoTokenAtCursor:     "no token at cursor",
	UnconfiguredToken:   "unconfigured token",
	Planned:             "planned",
	Unchanged:           "unchanged",
	Applied:             "applied",
	ApplyFailed:         "apply failed",
}

func (o Outcome) String() string {
	if int(o) < len(outcomeNames) {
		return outcomeNames[o]
	}
	return "<unknown outcome>"
}
