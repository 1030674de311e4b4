package cssom

import (
	"fmt"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
)

// Stylesheet is an adapter for a douceur style sheet.
type Stylesheet struct {
	css css.Stylesheet
}

// Parse parses a CSS style sheet.
func Parse(text string) (*Stylesheet, error) {
	sheet, err := parser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("cannot parse style sheet: %w", err)
	}
	return Wrap(sheet), nil
}

// Wrap a douceur.css.Stylesheet into a Stylesheet.
// The stylesheet is now managed by the wrapper.
func Wrap(sheet *css.Stylesheet) *Stylesheet {
	return &Stylesheet{*sheet}
}

// Empty checks if this stylesheet contains any rules.
func (sheet *Stylesheet) Empty() bool {
	return len(sheet.css.Rules) == 0
}

// AppendRules appends rules from another stylesheet.
func (sheet *Stylesheet) AppendRules(other *Stylesheet) {
	sheet.css.Rules = append(sheet.css.Rules, other.css.Rules...)
}

// Rules returns all rules carrying declarations, including rules nested
// in at-rules such as @media, in document order.
func (sheet *Stylesheet) Rules() []Rule {
	var rules []Rule
	var collect func([]*css.Rule)
	collect = func(rs []*css.Rule) {
		for _, r := range rs {
			if len(r.Declarations) > 0 {
				rules = append(rules, Rule(*r))
			}
			collect(r.Rules)
		}
	}
	collect(sheet.css.Rules)
	return rules
}

// Rule is an adapter for a douceur rule.
type Rule css.Rule

// Selector returns the prelude / selectors of the rule.
func (r Rule) Selector() string {
	return r.Prelude
}

// Properties returns the property keys of a rule, e.g. "margin-top",
// in declaration order. Repeated declarations are repeated.
func (r Rule) Properties() []string {
	props := make([]string, 0, len(r.Declarations))
	for _, d := range r.Declarations {
		props = append(props, d.Property)
	}
	return props
}

// Value returns the value of the first declaration of key, e.g. "15px",
// and false if key is not declared.
func (r Rule) Value(key string) (string, bool) {
	for _, d := range r.Declarations {
		if d.Property == key {
			return d.Value, true
		}
	}
	return "", false
}

// Count returns the number of declarations of key.
func (r Rule) Count(key string) int {
	n := 0
	for _, d := range r.Declarations {
		if d.Property == key {
			n++
		}
	}
	return n
}

// IsImportant returns true if a style key is marked as important ("!").
func (r Rule) IsImportant(key string) bool {
	for _, d := range r.Declarations {
		if d.Property == key {
			return d.Important
		}
	}
	return false
}
