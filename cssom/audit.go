package cssom

import (
	"fmt"
	"strings"

	"github.com/npillmayer/cssprefix/config"
)

// FindingKind classifies audit findings.
type FindingKind uint8

const (
	Missing FindingKind = iota // prefixed declaration is absent
	Stale                      // prefixed declaration has a different value
)

func (k FindingKind) String() string {
	if k == Stale {
		return "stale"
	}
	return "missing"
}

// Finding reports a prefixed declaration not in line with its unprefixed
// property.
type Finding struct {
	Kind     FindingKind
	Selector string
	Property string // the unprefixed property, e.g. "transform"
	Prefixed string // e.g. "-webkit-transform"
	Want     string // value of Property
	Have     string // value of Prefixed, empty if missing
}

func (f Finding) String() string {
	if f.Kind == Missing {
		return fmt.Sprintf("%s: %s missing (%s: %s)", f.Selector, f.Prefixed, f.Property, f.Want)
	}
	return fmt.Sprintf("%s: %s is %q, %s is %q", f.Selector, f.Prefixed, f.Have, f.Property, f.Want)
}

// Audit checks every rule of sheet declaring a configured property. Values
// are compared with surrounding whitespace removed.
func Audit(sheet *Stylesheet, conf *config.Snapshot) []Finding {
	var findings []Finding
	props := conf.Properties()
	for _, rule := range sheet.Rules() {
		for _, prop := range props {
			want, ok := rule.Value(prop)
			if !ok {
				continue
			}
			for _, name := range conf.Prefixed(prop) {
				f := Finding{Selector: rule.Selector(), Property: prop, Prefixed: name, Want: want}
				have, ok := rule.Value(name)
				switch {
				case !ok:
					findings = append(findings, f)
				case strings.TrimSpace(have) != strings.TrimSpace(want):
					f.Kind, f.Have = Stale, have
					findings = append(findings, f)
				}
			}
		}
	}
	tracer().Debugf("audit: %d findings", len(findings))
	return findings
}

// AuditText parses text and audits it.
func AuditText(text string, conf *config.Snapshot) ([]Finding, error) {
	sheet, err := Parse(text)
	if err != nil {
		return nil, err
	}
	return Audit(sheet, conf), nil
}
