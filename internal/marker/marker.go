// Package marker picks the glyph printed in front of each act.
package marker

import (
	"fmt"
	"regexp"

	"GazetteDigest/internal/patterns"
)

// DefaultMarker is used when no rule matches.
const DefaultMarker = "▪️"

// RuleRecord is a (pattern, marker) row as written in configuration.
type RuleRecord struct {
	Pattern string `yaml:"pattern"`
	Marker  string `yaml:"marker"`
}

// DefaultRules is ordered by preference: the first match wins.
var DefaultRules = []RuleRecord{
	{`substitu`, "⏱️"},
	{`pol[ií]cia\s*?(?:rodovi[aá]ria)?\s*?federal`, "👮🏻"},
	{`(?:Nomeia|Designa).*\((?:DAS|FCPE) 6\)`, "👑"},
	{`(?:Nomeia|Designa).*\((?:DAS|FCPE) 5\)`, "🎩"},
	{`(?:Nomeia|Designa).*\((?:DAS|FCPE) 4\)`, "🧢"},
	{`(?:Exonera|Dispensa).*\((?:DAS|FCPE) 6\)`, "💼"},
	{`(?:Exonera|Dispensa).*\((?:DAS|FCPE) 5\)`, "🧳"},
	{`(?:Exonera|Dispensa).*\((?:DAS|FCPE) 4\)`, "🎒"},
	{`\((?:CA|CGE) I{1,3}\)`, "👓"},
	{`\(CDT\)`, "👓"},
	{`(?:grupo de trabalho|comitê|conselho|comissão|grupo gestor)`, "💬"},
	{`General|Almirante|Brigadeiro`, "👨🏻‍✈️"},
	{`(?:Nomeia|Designa).* Secretári`, "👑"},
	{`(?:Exonera|Dispensa).* Secretári`, "💼"},
}

type rule struct {
	pattern *regexp.Regexp
	marker  string
}

// Assigner scans its rules in order against final act text.
type Assigner struct {
	rules    []rule
	fallback string
}

// NewAssigner compiles records case-insensitively. Empty records mean
// DefaultRules; an empty fallback means DefaultMarker.
func NewAssigner(records []RuleRecord, fallback string) (*Assigner, error) {
	if len(records) == 0 {
		records = DefaultRules
	}
	if fallback == "" {
		fallback = DefaultMarker
	}
	rules := make([]rule, 0, len(records))
	for i, rec := range records {
		re, err := patterns.Compile(rec.Pattern)
		if err != nil {
			return nil, fmt.Errorf("marker rule %d: %w", i, err)
		}
		rules = append(rules, rule{pattern: re, marker: rec.Marker})
	}
	return &Assigner{rules: rules, fallback: fallback}, nil
}

// Assign returns the marker of the first matching rule.
func (a *Assigner) Assign(text string) string {
	for _, r := range a.rules {
		if r.pattern.MatchString(text) {
			return r.marker
		}
	}
	return a.fallback
}
