package patterns

import (
	"regexp"
	"strings"
)

const (
	codePrefix = `,?\s*?(?:c[óo]digo)?\s*?`
	// nonWord is \W with Unicode letters counted as word characters.
	nonWord = `[^\p{L}\p{N}_]`
)

// RoleCodeRule collapses a verbose compensation code into "(<Tag> <level>)".
// The level is the pattern's first capture group.
type RoleCodeRule struct {
	Tag     string
	Pattern *regexp.Regexp
}

// Apply rewrites every match. A match that already reads as the canonical
// tag is kept as is, so running the catalogue twice is stable. A raw code
// written inside parentheses, as in "(DAS 101.5)" or "(código DAS 101.5)",
// takes the place of the whole parenthetical.
func (r RoleCodeRule) Apply(text string) string {
	matches := r.Pattern.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text
	}

	var b strings.Builder
	last := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		if start < last {
			continue
		}
		level := ""
		if len(m) >= 4 && m[2] >= 0 {
			level = text[m[2]:m[3]]
		}
		tag := "(" + r.Tag + level + ")"
		match := text[start:end]
		opened := start > last && text[start-1] == '('

		switch {
		case strings.Contains(match, tag) || (opened && strings.HasPrefix(text[start-1:], tag)):
			b.WriteString(text[last:end])
		case opened && strings.HasSuffix(strings.TrimSuffix(match, ","), ")"):
			b.WriteString(text[last : start-1])
			b.WriteString(tag)
		case opened && end < len(text) && text[end] == ')':
			b.WriteString(text[last : start-1])
			b.WriteString(tag)
			end++
		default:
			b.WriteString(text[last:start])
			b.WriteString(" " + tag)
		}
		last = end
	}
	b.WriteString(text[last:])
	return b.String()
}

// roleCodeRules is order-sensitive: later entries assume earlier codes are
// already collapsed.
func roleCodeRules() []RoleCodeRule {
	table := []struct{ tag, expr string }{
		{"DAS ", codePrefix + `das[ -]*?[0123]{3}\.([1-6]),?`},
		{"CA ", codePrefix + `ca[ -]+?(i{1,4})(?:` + nonWord + `|$),?`},
		{"CA-APO ", codePrefix + `ca-apo[ -]*?([12]),?`},
		{"", codePrefix + nonWord + `(CDT)` + nonWord + `,?`},
		{"CCD ", codePrefix + `ccd[ -]+?(i{1,3})(?:` + nonWord + `|$),?`},
		{"CGE ", codePrefix + `cge[ -]+?(i{1,3})(?:` + nonWord + `|$),?`},
		{"", codePrefix + `(CPAGLO),?`},
		{"", codePrefix + nonWord + `(CSP)(?:` + nonWord + `|$),?`},
		{"", codePrefix + nonWord + `(CSU)(?:` + nonWord + `|$),?`},
		{"CD ", codePrefix + nonWord + `cd(?:[ -]*?|\.)([123])(?:` + nonWord + `|$),?`},
		{"", codePrefix + nonWord + `(NE)(?:` + nonWord + `|$),?`},
		{"CETG ", codePrefix + `cetg[ -]*?(iv|v|vi|vii)(?:` + nonWord + `|$),?`},
		{"FDS ", codePrefix + nonWord + `fds[ -]*?(1)(?:` + nonWord + `|$),?`},
		{"FCPE ", codePrefix + `fc?pe[ -]*?[0-9]{3}\.([1-6]),?`},
		{"", `(natureza especial)`},
		{"CNE ", codePrefix + `cne[ -]*?([0-9]{2}),?`},
	}

	rules := make([]RoleCodeRule, 0, len(table))
	for _, row := range table {
		rules = append(rules, RoleCodeRule{Tag: row.tag, Pattern: ci(row.expr)})
	}
	return rules
}

// Tier filters: an act mentioning only junior codes is not published.
var (
	lowTierExpr  = ci(`(?:(?:das|fcp?e)[ -]*?[0123]{3}\.[1-3]|cge[ -]+?(iii|iv|v)(?:` + nonWord + `|$))`)
	highTierExpr = ci(`(?:(?:das|fcp?e)[ -]*?[0123]{3}\.[4-6]|cge[ -]+?(i|ii)(?:` + nonWord + `|$))`)
)

// TierFilter decides whether raw act text concerns junior positions only.
type TierFilter struct {
	Low  *regexp.Regexp
	High *regexp.Regexp
}

// LowOnly reports text that references a low tier and no high tier.
func (f TierFilter) LowOnly(text string) bool {
	return f.Low.MatchString(text) && !f.High.MatchString(text)
}
