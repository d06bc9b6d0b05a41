// Package sanitizer rewrites raw act text into the short form published in
// the digest: identifiers removed, verbs conjugated, role codes collapsed.
package sanitizer

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"GazetteDigest/internal/domain"
	"GazetteDigest/internal/patterns"
)

const (
	// DefaultMaxNoActLength bounds the text kept from documents without acts.
	DefaultMaxNoActLength = 400
	ellipsis              = "..."
)

// Sanitizer applies the cleaning passes in their fixed order.
type Sanitizer struct {
	lib            *patterns.Library
	maxNoActLength int
}

// New builds a sanitizer; a non-positive maxNoActLength means the default.
func New(lib *patterns.Library, maxNoActLength int) *Sanitizer {
	if maxNoActLength <= 0 {
		maxNoActLength = DefaultMaxNoActLength
	}
	return &Sanitizer{lib: lib, maxNoActLength: maxNoActLength}
}

// Normalize composes accents so that gazette text exported with combining
// marks still matches the accented character classes of the patterns.
func Normalize(text string) string {
	return norm.NFC.String(text)
}

// Clean runs the act passes. The second result is false when the act only
// concerns junior positions and must not be published.
func (s *Sanitizer) Clean(act domain.Act) (domain.Act, bool) {
	if s.lib.Tiers.LowOnly(act.Text) {
		return act, false
	}
	return act.WithText(s.Rewrite(act.Text)), true
}

// Rewrite applies every textual pass after the tier filter. Identifiers go
// first: their digits would otherwise be read as role codes.
func (s *Sanitizer) Rewrite(text string) string {
	text = patterns.ApplyAll(s.lib.Identifiers, text)
	text = patterns.ApplyAll(s.lib.Verbs, text)
	text = s.lib.StandardizeRoleCodes(text)
	text = s.simplifyPreamble(text)
	text = patterns.ApplyAll(s.lib.Organizations, text)
	return s.lib.EffectiveDate.Apply(text)
}

// simplifyPreamble shortens dismissal clauses and drops appointment ones,
// depending on the verb the act now starts with.
func (s *Sanitizer) simplifyPreamble(text string) string {
	switch {
	case s.lib.Lead.IsExit(text):
		return patterns.ApplyAll(s.lib.ExitPreambles, text)
	case s.lib.Lead.IsEntry(text):
		return s.lib.EntryPreamble.Apply(text)
	default:
		return text
	}
}

// CleanNoAct drops the preamble of a document without acts and bounds
// its length.
func (s *Sanitizer) CleanNoAct(act domain.Act) domain.Act {
	text := s.lib.NoActPreamble.Apply(act.Text)
	return act.WithText(Truncate(text, s.maxNoActLength))
}

// Truncate keeps the first n characters and marks the cut with "...".
func Truncate(text string, n int) string {
	if utf8.RuneCountInString(text) <= n {
		return text
	}
	var b strings.Builder
	count := 0
	for _, r := range text {
		if count == n {
			break
		}
		b.WriteRune(r)
		count++
	}
	b.WriteString(ellipsis)
	return b.String()
}
