package patterns

import (
	"regexp"
	"strings"
)

var (
	// EntryVerbs open an appointment-type act.
	EntryVerbs = []string{"nomear", "designar"}
	// ExitVerbs open a dismissal-type act.
	ExitVerbs = []string{"exonerar", "dispensar"}

	// Conjugated continuations that disqualify a trigger ("nomearam",
	// "nomeará", "designarão", "dispensarem").
	inflectionExpr = ci(`^(?:am|á|ão|em)`)
)

// TriggerSet finds act-opening verbs in a document.
type TriggerSet struct {
	expr *regexp.Regexp
}

// NewTriggerSet combines entry and exit verbs into one disjunction.
func NewTriggerSet(entry, exit []string) TriggerSet {
	verbs := make([]string, 0, len(entry)+len(exit))
	for _, v := range append(append([]string{}, entry...), exit...) {
		verbs = append(verbs, regexp.QuoteMeta(v))
	}
	return TriggerSet{expr: ci(`(?:` + strings.Join(verbs, "|") + `)`)}
}

// Locate returns the byte offsets of every trigger in text that is not
// immediately followed by a conjugation suffix.
func (t TriggerSet) Locate(text string) []int {
	var offsets []int
	for _, loc := range t.expr.FindAllStringIndex(text, -1) {
		if inflectionExpr.MatchString(text[loc[1]:]) {
			continue
		}
		offsets = append(offsets, loc[0])
	}
	return offsets
}

// Contains reports whether text has at least one qualifying trigger.
func (t TriggerSet) Contains(text string) bool {
	return len(t.Locate(text)) > 0
}
