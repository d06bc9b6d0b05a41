// Package patterns holds the ordered regular-expression catalogue shared by
// every stage of the act pipeline. Rules are plain data: a compiled pattern
// and what replaces its matches. Order inside each list is significant.
package patterns

import (
	"fmt"
	"regexp"
	"strings"

	"GazetteDigest/internal/domain"
)

// Rule replaces every match of Pattern with Replacement.
type Rule struct {
	Name        string
	Pattern     *regexp.Regexp
	Replacement string
}

// Apply runs the rule over text.
func (r Rule) Apply(text string) string {
	return r.Pattern.ReplaceAllString(text, r.Replacement)
}

// ApplyAll runs rules in order, each over the previous output.
func ApplyAll(rules []Rule, text string) string {
	for _, rule := range rules {
		text = rule.Apply(text)
	}
	return text
}

// Compile builds a case-insensitive pattern from a table entry, reporting
// ErrInvalidPattern with the offending expression.
func Compile(expr string) (*regexp.Regexp, error) {
	re, err := regexp.Compile("(?i)" + expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", domain.ErrInvalidPattern, expr, err)
	}
	return re, nil
}

// CompileExact is Compile without case folding.
func CompileExact(expr string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", domain.ErrInvalidPattern, expr, err)
	}
	return re, nil
}

func ci(expr string) *regexp.Regexp {
	return regexp.MustCompile("(?i)" + expr)
}

// spaced turns literal spaces into lazy whitespace runs.
func spaced(expr string) string {
	return strings.ReplaceAll(expr, " ", `\s*?`)
}
