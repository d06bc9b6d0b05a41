// Package classifier files documents and acts under section labels using
// an ordered routing table.
package classifier

import (
	"fmt"
	"slices"

	lru "github.com/hashicorp/golang-lru/v2"
)

const (
	// DefaultLabel is used when no routing rule matches.
	DefaultLabel = "Outros"
	cacheSize    = 1024
)

// DefaultPlaceholderLabels are re-examined against the act's own text.
var DefaultPlaceholderLabels = []string{"Atos do Executivo", "Presidência"}

// Classifier assigns labels; it is safe to reuse across runs.
type Classifier struct {
	table        *RoutingTable
	minister     *RoutingTable
	placeholders []string
	origins      *lru.Cache[string, string]
}

// New builds a classifier. An empty placeholders list means the defaults.
func New(table *RoutingTable, placeholders []string) (*Classifier, error) {
	if table == nil {
		return nil, fmt.Errorf("classifier: routing table is required")
	}
	if len(placeholders) == 0 {
		placeholders = DefaultPlaceholderLabels
	}
	cache, err := lru.New[string, string](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("classifier cache: %w", err)
	}
	return &Classifier{
		table:        table,
		minister:     table.MinisterVariant(),
		placeholders: placeholders,
		origins:      cache,
	}, nil
}

// Table returns the routing table in use.
func (c *Classifier) Table() *RoutingTable {
	return c.table
}

// Label files an origin under the first matching rule, or DefaultLabel.
func (c *Classifier) Label(origin string) string {
	if label, ok := c.origins.Get(origin); ok {
		return label
	}
	label := DefaultLabel
	for _, rule := range c.table.rules {
		if rule.Pattern.MatchString(origin) {
			label = rule.Label
			break
		}
	}
	c.origins.Add(origin, label)
	return label
}

// Relabel re-files an act currently under a placeholder label by matching
// the routing table against the act text, then the minister variant of the
// table. A rule applies only while the label is still a placeholder, so a
// rule whose own label is a placeholder lets later rules keep looking.
func (c *Classifier) Relabel(label, text string) string {
	label = c.pass(c.table, label, text)
	return c.pass(c.minister, label, text)
}

func (c *Classifier) pass(table *RoutingTable, label, text string) string {
	for _, rule := range table.rules {
		if !slices.Contains(c.placeholders, label) {
			return label
		}
		if rule.Pattern.MatchString(text) {
			label = rule.Label
		}
	}
	return label
}
