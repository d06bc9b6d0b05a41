// Package ranking scores acts and orders them into digest sections.
package ranking

import "strings"

// TagScore ties a canonical role-code tag to an importance.
type TagScore struct {
	Tag   string `yaml:"tag"`
	Score int    `yaml:"score"`
}

// DefaultScores lists higher tiers before lower ones sharing a prefix.
var DefaultScores = []TagScore{
	{Tag: "(DAS 6)", Score: 6},
	{Tag: "(DAS 5)", Score: 5},
	{Tag: "(DAS 4)", Score: 4},
	{Tag: "(FCPE 6)", Score: 6},
	{Tag: "(FCPE 5)", Score: 5},
	{Tag: "(FCPE 4)", Score: 4},
	{Tag: "(CGE I)", Score: 5},
	{Tag: "(CGE II)", Score: 4},
}

// Scorer maps standardized act text to an importance.
type Scorer struct {
	table []TagScore
}

// NewScorer uses DefaultScores when table is empty.
func NewScorer(table []TagScore) *Scorer {
	if len(table) == 0 {
		table = DefaultScores
	}
	return &Scorer{table: table}
}

// Score returns the score of the first listed tag found in text, or 0.
func (s *Scorer) Score(text string) int {
	for _, entry := range s.table {
		if strings.Contains(text, entry.Tag) {
			return entry.Score
		}
	}
	return 0
}
