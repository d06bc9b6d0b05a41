package ranking

import (
	"sort"

	"github.com/agext/levenshtein"

	"GazetteDigest/internal/domain"
)

// BaseImportance looks up the static weight of a label.
type BaseImportance func(label string) (float64, bool)

// Orderer groups acts into sections and sorts them for presentation.
type Orderer struct {
	base BaseImportance
	// dedupDistance is the edit distance under which two acts of the same
	// section count as the same publication.
	dedupDistance int
}

// NewOrderer wires the label weight lookup. A nil lookup treats every label
// as unweighted.
func NewOrderer(base BaseImportance, dedupDistance int) *Orderer {
	if base == nil {
		base = func(string) (float64, bool) { return 0, false }
	}
	if dedupDistance < 0 {
		dedupDistance = 0
	}
	return &Orderer{base: base, dedupDistance: dedupDistance}
}

// Order returns sections sorted by (max, sum, base importance), all
// descending, with acts inside each section sorted by importance.
func (o *Orderer) Order(acts []domain.Act) []domain.Section {
	byLabel := map[string]*domain.Section{}
	var labels []string
	for _, act := range acts {
		section, ok := byLabel[act.Label]
		if !ok {
			section = &domain.Section{Label: act.Label}
			byLabel[act.Label] = section
			labels = append(labels, act.Label)
		}
		if o.isDuplicate(section.Acts, act) {
			continue
		}
		section.Acts = append(section.Acts, act)
	}

	// Ties between sections fall back to label order.
	sort.Strings(labels)

	sections := make([]domain.Section, 0, len(labels))
	for _, label := range labels {
		section := *byLabel[label]
		for i, act := range section.Acts {
			if i == 0 || act.Importance > section.MaxImportance {
				section.MaxImportance = act.Importance
			}
			section.SumImportance += act.Importance
		}
		section.BaseImportance, section.HasBase = o.base(label)
		sort.SliceStable(section.Acts, func(i, j int) bool {
			return section.Acts[i].Importance > section.Acts[j].Importance
		})
		sections = append(sections, section)
	}

	sort.SliceStable(sections, func(i, j int) bool {
		return Before(sections[i], sections[j])
	})
	return sections
}

// Before reports whether a is placed ahead of b. Labels without a base
// weight go after weighted ones on a (max, sum) tie.
func Before(a, b domain.Section) bool {
	if a.MaxImportance != b.MaxImportance {
		return a.MaxImportance > b.MaxImportance
	}
	if a.SumImportance != b.SumImportance {
		return a.SumImportance > b.SumImportance
	}
	if a.HasBase != b.HasBase {
		return a.HasBase
	}
	return a.BaseImportance > b.BaseImportance
}

func (o *Orderer) isDuplicate(kept []domain.Act, act domain.Act) bool {
	for _, prev := range kept {
		if prev.Text == act.Text {
			return true
		}
		if o.dedupDistance > 0 && prev.URL == act.URL &&
			levenshtein.Distance(prev.Text, act.Text, nil) <= o.dedupDistance {
			return true
		}
	}
	return false
}
