package domain

import "time"

// Section groups acts sharing a label with the stats used for ordering.
type Section struct {
	Label          string
	Acts           []Act
	MaxImportance  int
	SumImportance  int
	BaseImportance float64
	// HasBase is false when the label is missing from the routing table.
	HasBase bool
}

// Digest is the ordered content of a rendered message.
type Digest struct {
	Date     time.Time
	Sections []Section
	Text     string
}

// DocumentIDs lists the distinct source documents present in the digest.
func (d Digest) DocumentIDs() []string {
	seen := map[string]struct{}{}
	var ids []string
	for _, section := range d.Sections {
		for _, act := range section.Acts {
			if _, ok := seen[act.DocumentID]; ok {
				continue
			}
			seen[act.DocumentID] = struct{}{}
			ids = append(ids, act.DocumentID)
		}
	}
	return ids
}

// DigestRecord is persisted after a digest is published.
type DigestRecord struct {
	ID          string
	Day         time.Time
	Text        string
	DocumentIDs []string
	CreatedAt   time.Time
}
