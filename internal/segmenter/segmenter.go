// Package segmenter splits a gazette document into the individual acts it
// contains, one per trigger verb.
package segmenter

import (
	"GazetteDigest/internal/domain"
	"GazetteDigest/internal/patterns"
)

// Segmenter cuts documents at trigger verbs.
type Segmenter struct {
	triggers patterns.TriggerSet
}

// New wires the trigger set from the pattern library.
func New(lib *patterns.Library) *Segmenter {
	return &Segmenter{triggers: lib.Triggers}
}

// HasActs reports whether the document goes through segmentation at all.
func (s *Segmenter) HasActs(text string) bool {
	return s.triggers.Contains(text)
}

// Split returns one act per qualifying trigger. The text before the first
// trigger is dropped; every act keeps the document's identity.
func (s *Segmenter) Split(doc domain.Document) []domain.Act {
	offsets := s.triggers.Locate(doc.FullText)
	if len(offsets) == 0 {
		return nil
	}

	acts := make([]domain.Act, 0, len(offsets))
	for i, start := range offsets {
		end := len(doc.FullText)
		if i+1 < len(offsets) {
			end = offsets[i+1]
		}
		acts = append(acts, domain.Act{
			DocumentID: doc.ID,
			URL:        doc.URL,
			Label:      doc.Label,
			Text:       TrimTail(doc.FullText[start:end]),
		})
	}
	return acts
}

// TrimTail cuts a segment at its first sentence end and re-appends the
// period. A period is not a sentence end when it follows "rt" (Art.) or a
// standalone "n" (n.), or when a digit or asterisk comes right after it.
// Segments without a sentence end are kept whole.
func TrimTail(segment string) string {
	for i := 0; i < len(segment); i++ {
		if segment[i] != '.' || !isSentenceEnd(segment, i) {
			continue
		}
		return segment[:i] + "."
	}
	return segment + "."
}

func isSentenceEnd(text string, i int) bool {
	if i >= 2 {
		prev2, prev1 := lower(text[i-2]), lower(text[i-1])
		if prev2 == 'r' && prev1 == 't' {
			return false
		}
		if prev2 == ' ' && prev1 == 'n' {
			return false
		}
	}
	if i+1 == len(text) {
		return true
	}
	next := text[i+1]
	return !(next >= '0' && next <= '9') && next != '*'
}

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}
