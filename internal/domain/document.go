package domain

import "time"

// Document is one gazette entry as retrieved from the ranking store.
type Document struct {
	ID        string
	Origin    string
	FullText  string
	Section   string
	Edition   string
	URL       string
	Relevance int
	// Label is optional; the classifier fills it when empty.
	Label       string
	PublishedAt time.Time
}

// Act is one publishable unit derived from a Document. Stages return
// modified copies; an Act is never shared between stages by pointer.
type Act struct {
	DocumentID string
	URL        string
	Text       string
	Label      string
	Importance int
	Marker     string
	// NoAct marks a whole document forwarded without trigger verbs.
	NoAct bool
}

// WithText returns a copy of the act carrying a new text.
func (a Act) WithText(text string) Act {
	a.Text = text
	return a
}

// WithLabel returns a copy of the act carrying a new label.
func (a Act) WithLabel(label string) Act {
	a.Label = label
	return a
}
