// Package filesource reads gazette documents exported to a local file.
package filesource

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"GazetteDigest/internal/domain"
	"GazetteDigest/internal/infrastructure/parser"
	"GazetteDigest/internal/ports"
)

// record is the on-disk shape, named after the ranking sheet columns.
type record struct {
	ID        string `json:"identifica" yaml:"identifica"`
	Origin    string `json:"orgao" yaml:"orgao"`
	FullText  string `json:"fulltext" yaml:"fulltext"`
	Section   string `json:"secao" yaml:"secao"`
	Edition   string `json:"edicao" yaml:"edicao"`
	URL       string `json:"url" yaml:"url"`
	Relevance int    `json:"relevancia" yaml:"relevancia"`
	Label     string `json:"label" yaml:"label"`
}

// Source serves documents from a JSON or YAML file.
type Source struct {
	path string
}

var _ ports.DocumentSource = (*Source)(nil)

// New points the source at a file.
func New(path string) *Source {
	return &Source{path: path}
}

// FetchRanked returns every document in the file; the day only dates them.
func (s *Source) FetchRanked(ctx context.Context, day time.Time) ([]domain.Document, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read documents: %w", err)
	}

	var records []record
	switch strings.ToLower(filepath.Ext(s.path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(raw, &records)
	default:
		err = json.Unmarshal(raw, &records)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}

	docs := make([]domain.Document, 0, len(records))
	for i, rec := range records {
		text, err := parser.StripHTML(rec.FullText)
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
		id := rec.ID
		if id == "" {
			id = rec.URL
		}
		docs = append(docs, domain.Document{
			ID:          id,
			Origin:      rec.Origin,
			FullText:    text,
			Section:     rec.Section,
			Edition:     rec.Edition,
			URL:         rec.URL,
			Relevance:   rec.Relevance,
			Label:       rec.Label,
			PublishedAt: day,
		})
	}
	return docs, nil
}
