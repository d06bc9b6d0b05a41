package parser

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"GazetteDigest/internal/ports"
)

// Selectors tried in order for the body of a gazette page.
var contentSelectors = []string{"div.texto-dou", "article", "body"}

// PageFetcher downloads a gazette page and extracts its legal text.
type PageFetcher struct {
	client *http.Client
}

var _ ports.TextFetcher = (*PageFetcher)(nil)

// NewPageFetcher wires an HTTP client; nil means a 20s-timeout default.
func NewPageFetcher(client *http.Client) *PageFetcher {
	if client == nil {
		client = &http.Client{Timeout: 20 * time.Second}
	}
	return &PageFetcher{client: client}
}

// FetchText returns the page's paragraphs joined by spaces.
func (p *PageFetcher) FetchText(ctx context.Context, pageURL string) (string, error) {
	doc, err := p.fetchDocument(ctx, pageURL)
	if err != nil {
		return "", err
	}
	return ExtractText(doc), nil
}

func (p *PageFetcher) fetchDocument(ctx context.Context, pageURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", "GazetteDigest/1.0")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gazette returned %s", resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	return doc, nil
}

// ExtractText collects paragraph text from the first content container
// found, falling back to the container's whole text.
func ExtractText(doc *goquery.Document) string {
	for _, selector := range contentSelectors {
		container := doc.Find(selector).First()
		if container.Length() == 0 {
			continue
		}

		var parts []string
		container.Find("p").Each(func(_ int, p *goquery.Selection) {
			if text := collapseSpaces(p.Text()); text != "" {
				parts = append(parts, text)
			}
		})
		if len(parts) == 0 {
			if text := collapseSpaces(container.Text()); text != "" {
				return text
			}
			continue
		}
		return strings.Join(parts, " ")
	}
	return ""
}

// StripHTML reduces an HTML fragment to its text; plain text passes
// through untouched.
func StripHTML(fragment string) (string, error) {
	if !strings.Contains(fragment, "<") {
		return fragment, nil
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return "", fmt.Errorf("parse fragment: %w", err)
	}
	return ExtractText(doc), nil
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
