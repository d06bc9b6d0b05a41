// Package thread turns a rendered digest into a thread of short social
// posts, one per act, tagged with section, bulletin and date.
package thread

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"GazetteDigest/internal/domain"
)

const (
	TagNormative    = "#Ato_Normativo"
	TagHighOffice   = "#Cargo_Alto"
	TagPresidential = "#Ato_Presidencial"
	TagExtra        = "#Extra"

	DefaultMaxChars  = 280
	DefaultLinkSize  = 23
	DefaultMarkerLen = 2
	DefaultFooter    = "Gabinete Compartilhado Acredito"
)

var titleTags = []struct {
	segment string
	tag     string
}{
	{"Destaques do DOU", TagNormative},
	{"cargos altos", TagHighOffice},
	{"Atos do presidente", TagPresidential},
}

var (
	linkExpr       = regexp.MustCompile(`https?://\S+`)
	spareTrailExpr = regexp.MustCompile(`\n\n[^\n]*\n?$`)
)

// Splitter cuts digests into posts.
type Splitter struct {
	MaxChars  int
	LinkSize  int
	MarkerLen int
	// Footer identifies the trailing subscription block, which is not posted.
	Footer  string
	Reverse bool
	Now     func() time.Time
}

// NewSplitter returns a splitter with the platform limits and reversed
// output, so that the first act ends up on top of the thread.
func NewSplitter(now func() time.Time) *Splitter {
	if now == nil {
		now = time.Now
	}
	return &Splitter{
		MaxChars:  DefaultMaxChars,
		LinkSize:  DefaultLinkSize,
		MarkerLen: DefaultMarkerLen,
		Footer:    DefaultFooter,
		Reverse:   true,
		Now:       now,
	}
}

// TitleTag maps the digest title to its bulletin hashtag.
func TitleTag(title string) (string, error) {
	for _, tt := range titleTags {
		if strings.Contains(title, tt.segment) {
			return tt.tag, nil
		}
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnknownTitle, title)
}

// ExtraTag marks posts from extra editions.
func ExtraTag(title string) string {
	if strings.Contains(title, "Extra") {
		return TagExtra
	}
	return ""
}

// TopicTag turns a section line such as "*Ministério da Saúde*" into a
// hashtag.
func TopicTag(topic string) string {
	r := strings.NewReplacer("*", "", " ", "_", ".", "")
	return "#" + r.Replace(topic)
}

// StripSpareMarkers removes the single-line trailer that follows the footer.
func StripSpareMarkers(message string) string {
	return spareTrailExpr.ReplaceAllString(message, "")
}

// Posts splits a full digest into posts and checks each against the limit.
func (s *Splitter) Posts(message string) ([]string, error) {
	message = StripSpareMarkers(message)

	blocks := strings.Split(message, "\n\n")
	title := strings.TrimSpace(blocks[0])
	titleTag, err := TitleTag(title)
	if err != nil {
		return nil, err
	}
	extraTag := ExtraTag(title)
	body := strings.Join(blocks[1:], "\n\n")

	var posts []string
	for _, topic := range strings.Split(body, "\n*") {
		topicPosts, err := s.topicPosts(titleTag, topic, extraTag)
		if err != nil {
			return nil, err
		}
		posts = append(posts, topicPosts...)
	}

	if s.Reverse {
		for i, j := 0, len(posts)-1; i < j; i, j = i+1, j-1 {
			posts[i], posts[j] = posts[j], posts[i]
		}
	}
	return posts, nil
}

func (s *Splitter) topicPosts(titleTag, topic, extraTag string) ([]string, error) {
	blocks := strings.Split(topic, "\n\n")

	var topicTag string
	if head := strings.TrimSpace(blocks[0]); isTopicLine(head) {
		topicTag = TopicTag(head)
		blocks = blocks[1:]
	}

	var items []string
	for _, block := range blocks {
		if strings.TrimSpace(block) != "" {
			items = append(items, block)
		}
	}
	if n := len(items); n > 0 && s.Footer != "" && strings.Contains(items[n-1], s.Footer) {
		items = items[:n-1]
	}

	posts := make([]string, 0, len(items))
	for _, item := range items {
		post := s.build(titleTag, topicTag, item, extraTag)
		if err := s.check(post); err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, nil
}

// isTopicLine reports whether the first '*' after position 0 closes the line.
func isTopicLine(head string) bool {
	if len(head) < 2 {
		return false
	}
	idx := strings.IndexByte(head[1:], '*')
	return idx >= 0 && idx+1 == len(head)-1
}

func (s *Splitter) build(titleTag, topicTag, item, extraTag string) string {
	if extraTag != "" {
		extraTag = "  " + extraTag
	}
	dateTag := s.Now().Format("#2006-01-02")
	post := topicTag + "  " + titleTag + extraTag + "  " + dateTag + "\n" + item
	return strings.TrimSpace(post)
}

// Length counts a post the way the platform does: links weigh a fixed size
// and the leading marker counts as MarkerLen characters.
func (s *Splitter) Length(post string) int {
	counted := linkExpr.ReplaceAllString(post, strings.Repeat("x", s.LinkSize))
	return utf8.RuneCountInString(counted) - 1 + s.MarkerLen
}

func (s *Splitter) check(post string) error {
	if n := s.Length(post); n > s.MaxChars {
		return &domain.PostTooLongError{Post: post, Length: n, Limit: s.MaxChars}
	}
	return nil
}

// Header opens a thread for a gazette section on day.
func Header(section int, extra bool, day time.Time) string {
	extraTag := ""
	if extra {
		extraTag = "- EXTRA "
	}
	description := "(alterações de pessoal)"
	if section == 1 {
		description = "(atos normativos)"
	}
	return fmt.Sprintf("DOU %s %s- SEÇÃO %d %s\n👇 (segue o fio)", day.Format("02/01/2006"), extraTag, section, description)
}

// SectionOf guesses the gazette section and edition type from a post's tags.
// Section is 0 when no known tag is present.
func SectionOf(post string) (section int, extra bool) {
	switch {
	case strings.Contains(post, TagNormative), strings.Contains(post, TagPresidential):
		section = 1
	case strings.Contains(post, TagHighOffice):
		section = 2
	}
	return section, strings.Contains(post, TagExtra)
}

// Thread prefixes posts with a header when there is more than one of them.
func (s *Splitter) Thread(posts []string) []string {
	if len(posts) < 2 {
		return posts
	}
	section, extra := SectionOf(posts[0])
	out := make([]string, 0, len(posts)+1)
	out = append(out, Header(section, extra, s.Now()))
	return append(out, posts...)
}
