// Package digest renders ordered sections into the message text shared on
// messaging groups.
package digest

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"GazetteDigest/internal/domain"
)

// Options configures the fixed parts of the message.
type Options struct {
	Title        string   `yaml:"title"`
	FooterName   string   `yaml:"footerName"`
	CallToAction string   `yaml:"footerCallToAction"`
	Links        []string `yaml:"links"`
	SpareMarkers string   `yaml:"spareMarkers"`
}

// DefaultOptions mirrors the section 2 bulletin.
func DefaultOptions() Options {
	return Options{
		Title:        "Alterações em cargos altos",
		FooterName:   "Gabinete Compartilhado Acredito",
		CallToAction: "Para se inscrever no boletim, acesse o link:",
		Links: []string{
			"https://chat.whatsapp.com/B4oeQM4Ji74Kr4Xm99BIZY",
			"https://chat.whatsapp.com/HgmP8M6xl95GZV36QXSVYq",
			"https://chat.whatsapp.com/JjS23bAbI1f8cVVEHL0RPK",
			"https://chat.whatsapp.com/Jr6o6AVvbIF3aU9un6yT67",
			"https://chat.whatsapp.com/IzlCqLTbLavFpI1V873e5G",
		},
		SpareMarkers: "👑🎩🧢👨🏻‍✈️💬▪️💼⚖🎓️➕",
	}
}

// Renderer writes the digest. The random source picks the footer link.
type Renderer struct {
	opts Options
	rng  *rand.Rand
	now  func() time.Time
}

// NewRenderer fails when there is no subscription link to pick from.
func NewRenderer(opts Options, rng *rand.Rand, now func() time.Time) (*Renderer, error) {
	if len(opts.Links) == 0 {
		return nil, domain.ErrEmptyLinkPool
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	if now == nil {
		now = time.Now
	}
	return &Renderer{opts: opts, rng: rng, now: now}, nil
}

// Date is the day the digest is dated with.
func (r *Renderer) Date() time.Time {
	return r.now()
}

// Header is the title line, dated with the current day.
func (r *Renderer) Header() string {
	return fmt.Sprintf("♟️ *%s (%s)* ♟️\n\n", r.opts.Title, r.Date().Format("02/01"))
}

// Render assembles header, sections, footer and the spare marker trailer.
func (r *Renderer) Render(sections []domain.Section) string {
	var b strings.Builder
	b.WriteString(r.Header())

	for _, section := range sections {
		fmt.Fprintf(&b, "*%s*\n\n", section.Label)
		for _, act := range section.Acts {
			fmt.Fprintf(&b, "%s %s\n%s\n\n", act.Marker, act.Text, act.URL)
		}
	}

	fmt.Fprintf(&b, "*%s*\n_%s_\n%s", r.opts.FooterName, r.opts.CallToAction, r.pickLink())
	if r.opts.SpareMarkers != "" {
		b.WriteString("\n\n" + r.opts.SpareMarkers)
	}
	return b.String()
}

func (r *Renderer) pickLink() string {
	return r.opts.Links[r.rng.IntN(len(r.opts.Links))]
}

// FileName names the saved post of a gazette section for day.
func FileName(section int, day time.Time) string {
	return fmt.Sprintf("dou_%d_%s.txt", section, day.Format("2006-01-02"))
}
