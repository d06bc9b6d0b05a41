package digest

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"GazetteDigest/internal/domain"
)

func fixedNow() time.Time {
	return time.Date(2022, time.March, 1, 9, 0, 0, 0, time.UTC)
}

func testOptions() Options {
	return Options{
		Title:        "Alterações em cargos altos",
		FooterName:   "Gabinete",
		CallToAction: "Inscreva-se:",
		Links:        []string{"https://example.org/join"},
		SpareMarkers: "👑🎩",
	}
}

func TestNewRendererRequiresLinks(t *testing.T) {
	t.Parallel()

	opts := testOptions()
	opts.Links = nil
	_, err := NewRenderer(opts, nil, nil)
	assert.True(t, errors.Is(err, domain.ErrEmptyLinkPool))
}

func TestRender(t *testing.T) {
	t.Parallel()

	r, err := NewRenderer(testOptions(), nil, fixedNow)
	require.NoError(t, err)

	sections := []domain.Section{
		{Label: "Economia", Acts: []domain.Act{
			{Marker: "💼", Text: "Exonera Maria (DAS 6).", URL: "http://in.gov.br/2"},
		}},
		{Label: "Saúde", Acts: []domain.Act{
			{Marker: "🎩", Text: "Nomeia João Diretor (DAS 5).", URL: "http://in.gov.br/1"},
			{Marker: "▪️", Text: "Nomeia Ana Chefe.", URL: "http://in.gov.br/3"},
		}},
	}

	want := "♟️ *Alterações em cargos altos (01/03)* ♟️\n\n" +
		"*Economia*\n\n" +
		"💼 Exonera Maria (DAS 6).\nhttp://in.gov.br/2\n\n" +
		"*Saúde*\n\n" +
		"🎩 Nomeia João Diretor (DAS 5).\nhttp://in.gov.br/1\n\n" +
		"▪️ Nomeia Ana Chefe.\nhttp://in.gov.br/3\n\n" +
		"*Gabinete*\n_Inscreva-se:_\nhttps://example.org/join" +
		"\n\n👑🎩"
	assert.Equal(t, want, r.Render(sections))
}

func TestRenderEmptyDigestHasHeaderAndFooter(t *testing.T) {
	t.Parallel()

	opts := testOptions()
	opts.SpareMarkers = ""
	r, err := NewRenderer(opts, nil, fixedNow)
	require.NoError(t, err)

	got := r.Render(nil)
	assert.True(t, strings.HasPrefix(got, "♟️ *Alterações em cargos altos (01/03)* ♟️\n\n*Gabinete*"))
	assert.True(t, strings.HasSuffix(got, "https://example.org/join"))
}

func TestSeededLinkChoiceIsReproducible(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	render := func() string {
		r, err := NewRenderer(opts, rand.New(rand.NewPCG(7, 7)), fixedNow)
		require.NoError(t, err)
		return r.Render(nil)
	}

	first := render()
	assert.Equal(t, first, render())

	var found bool
	for _, link := range opts.Links {
		found = found || strings.Contains(first, link)
	}
	assert.True(t, found)
}

func TestFileName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "dou_2_2022-03-01.txt", FileName(2, fixedNow()))
}
