package sanitizer

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"GazetteDigest/internal/domain"
	"GazetteDigest/internal/patterns"
	"GazetteDigest/internal/ranking"
)

func newSanitizer() *Sanitizer {
	return New(patterns.Default(), 0)
}

func TestCleanAppointment(t *testing.T) {
	t.Parallel()

	act := domain.Act{
		DocumentID: "1",
		Text:       "nomear João para exercer o cargo de Diretor, DAS 101.5, SIAPE 1234567, a partir de 1 de março de 2022.",
	}

	got, keep := newSanitizer().Clean(act)

	require.True(t, keep)
	assert.Equal(t, "Nomeia João Diretor (DAS 5).", got.Text)
	assert.Equal(t, "1", got.DocumentID)
	assert.NotEqual(t, got.Text, act.Text, "input act must not be modified")
}

func TestCleanDismissal(t *testing.T) {
	t.Parallel()

	got, keep := newSanitizer().Clean(domain.Act{
		Text: "exonerar Maria do cargo em comissão de Coordenadora-Geral, código DAS 101.4.",
	})

	require.True(t, keep)
	assert.Equal(t, "Exonera Maria do cargo de Coordenadora-Geral (DAS 4).", got.Text)
}

func TestCleanParenthesizedRoleCode(t *testing.T) {
	t.Parallel()

	s := newSanitizer()
	scorer := ranking.NewScorer(nil)
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"bare code", "nomear João para exercer o cargo de Diretor (DAS 101.5).", "Nomeia João Diretor (DAS 5)."},
		{"with codigo", "nomear João para exercer o cargo de Diretor (código DAS 101.5).", "Nomeia João Diretor (DAS 5)."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, keep := s.Clean(domain.Act{Text: tc.in})

			require.True(t, keep)
			assert.Equal(t, tc.want, got.Text)
			assert.Equal(t, 5, scorer.Score(got.Text))
			assert.Equal(t, got.Text, s.Rewrite(got.Text))
		})
	}
}

func TestCleanDropsLowTierActs(t *testing.T) {
	t.Parallel()

	_, keep := newSanitizer().Clean(domain.Act{
		Text: "nomear José para exercer o cargo de Assistente, DAS 101.2.",
	})
	assert.False(t, keep)
}

func TestRewriteIsIdempotent(t *testing.T) {
	t.Parallel()

	s := newSanitizer()
	inputs := []string{
		"nomear João para exercer o cargo de Diretor, DAS 101.5, SIAPE 1234567, a partir de 1 de março de 2022.",
		"exonerar Maria do cargo em comissão de Coordenadora-Geral, código DAS 101.4.",
		"designar Ana para exercer a função de Conselheira, CGE II, do Conselho.",
		"nomear Beto para exercer o cargo de Diretor (DAS 101.6).",
	}
	for _, in := range inputs {
		once := s.Rewrite(in)
		assert.Equal(t, once, s.Rewrite(once), in)
	}
}

func TestCleanNoAct(t *testing.T) {
	t.Parallel()

	s := newSanitizer()
	got := s.CleanNoAct(domain.Act{Text: "O SECRETÁRIO, no uso de suas atribuições, resolve: Aprovar o regimento interno.", NoAct: true})
	assert.Equal(t, "Aprovar o regimento interno.", got.Text)
	assert.True(t, got.NoAct)

	long := s.CleanNoAct(domain.Act{Text: strings.Repeat("ação ", 200)})
	assert.LessOrEqual(t, utf8.RuneCountInString(long.Text), DefaultMaxNoActLength+3)
	assert.True(t, strings.HasSuffix(long.Text, "..."))
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "curto", Truncate("curto", 10))
	assert.Equal(t, "ação...", Truncate("ação coordenada", 4))
	assert.Equal(t, "abc", Truncate("abc", 3))
}

func TestNormalizeComposesAccents(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Educa\u00e7\u00e3o", Normalize("Educac\u0327a\u0303o"))
}
