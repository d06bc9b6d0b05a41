package thread

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"GazetteDigest/internal/domain"
)

func day() time.Time {
	return time.Date(2022, time.March, 1, 9, 0, 0, 0, time.UTC)
}

const renderedDigest = "♟️ *Alterações em cargos altos (01/03)* ♟️\n\n" +
	"*Saúde*\n\n" +
	"🎩 Nomeia João Diretor (DAS 5).\nhttp://in.gov.br/1\n\n" +
	"▪️ Nomeia Ana Chefe.\nhttp://in.gov.br/3\n\n" +
	"*Economia Nacional*\n\n" +
	"💼 Exonera Maria (DAS 6).\nhttp://in.gov.br/2\n\n" +
	"*Gabinete Compartilhado Acredito*\n_Para se inscrever no boletim, acesse o link:_\nhttps://chat.whatsapp.com/abc" +
	"\n\n👑🎩🧢"

func TestPosts(t *testing.T) {
	t.Parallel()

	s := NewSplitter(day)
	posts, err := s.Posts(renderedDigest)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"#Economia_Nacional  #Cargo_Alto  #2022-03-01\n💼 Exonera Maria (DAS 6).\nhttp://in.gov.br/2",
		"#Saúde  #Cargo_Alto  #2022-03-01\n▪️ Nomeia Ana Chefe.\nhttp://in.gov.br/3",
		"#Saúde  #Cargo_Alto  #2022-03-01\n🎩 Nomeia João Diretor (DAS 5).\nhttp://in.gov.br/1",
	}, posts)

	s.Reverse = false
	ordered, err := s.Posts(renderedDigest)
	require.NoError(t, err)
	assert.Equal(t, posts[2], ordered[0])
}

func TestThreadHeader(t *testing.T) {
	t.Parallel()

	s := NewSplitter(day)
	posts, err := s.Posts(renderedDigest)
	require.NoError(t, err)

	thread := s.Thread(posts)
	require.Len(t, thread, 4)
	assert.Equal(t, "DOU 01/03/2022 - SEÇÃO 2 (alterações de pessoal)\n👇 (segue o fio)", thread[0])

	assert.Equal(t, posts[:1], s.Thread(posts[:1]), "a single post needs no header")
	assert.Equal(t, "DOU 01/03/2022 - EXTRA - SEÇÃO 1 (atos normativos)\n👇 (segue o fio)", Header(1, true, day()))
}

func TestExtraEdition(t *testing.T) {
	t.Parallel()

	msg := "📰 *Destaques do DOU - Extra (01/03)*\n\n*Economia*\n\n🧮 Regulamenta o drawback.\nhttp://in.gov.br/9"
	posts, err := NewSplitter(day).Posts(msg)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "#Economia  #Ato_Normativo  #Extra  #2022-03-01\n🧮 Regulamenta o drawback.\nhttp://in.gov.br/9", posts[0])

	section, extra := SectionOf(posts[0])
	assert.Equal(t, 1, section)
	assert.True(t, extra)
}

func TestUnknownTitle(t *testing.T) {
	t.Parallel()

	_, err := NewSplitter(day).Posts("Boletim qualquer\n\n*Economia*\n\ntexto\nhttp://x")
	assert.True(t, errors.Is(err, domain.ErrUnknownTitle))
}

func TestPostTooLong(t *testing.T) {
	t.Parallel()

	msg := "*Alterações em cargos altos*\n\n*Saúde*\n\n🎩 " + strings.Repeat("palavra ", 40) + "\nhttp://in.gov.br/1"
	_, err := NewSplitter(day).Posts(msg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrPostTooLong))

	var tooLong *domain.PostTooLongError
	require.True(t, errors.As(err, &tooLong))
	assert.Equal(t, DefaultMaxChars, tooLong.Limit)
	assert.Greater(t, tooLong.Length, DefaultMaxChars)
}

func TestLengthCountsLinksAndMarker(t *testing.T) {
	t.Parallel()

	s := NewSplitter(day)
	assert.Equal(t, 27, s.Length("ab http://x.y"))
	assert.Equal(t, 27, s.Length("ab https://a-much-longer-link.example.org/path"))
}

func TestTags(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "#Min_da_Saúde", TopicTag("*Min. da Saúde*"))
	assert.Equal(t, "", ExtraTag("Alterações em cargos altos"))

	tag, err := TitleTag("Atos do presidente (01/03)")
	require.NoError(t, err)
	assert.Equal(t, TagPresidential, tag)

	assert.Equal(t, "corpo", StripSpareMarkers("corpo\n\n👑🎩"))
	assert.Equal(t, "corpo\n\n*Rodapé*\nlink", StripSpareMarkers("corpo\n\n*Rodapé*\nlink"))
}
