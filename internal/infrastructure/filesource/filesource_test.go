package filesource

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchRankedJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "docs.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
  {"identifica": "PORTARIA Nº 1", "orgao": "Ministério da Saúde", "fulltext": "<p>RESOLVE:</p><p>nomear João.</p>",
   "secao": "2", "edicao": "40", "url": "http://in.gov.br/1", "relevancia": 4},
  {"orgao": "Banco Central", "fulltext": "resolve: aprovar.", "url": "http://in.gov.br/2", "label": "Destaque"}
]`), 0o600))

	day := time.Date(2022, time.March, 1, 0, 0, 0, 0, time.UTC)
	docs, err := New(path).FetchRanked(context.Background(), day)
	require.NoError(t, err)
	require.Len(t, docs, 2)

	assert.Equal(t, "PORTARIA Nº 1", docs[0].ID)
	assert.Equal(t, "RESOLVE: nomear João.", docs[0].FullText)
	assert.Equal(t, 4, docs[0].Relevance)
	assert.Equal(t, day, docs[0].PublishedAt)

	assert.Equal(t, "http://in.gov.br/2", docs[1].ID, "url stands in for a missing identifier")
	assert.Equal(t, "Destaque", docs[1].Label)
}

func TestFetchRankedYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "docs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
- identifica: PORTARIA Nº 2
  orgao: Ministério da Defesa
  fulltext: "resolve: exonerar Ana."
  relevancia: 5
`), 0o600))

	docs, err := New(path).FetchRanked(context.Background(), time.Now())
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "Ministério da Defesa", docs[0].Origin)
	assert.Equal(t, "resolve: exonerar Ana.", docs[0].FullText)
}

func TestFetchRankedErrors(t *testing.T) {
	t.Parallel()

	_, err := New(filepath.Join(t.TempDir(), "missing.json")).FetchRanked(context.Background(), time.Now())
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o600))
	_, err = New(path).FetchRanked(context.Background(), time.Now())
	assert.Error(t, err)
}
