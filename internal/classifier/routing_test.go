package classifier

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadRoutingCSV(t *testing.T) {
	t.Parallel()

	raw := `regex,label,importance
Ministério da Saúde,Saúde,5
"Casa Civil|Secretaria-Geral",Presidência,9.5
,Vazio,1
Banco Central,Banco Central,
`
	records, err := ReadRoutingCSV(strings.NewReader(raw))
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, RuleRecord{Pattern: "Ministério da Saúde", Label: "Saúde", Importance: 5}, records[0])
	assert.Equal(t, "Casa Civil|Secretaria-Geral", records[1].Pattern)
	assert.Equal(t, 9.5, records[1].Importance)
	assert.Equal(t, 0.0, records[2].Importance)
}

func TestReadRoutingCSVErrors(t *testing.T) {
	t.Parallel()

	_, err := ReadRoutingCSV(strings.NewReader("pattern,name\nx,y\n"))
	assert.Error(t, err)

	_, err = ReadRoutingCSV(strings.NewReader("regex,label,importance\nx,y,alto\n"))
	assert.Error(t, err)
}

func TestLoadRoutingFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "routing.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(`
- pattern: Ministério da Defesa
  label: Defesa
  importance: 6
- pattern: Banco Central
  label: Banco Central
  importance: 3
`), 0o600))

	records, err := LoadRoutingFile(yamlPath)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Defesa", records[0].Label)
	assert.Equal(t, 3.0, records[1].Importance)

	csvPath := filepath.Join(dir, "routing.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("regex,label,importance\nAGU,AGU,2\n"), 0o600))
	records, err = LoadRoutingFile(csvPath)
	require.NoError(t, err)
	assert.Equal(t, []RuleRecord{{Pattern: "AGU", Label: "AGU", Importance: 2}}, records)

	_, err = LoadRoutingFile(filepath.Join(dir, "missing.csv"))
	assert.Error(t, err)
}
