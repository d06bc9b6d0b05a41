package patterns

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"GazetteDigest/internal/domain"
)

func TestTriggerSetSkipsConjugatedVerbs(t *testing.T) {
	t.Parallel()

	lib := Default()
	text := "RESOLVE: nomear Ana para Diretora. Os servidores nomearam Beto. exonerar Caio do cargo."

	got := lib.Triggers.Locate(text)

	require.Len(t, got, 2)
	assert.Equal(t, strings.Index(text, "nomear Ana"), got[0])
	assert.Equal(t, strings.Index(text, "exonerar"), got[1])
	assert.False(t, lib.Triggers.Contains("Os diretores designarão a comissão."))
	assert.True(t, lib.Triggers.Contains("DISPENSAR Fulano da função."))
}

func TestCompileReportsInvalidPattern(t *testing.T) {
	t.Parallel()

	_, err := Compile(`(unclosed`)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidPattern))

	re, err := Compile(`diretor`)
	require.NoError(t, err)
	assert.True(t, re.MatchString("DIRETOR"))

	exact, err := CompileExact(`Diretor`)
	require.NoError(t, err)
	assert.False(t, exact.MatchString("diretor"))
}

func TestIdentifierRules(t *testing.T) {
	t.Parallel()

	lib := Default()
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"siape", "Fulano, matrícula SIAPE nº 1234567, para", "Fulano para"},
		{"cpf", "Fulano, CPF nº ***.123.456-**, para", "Fulano para"},
		{"processo", "Fulano (Processo SEI nº 12345.678901/2021-11).", "Fulano."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ApplyAll(lib.Identifiers, tc.in))
		})
	}
}

func TestStandardizeRoleCodes(t *testing.T) {
	t.Parallel()

	lib := Default()
	cases := []struct {
		in   string
		want string
	}{
		{"Diretor, DAS 101.5", "Diretor (DAS 5)"},
		{"Diretor, código DAS 101.6", "Diretor (DAS 6)"},
		{"Coordenador, FCPE 101.4", "Coordenador (FCPE 4)"},
		{"Conselheiro, CGE II, do conselho", "Conselheiro (CGE II) do conselho"},
		{"Diretor (DAS 101.5).", "Diretor (DAS 5)."},
		{"Diretor (código DAS 101.4)", "Diretor (DAS 4)"},
		{"Assessor (CA-II), do gabinete", "Assessor (CA II) do gabinete"},
		{"Assessor (CA II)", "Assessor (CA II)"},
	}
	for _, tc := range cases {
		got := lib.StandardizeRoleCodes(tc.in)
		assert.Equal(t, tc.want, got, tc.in)
		assert.Equal(t, got, lib.StandardizeRoleCodes(got), "second pass must be stable for %q", tc.in)
	}
}

func TestTierFilter(t *testing.T) {
	t.Parallel()

	tiers := Default().Tiers
	assert.True(t, tiers.LowOnly("Assistente, DAS 101.2"))
	assert.False(t, tiers.LowOnly("Assistente, DAS 101.2, e Diretor, DAS 101.5"))
	assert.False(t, tiers.LowOnly("Diretor, FCPE 101.4"))
	assert.False(t, tiers.LowOnly("Chefe de gabinete"))
}

func TestOrganizationsKeepFollowingWords(t *testing.T) {
	t.Parallel()

	lib := Default()
	assert.Equal(t,
		"Presidente do FNDE para",
		ApplyAll(lib.Organizations, "Presidente do Fundo Nacional de Desenvolvimento da Educação - FNDE para"))
	assert.Equal(t,
		"Presidente do FNDE para",
		ApplyAll(lib.Organizations, "Presidente do Fundo Nacional de Desenvolvimento da Educação para"))
	assert.Equal(t,
		"Diretor do IBAMA.",
		ApplyAll(lib.Organizations, "Diretor do Instituto Brasileiro do Meio Ambiente e dos Recursos Naturais Renováveis (IBAMA)."))
}

func TestOrganizationsSwallowDashedAcronym(t *testing.T) {
	t.Parallel()

	lib := Default()
	cases := []struct {
		in   string
		want string
	}{
		{"Presidente do Instituto Nacional do Seguro Social - INSS, para", "Presidente do INSS, para"},
		{"Presidente do Instituto Nacional do Seguro Social-INSS.", "Presidente do INSS."},
		{"Diretor da Agência Brasileira de Inteligência -ABIN", "Diretor da ABIN"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ApplyAll(lib.Organizations, tc.in), tc.in)
	}
}

func TestNewLibraryRejectsMalformedOrganization(t *testing.T) {
	t.Parallel()

	_, err := NewLibrary([]Organization{{Name: "Fundo (", Acronym: "F"}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidPattern))

	lib, err := NewLibrary([]Organization{{Name: "Empresa Brasil", Acronym: "E.B."}})
	require.NoError(t, err)
	assert.Equal(t, "Diretor da E.B.", ApplyAll(lib.Organizations, "Diretor da Empresa Brasil (E.B.)"))
	assert.Equal(t, "Diretor da E.B. EXB", ApplyAll(lib.Organizations, "Diretor da Empresa Brasil EXB"))
}

func TestEffectiveDateRule(t *testing.T) {
	t.Parallel()

	rule := Default().EffectiveDate
	assert.Equal(t, "Nomeia Ana Diretora.", rule.Apply("Nomeia Ana Diretora, a partir de 1º de março de 2022."))
	assert.Equal(t, "Nomeia Ana Diretora.", rule.Apply("Nomeia Ana Diretora a contar de 01/02/2021."))
}

func TestLeadKind(t *testing.T) {
	t.Parallel()

	lead := Default().Lead
	assert.True(t, lead.IsEntry("Designa Ana"))
	assert.True(t, lead.IsExit("Dispensa Ana"))
	assert.False(t, lead.IsEntry("Aprova o regimento"))
}
