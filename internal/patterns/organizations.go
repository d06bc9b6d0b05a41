package patterns

import (
	"fmt"
	"regexp"
	"strings"
)

// Organization pairs a long name expression with its acronym.
type Organization struct {
	Name    string `yaml:"name"`
	Acronym string `yaml:"acronym"`
}

// DefaultOrganizations lists the bodies whose names are shortened.
var DefaultOrganizations = []Organization{
	{`Fundo Nacional de Desenvolvimento da Educa[cç][aã]o`, "FNDE"},
	{`Instituto Brasileiro do Meio Ambiente e dos Recursos Naturais Renov[aá]veis`, "IBAMA"},
	{`Instituto Chico Mendes de Conserva[cç][aã]o da Biodiversidade`, "ICMBio"},
	{`Instituto Nacional de Coloniza[cç][aã]o e Reforma Agr[aá]ria`, "INCRA"},
	{`Funda[cç][aã]o Nacional do [IÍ]ndio`, "FUNAI"},
	{`Coordena[cç][aã]o de Aperfei[cç]oamento de Pessoal de N[ií]vel Superior`, "CAPES"},
	{`Instituto Nacional de Estudos e Pesquisas Educacionais An[ií]sio Teixeira`, "INEP"},
	{`Conselho Nacional de Desenvolvimento Cient[ií]fico e Tecnol[oó]gico`, "CNPq"},
	{`Ag[eê]ncia Brasileira de Intelig[eê]ncia`, "ABIN"},
	{`Instituto Nacional do Seguro Social`, "INSS"},
	{`Fundação Instituto Brasileiro de Geografia e Estatística`, "IBGE"},
	{`Agência Nacional de Telecomunicações`, "ANATEL"},
}

// organizationRule matches the name with tolerant spacing, swallowing a
// trailing "(ACRONYM)" or "- ACRONYM" when present.
func organizationRule(org Organization) (Rule, error) {
	name := strings.ReplaceAll(org.Name, " ", `\s*?`)
	acronym := regexp.QuoteMeta(org.Acronym)
	re, err := Compile(name + `(?:[\s-]*\(?` + acronym + `\)?)?`)
	if err != nil {
		return Rule{}, fmt.Errorf("organization %s: %w", org.Acronym, err)
	}
	return Rule{Name: org.Acronym, Pattern: re, Replacement: org.Acronym}, nil
}

func organizationRules(orgs []Organization) ([]Rule, error) {
	rules := make([]Rule, 0, len(orgs))
	for _, org := range orgs {
		rule, err := organizationRule(org)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, nil
}
