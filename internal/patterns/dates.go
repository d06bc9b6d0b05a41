package patterns

import "strings"

var monthNames = []string{
	"janeiro", "fevereiro", "mar[cç]o", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// effectiveDateRule drops "a partir de <date>" and "a contar de <date>".
func effectiveDateRule() Rule {
	month := `(?:` + strings.Join(monthNames, "|") + `)`
	expr := `,? a (?:partir|contar) de (?:\d{1,2}.? de ` + month + ` de (?:20|19)\d{2}|\d{1,2}/\d{1,2}/\d{4}),?`
	return Rule{Name: "effective-date", Pattern: ci(spaced(expr))}
}

// noActPreambleRule drops everything up to the resolution marker.
func noActPreambleRule() Rule {
	return Rule{Name: "resolve-preamble", Pattern: ci(`^.*?resolve:\s*`)}
}
