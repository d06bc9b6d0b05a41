package patterns

import "regexp"

// verbRules move trigger verbs from the infinitive to the present tense.
func verbRules() []Rule {
	forms := []struct{ infinitive, present string }{
		{"nomear", "Nomeia"},
		{"exonerar", "Exonera"},
		{"designar", "Designa"},
		{"dispensar", "Dispensa"},
	}
	rules := make([]Rule, 0, len(forms))
	for _, f := range forms {
		rules = append(rules, Rule{
			Name:        f.infinitive,
			Pattern:     ci(f.infinitive + ` ?(,?)\s*`),
			Replacement: f.present + "${1} ",
		})
	}
	return rules
}

var (
	entryLeadExpr = ci(`^(?:nomeia|designa)`)
	exitLeadExpr  = ci(`^(?:exonera|dispensa)`)
)

func entryPreambleRule() Rule {
	start := `,?\s*?para\s*?(?:exercer|ocupar)\s*?`
	comissao := `o?\s*?cargo\s*?(?:em\s*?comiss[aã]o|comissionado)?`
	funcao := `a?\s*?fun[cç][aã]o(?:\s*?comissionada)?(?:\s*?do\s*?poder\s*?executivo)?`
	end := `\s*?de`
	return Rule{
		Name:    "entry-preamble",
		Pattern: ci(`(` + start + `(?:` + funcao + `|` + comissao + `)` + end + `)`),
	}
}

func exitPreambleRules() []Rule {
	return []Rule{
		{
			Name:        "exit-cargo",
			Pattern:     ci(`(do\s*?cargo\s*?(?:em\s*?comissão|comissionado)?\s*?de)`),
			Replacement: "do cargo de",
		},
		{
			Name:        "exit-funcao",
			Pattern:     ci(`(da\s*?função\s*?comissionada\s*?(?:do\s*?poder\s*?executivo)?\s*?de)`),
			Replacement: "da função de",
		},
	}
}

// LeadKind classifies normalized act text by its leading verb.
type LeadKind struct {
	entry *regexp.Regexp
	exit  *regexp.Regexp
}

// IsEntry reports an act starting with Nomeia or Designa.
func (l LeadKind) IsEntry(text string) bool { return l.entry.MatchString(text) }

// IsExit reports an act starting with Exonera or Dispensa.
func (l LeadKind) IsExit(text string) bool { return l.exit.MatchString(text) }
