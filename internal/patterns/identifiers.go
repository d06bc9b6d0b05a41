package patterns

// identifierRules strip personnel and case identifiers together with the
// punctuation around them.
func identifierRules() []Rule {
	return []Rule{
		{
			Name:    "siape",
			Pattern: ci(`,?\s*?(?:(?:matr[íi]cula)?\s*siape(?:cad)?|matr[íi]cula)\s*?n?.?\s*?(\d{5,7}),?`),
		},
		{
			Name:    "cpf",
			Pattern: ci(`,?\s*?cpf\s*?n?\.?.?\s*?([\d.*-]{14,18}),?`),
		},
		{
			Name:    "codigo",
			Pattern: ci(`,?\s*?c[oó]digo\s*?n.? ?[\.\d]{5,7},?`),
		},
		{
			Name:    "processo",
			Pattern: ci(`(?:,?\s*?conforme\s*?|[\s\-.]*?)\(?Processo\s*?(?:SEI)?\s*?n?.?\s*?[\d.\-/]{15,20}\)?`),
		},
	}
}
