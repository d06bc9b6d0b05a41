package patterns

// Library is the full, compiled rule catalogue. Build it once with
// Default and share it read-only.
type Library struct {
	Triggers      TriggerSet
	Tiers         TierFilter
	Identifiers   []Rule
	Verbs         []Rule
	RoleCodes     []RoleCodeRule
	Lead          LeadKind
	EntryPreamble Rule
	ExitPreambles []Rule
	Organizations []Rule
	EffectiveDate Rule
	NoActPreamble Rule
}

// Default returns the catalogue used for DOU section 2. It panics if the
// built-in organization list fails to compile.
func Default() *Library {
	lib, err := NewLibrary(DefaultOrganizations)
	if err != nil {
		panic(err)
	}
	return lib
}

// NewLibrary builds the catalogue with a custom organization list. A
// malformed organization name is reported as ErrInvalidPattern.
func NewLibrary(orgs []Organization) (*Library, error) {
	organizations, err := organizationRules(orgs)
	if err != nil {
		return nil, err
	}
	return &Library{
		Triggers:      NewTriggerSet(EntryVerbs, ExitVerbs),
		Tiers:         TierFilter{Low: lowTierExpr, High: highTierExpr},
		Identifiers:   identifierRules(),
		Verbs:         verbRules(),
		RoleCodes:     roleCodeRules(),
		Lead:          LeadKind{entry: entryLeadExpr, exit: exitLeadExpr},
		EntryPreamble: entryPreambleRule(),
		ExitPreambles: exitPreambleRules(),
		Organizations: organizations,
		EffectiveDate: effectiveDateRule(),
		NoActPreamble: noActPreambleRule(),
	}, nil
}

// StandardizeRoleCodes applies the role-code catalogue in order.
func (l *Library) StandardizeRoleCodes(text string) string {
	for _, rule := range l.RoleCodes {
		text = rule.Apply(text)
	}
	return text
}
