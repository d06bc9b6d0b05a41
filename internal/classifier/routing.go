package classifier

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"GazetteDigest/internal/patterns"
)

const (
	ministryExpr = "Ministério"
	ministerExpr = "Ministr[ao] de Estado"
)

// RuleRecord is one row of the routing table as stored in configuration.
type RuleRecord struct {
	Pattern    string  `yaml:"pattern"`
	Label      string  `yaml:"label"`
	Importance float64 `yaml:"importance"`
}

// Rule is a compiled routing row.
type Rule struct {
	Expr           string
	Pattern        *regexp.Regexp
	Label          string
	BaseImportance float64
}

// RoutingTable is an ordered list of rules; order decides the outcome.
type RoutingTable struct {
	rules []Rule
}

// NewRoutingTable compiles records keeping their order. Patterns are case
// sensitive, as origin names are.
func NewRoutingTable(records []RuleRecord) (*RoutingTable, error) {
	rules := make([]Rule, 0, len(records))
	for i, rec := range records {
		re, err := patterns.CompileExact(rec.Pattern)
		if err != nil {
			return nil, fmt.Errorf("routing rule %d (%s): %w", i, rec.Label, err)
		}
		rules = append(rules, Rule{
			Expr:           rec.Pattern,
			Pattern:        re,
			Label:          rec.Label,
			BaseImportance: rec.Importance,
		})
	}
	return &RoutingTable{rules: rules}, nil
}

// Rules exposes the compiled rules in table order.
func (t *RoutingTable) Rules() []Rule {
	return t.rules
}

// BaseImportance returns the static weight of the first rule with label.
func (t *RoutingTable) BaseImportance(label string) (float64, bool) {
	for _, rule := range t.rules {
		if rule.Label == label {
			return rule.BaseImportance, true
		}
	}
	return 0, false
}

// MinisterVariant keeps only ministry rules and rewrites them to match
// "Ministro de Estado da ..." phrasing inside act text.
func (t *RoutingTable) MinisterVariant() *RoutingTable {
	var rules []Rule
	for _, rule := range t.rules {
		if !strings.Contains(rule.Expr, ministryExpr) {
			continue
		}
		expr := strings.ReplaceAll(rule.Expr, ministryExpr, ministerExpr)
		re, err := regexp.Compile(expr)
		if err != nil {
			continue
		}
		rules = append(rules, Rule{
			Expr:           expr,
			Pattern:        re,
			Label:          rule.Label,
			BaseImportance: rule.BaseImportance,
		})
	}
	return &RoutingTable{rules: rules}
}

// LoadRoutingFile reads a routing table from CSV (columns regex, label,
// importance) or YAML (list of pattern/label/importance), by extension.
func LoadRoutingFile(path string) ([]RuleRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open routing table: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var records []RuleRecord
		if err := yaml.NewDecoder(f).Decode(&records); err != nil {
			return nil, fmt.Errorf("decode routing yaml: %w", err)
		}
		return records, nil
	default:
		return ReadRoutingCSV(f)
	}
}

// ReadRoutingCSV parses the spreadsheet export of the routing table.
func ReadRoutingCSV(r io.Reader) ([]RuleRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read routing header: %w", err)
	}
	cols := map[string]int{}
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	regexCol, okRegex := cols["regex"]
	labelCol, okLabel := cols["label"]
	if !okRegex || !okLabel {
		return nil, fmt.Errorf("routing table needs regex and label columns, got %v", header)
	}
	importanceCol, hasImportance := cols["importance"]

	var records []RuleRecord
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read routing line %d: %w", line, err)
		}
		rec := RuleRecord{Pattern: field(row, regexCol), Label: field(row, labelCol)}
		if rec.Pattern == "" {
			continue
		}
		if hasImportance {
			if raw := field(row, importanceCol); raw != "" {
				v, err := strconv.ParseFloat(raw, 64)
				if err != nil {
					return nil, fmt.Errorf("routing line %d: importance %q: %w", line, raw, err)
				}
				rec.Importance = v
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

func field(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// DefaultRules is the routing table used when none is configured.
func DefaultRules() []RuleRecord {
	return []RuleRecord{
		{Pattern: `Atos do Poder Executivo`, Label: "Atos do Executivo", Importance: 10},
		{Pattern: `Presidência da República`, Label: "Presidência", Importance: 9},
		{Pattern: `Vice-Presidência`, Label: "Vice-Presidência", Importance: 8},
		{Pattern: `Ministério da Economia`, Label: "Economia", Importance: 7},
		{Pattern: `Ministério da Casa Civil|Casa Civil`, Label: "Casa Civil", Importance: 7},
		{Pattern: `Ministério da Justiça`, Label: "Justiça e Segurança Pública", Importance: 6},
		{Pattern: `Ministério da Defesa`, Label: "Defesa", Importance: 6},
		{Pattern: `Ministério das Relações Exteriores`, Label: "Relações Exteriores", Importance: 6},
		{Pattern: `Ministério da Saúde`, Label: "Saúde", Importance: 5},
		{Pattern: `Ministério da Educação`, Label: "Educação", Importance: 5},
		{Pattern: `Ministério do Meio Ambiente`, Label: "Meio Ambiente", Importance: 5},
		{Pattern: `Ministério da Agricultura`, Label: "Agricultura", Importance: 4},
		{Pattern: `Ministério da Infraestrutura`, Label: "Infraestrutura", Importance: 4},
		{Pattern: `Ministério da Cidadania`, Label: "Cidadania", Importance: 4},
		{Pattern: `Ministério da Ciência`, Label: "Ciência e Tecnologia", Importance: 3},
		{Pattern: `Ministério de Minas e Energia`, Label: "Minas e Energia", Importance: 3},
		{Pattern: `Banco Central`, Label: "Banco Central", Importance: 3},
		{Pattern: `Agência Nacional`, Label: "Agências Reguladoras", Importance: 2},
		{Pattern: `Controladoria-Geral da União`, Label: "CGU", Importance: 2},
		{Pattern: `Advocacia-Geral da União`, Label: "AGU", Importance: 2},
	}
}
