package aggregator

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// FamilyRule collapses all item names containing one of its substrings into
// a single aggregation bucket. Matching is case-sensitive and rules are
// applied in order, first match wins.
type FamilyRule struct {
	Family   string   `yaml:"family"`
	Contains []string `yaml:"contains"`
}

// FamilyRules is an ordered list of product-family grouping rules. The rules
// only ever affect grouping keys; stored item names are never rewritten.
type FamilyRules struct {
	Rules []FamilyRule `yaml:"families"`
}

// DefaultFamilyRules returns the built-in rules: every iCloud+ tier is one
// bucket, and Pokémon GO in-app purchases group with the app itself.
func DefaultFamilyRules() *FamilyRules {
	return &FamilyRules{
		Rules: []FamilyRule{
			{Family: "iCloud+", Contains: []string{"iCloud+"}},
			{Family: "Pokémon GO", Contains: []string{"Pokémon GO", "PokéCoins"}},
		},
	}
}

// LoadFamilyRules reads family rules from a YAML file. A missing file is not
// an error; the defaults apply.
func LoadFamilyRules(filePath string) (*FamilyRules, error) {
	data, err := os.ReadFile(filePath)
	if os.IsNotExist(err) {
		return DefaultFamilyRules(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading family rules file: %w", err)
	}

	var rules FamilyRules
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("error parsing family rules file: %w", err)
	}
	if len(rules.Rules) == 0 {
		return DefaultFamilyRules(), nil
	}
	return &rules, nil
}

// Normalize returns the grouping key for an item name: the first matching
// family, or the name itself.
func (r *FamilyRules) Normalize(name string) string {
	for _, rule := range r.Rules {
		for _, substr := range rule.Contains {
			if strings.Contains(name, substr) {
				return rule.Family
			}
		}
	}
	return name
}
