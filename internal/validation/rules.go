// Package validation holds the address rule set and the validator that applies it.
package validation

import (
	"maps"

	"addressable/config"
	"addressable/internal/domain/entity"
)

const flagRule = "omitempty,boolean"

// RuleSet maps an attribute key to a validator tag list, e.g. "required,max=255".
type RuleSet map[string]string

// DefaultRules returns the built-in rule set.
func DefaultRules() RuleSet {
	return RuleSet{
		entity.AttrLabel:        "omitempty,max=150",
		entity.AttrGivenName:    "omitempty,max=150",
		entity.AttrFamilyName:   "omitempty,max=150",
		entity.AttrOrganization: "omitempty,max=150",
		entity.AttrLine1:        "required,max=255",
		entity.AttrLine2:        "omitempty,max=255",
		entity.AttrCity:         "required,max=150",
		entity.AttrProvince:     "required,max=150",
		entity.AttrPostalCode:   "required,max=150",
		entity.AttrCountryCode:  "required,alpha,len=2,country",
		entity.AttrLatitude:     "omitempty,latitude",
		entity.AttrLongitude:    "omitempty,longitude",
	}
}

// NewRuleSet builds the active rules. Configured rules replace the defaults,
// extra rules are merged on top and every active flag gets a boolean rule.
func NewRuleSet(cfg *config.AddressesConfig, flags entity.FlagSet) RuleSet {
	rules := DefaultRules()
	if cfg != nil && len(cfg.Rules) > 0 {
		rules = maps.Clone(cfg.Rules)
	}

	if cfg != nil {
		maps.Copy(rules, cfg.ExtraRules)
	}

	for _, column := range flags.Columns() {
		if _, ok := rules[column]; !ok {
			rules[column] = flagRule
		}
	}

	return rules
}

// Clone returns an independent copy.
func (r RuleSet) Clone() RuleSet {
	return maps.Clone(r)
}
