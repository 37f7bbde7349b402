package seed

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Validator checks seed configuration before any write occurs. It never
// mutates state and reports every violation it finds, not just the first:
// seeding is an offline administrative operation where complete diagnostics
// matter more than speed.
type Validator struct{}

// ValidateMaster checks the master locale for completeness: every entry in
// every set must declare a name, and only recognized attribute keys are
// accepted. All violations come back aggregated in one error.
func (Validator) ValidateMaster(master *Tree) error {
	var result *multierror.Error
	for _, set := range master.Sets {
		for _, e := range set.Entries {
			if e.Attrs.Name == nil || *e.Attrs.Name == "" {
				result = multierror.Append(result, fmt.Errorf(
					"name not defined for '%s' in '%s'", e.Symbol, set.Name))
			}
			for _, key := range e.Attrs.Unknown {
				result = multierror.Append(result, fmt.Errorf(
					"unknown attribute '%s' for '%s' in '%s'", key, e.Symbol, set.Name))
			}
		}
	}
	return result.ErrorOrNil()
}

// ValidateAlternative checks one alternative locale against the master:
// every master set and symbol must be present, and for name and description
// a non-empty master value requires a non-empty alternative value. Every
// violation is reported at (locale, set, symbol, attribute) granularity.
func (Validator) ValidateAlternative(master, alt *Tree) error {
	var result *multierror.Error
	for _, set := range master.Sets {
		altSet, ok := alt.Set(set.Name)
		if !ok {
			result = multierror.Append(result, fmt.Errorf(
				"locale %s: keys not defined for '%s'", alt.Locale, set.Name))
			continue
		}
		for _, e := range set.Entries {
			altEntry, ok := altSet.Entry(e.Symbol)
			if !ok {
				result = multierror.Append(result, fmt.Errorf(
					"locale %s: key not defined for '%s' in '%s'", alt.Locale, e.Symbol, set.Name))
				continue
			}
			for _, attr := range [...]struct {
				name        string
				master, alt *string
			}{
				{"name", e.Attrs.Name, altEntry.Attrs.Name},
				{"description", e.Attrs.Description, altEntry.Attrs.Description},
			} {
				if attr.master == nil || *attr.master == "" {
					continue
				}
				if attr.alt == nil || *attr.alt == "" {
					result = multierror.Append(result, fmt.Errorf(
						"locale %s: attribute '%s' not defined for '%s' in '%s'",
						alt.Locale, attr.name, e.Symbol, set.Name))
				}
			}
		}
	}
	return result.ErrorOrNil()
}
