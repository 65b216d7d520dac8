// Package selection resolves user-facing series aliases to canonical series names.
package selection

import (
	"fmt"
	"sort"
	"strings"
)

// Canonical series names as they appear in simulation output headers.
const (
	TotalReflection   = "Total_Reflection"
	TotalTransmission = "Total_Transmission"
	Absorption        = "Absorption"
)

// DefaultColumns is the alias list used when the caller does not pick one.
const DefaultColumns = "r,t,a"

// CanonicalOrder is the fixed order series are drawn and listed in.
var CanonicalOrder = []string{TotalReflection, TotalTransmission, Absorption}

// aliases maps short and long names to canonical series names. Lookup is case-sensitive.
var aliases = map[string]string{
	"r":            TotalReflection,
	"t":            TotalTransmission,
	"a":            Absorption,
	"reflection":   TotalReflection,
	"transmission": TotalTransmission,
	"absorption":   Absorption,
}

// ValidAliases returns every recognized alias, sorted.
func ValidAliases() []string {
	names := make([]string, 0, len(aliases))
	for alias := range aliases {
		names = append(names, alias)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the canonical name for alias.
func Lookup(alias string) (string, bool) {
	name, ok := aliases[alias]
	return name, ok
}

// Selection is the set of canonical series names to render.
type Selection map[string]struct{}

// Contains reports whether name is selected.
func (s Selection) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// Names returns the selected canonical names in CanonicalOrder.
func (s Selection) Names() []string {
	names := make([]string, 0, len(s))
	for _, name := range CanonicalOrder {
		if s.Contains(name) {
			names = append(names, name)
		}
	}
	return names
}

// InvalidSelectionError lists every unrecognized alias of one request.
type InvalidSelectionError struct {
	Invalid []string
	Valid   []string
}

func (e *InvalidSelectionError) Error() string {
	quoted := make([]string, len(e.Invalid))
	for i, alias := range e.Invalid {
		quoted[i] = fmt.Sprintf("%q", alias)
	}
	return fmt.Sprintf("invalid columns: [%s]. Choose from: %s",
		strings.Join(quoted, ", "), strings.Join(e.Valid, ", "))
}

// Resolve splits a comma-separated alias list and maps each token to its canonical name.
// Tokens are matched exactly; an empty token is an invalid alias.
// Either every token resolves or none do.
func Resolve(columns string) (Selection, error) {
	tokens := strings.Split(columns, ",")

	var invalid []string
	sel := make(Selection, len(tokens))
	for _, token := range tokens {
		name, ok := aliases[token]
		if !ok {
			invalid = append(invalid, token)
			continue
		}
		sel[name] = struct{}{}
	}

	if len(invalid) > 0 {
		return nil, &InvalidSelectionError{Invalid: invalid, Valid: ValidAliases()}
	}
	return sel, nil
}
