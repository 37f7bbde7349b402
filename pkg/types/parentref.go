package types

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ParentRef is the parsed form of a seed-file parent reference,
// "<setName>.<symbol>". The set name resolves to a descriptor family through
// the family registry; the symbol selects the row within it.
type ParentRef struct {
	Set    string
	Symbol string
}

// Parent reference errors.
var (
	ErrInvalidParentRef = errors.New("invalid parent reference")

	// ErrUnresolvedParent reports a parent reference that does not match an
	// existing row at seed time. Fatal for the whole seeding run.
	ErrUnresolvedParent = errors.New("unresolved parent")
)

// ParseParentRef parses a "<setName>.<symbol>" reference. Both tokens must be
// non-empty and the reference must contain exactly one dot.
func ParseParentRef(ref string) (ParentRef, error) {
	set, symbol, ok := strings.Cut(ref, ".")
	if !ok || set == "" || symbol == "" || strings.Contains(symbol, ".") {
		return ParentRef{}, fmt.Errorf("%w: %q", ErrInvalidParentRef, ref)
	}
	return ParentRef{Set: set, Symbol: symbol}, nil
}

// Family returns the family name the reference's set classifies to.
func (r ParentRef) Family() string {
	return Classify(r.Set)
}

func (r ParentRef) String() string {
	return r.Set + "." + r.Symbol
}

// Classify converts a snake_case set name to its family name:
// "role" -> "Role", "user_role" -> "UserRole".
func Classify(setName string) string {
	var b strings.Builder
	upper := true
	for _, r := range setName {
		if r == '_' {
			upper = true
			continue
		}
		if upper {
			b.WriteRune(unicode.ToUpper(r))
			upper = false
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Underscore converts a family name to its snake_case set name:
// "Role" -> "role", "UserRole" -> "user_role". Inverse of Classify.
func Underscore(family string) string {
	var b strings.Builder
	for i, r := range family {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
