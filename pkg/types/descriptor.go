package types

import (
	"errors"
	"time"
)

// Parent is a polymorphic reference to another descriptor row. The referenced
// family does not have to match the child's family.
type Parent struct {
	Family string
	ID     int64
}

// Descriptor is a reference-data row addressable by a symbol that is unique
// within its family. Name and Description hold the raw fallback values;
// locale-resolved display values come from locale.Resolver at read time.
type Descriptor struct {
	ID          int64     // Surrogate id, assigned by the repository on creation.
	Family      string    // Concrete variant name, e.g. "Role"; fixed at creation.
	Symbol      string    // Short identifier, unique within the family.
	Name        string    // Raw fallback display name (required).
	Description string    // Raw fallback description.
	Index       int64     // Total order among rows of the same family.
	Value       *int64    // Optional numeric payload, opaque to refbook.
	Parent      *Parent   // Optional parent reference.
	CreatedAt   time.Time // Owned by the repository.
	UpdatedAt   time.Time // Owned by the repository.
}

// Descriptor write-time validation errors.
var (
	ErrSymbolEmpty     = errors.New("symbol must not be empty")
	ErrNameEmpty       = errors.New("name must not be empty")
	ErrDuplicateSymbol = errors.New("symbol already defined for family")
)

// Read-time errors.
var (
	// ErrNotFound reports an id or predicate that matches no row.
	ErrNotFound = errors.New("descriptor not found")

	// ErrUnknownSymbol reports an accessor or predicate naming a symbol that
	// does not exist in the family. Distinct from a negative answer: it
	// usually means a typo in the caller.
	ErrUnknownSymbol = errors.New("unknown symbol")

	// ErrUnknownFamily reports a family name absent from the registry.
	ErrUnknownFamily = errors.New("unknown descriptor family")
)

// Validate checks the invariants enforced at write time: symbol present and
// raw name present. Locale resolution happens at read time, so the raw name
// is what presence validation sees.
func (d *Descriptor) Validate() error {
	if d.Symbol == "" {
		return ErrSymbolEmpty
	}
	if d.Name == "" {
		return ErrNameEmpty
	}
	return nil
}

// Equal reports identity equality: same family and same symbol. Surrogate
// ids deliberately do not participate; two in-memory instances of the same
// row loaded at different times compare equal.
func (d *Descriptor) Equal(other *Descriptor) bool {
	if other == nil {
		return false
	}
	return d.Family == other.Family && d.Symbol == other.Symbol
}

// Compare orders descriptors by Index and returns -1, 0 or 1. The order is
// total within a family; across families the comparison is still defined but
// not meaningful.
func (d *Descriptor) Compare(other *Descriptor) int {
	switch {
	case d.Index < other.Index:
		return -1
	case d.Index > other.Index:
		return 1
	default:
		return 0
	}
}

// ToInt returns the surrogate id, not the index. Index drives ordering; the
// id is what external foreign keys store.
func (d *Descriptor) ToInt() int64 {
	return d.ID
}

// IsOneOf reports whether the descriptor's own symbol is among the given
// candidates. Pass a slice with s... to test a prepared set.
func (d *Descriptor) IsOneOf(symbols ...string) bool {
	for _, s := range symbols {
		if d.Symbol == s {
			return true
		}
	}
	return false
}

// IsNoneOf is the negation of IsOneOf.
func (d *Descriptor) IsNoneOf(symbols ...string) bool {
	return !d.IsOneOf(symbols...)
}
