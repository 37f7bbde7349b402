package types

// Attributes is a partial update for a descriptor row. Nil fields are left
// untouched; updates are non-destructive. The parent carries its own
// presence flag because "set parent to none" and "leave parent alone" are
// different operations.
type Attributes struct {
	// Symbol is technically mutable; a change invalidates the cache under
	// the previous value. In practice symbols stay fixed after creation.
	Symbol      *string
	Name        *string
	Description *string
	Index       *int64
	Value       *int64
	Parent      *Parent
	ParentSet   bool
}

// SaveHook is invoked synchronously after every successful create or update,
// before the write returns to its caller. prevSymbol is the symbol the row
// carried before the write (equal to d.Symbol unless the symbol changed);
// cache invalidation keys off it.
type SaveHook func(d *Descriptor, prevSymbol string)

// Repository is the durable storage boundary for descriptors. Implementations
// key rows by surrogate id, enforce (family, symbol) uniqueness, and notify
// registered hooks on every save.
type Repository interface {
	// Create validates and inserts a new row, assigning its surrogate id and
	// timestamps. Returns ErrDuplicateSymbol if (family, symbol) is taken,
	// ErrSymbolEmpty/ErrNameEmpty on validation failure.
	Create(d *Descriptor) (*Descriptor, error)

	// Update applies a non-destructive changeset to an existing row.
	// Returns ErrNotFound if the id does not exist.
	Update(family string, id int64, attrs Attributes) (*Descriptor, error)

	// FindBySymbol returns the unique row with the given symbol in the family.
	// Returns ErrNotFound when absent.
	FindBySymbol(family, symbol string) (*Descriptor, error)

	// FindByID returns the row with the given id in the family.
	// Returns ErrNotFound when absent.
	FindByID(family string, id int64) (*Descriptor, error)

	// FindWhere returns all rows of the family matching the equality
	// predicates, ordered by index. An empty predicate map returns the whole
	// family.
	FindWhere(family string, where map[string]any) ([]*Descriptor, error)

	// AllSymbols returns every symbol of the family, ordered by index.
	AllSymbols(family string) ([]string, error)

	// AfterSave registers a hook fired synchronously after each successful
	// create or update.
	AfterSave(hook SaveHook)
}
