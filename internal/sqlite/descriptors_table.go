// This file implements the descriptors table accessor: creation and
// non-destructive updates with write-time validation, symbol and id lookups,
// equality-predicate queries, and the per-family symbol listing.
package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/mesh-intelligence/refbook/pkg/types"
)

// descriptorColumns is the select list every hydration uses, in scan order.
var descriptorColumns = []string{
	"id", "family", "symbol", "name", "description",
	"ordinal", "value", "parent_family", "parent_id",
	"created_at", "updated_at",
}

// whereColumns maps the predicate keys FindWhere accepts to their columns.
// The index field lives in the "ordinal" column ("index" is reserved).
var whereColumns = map[string]string{
	"symbol":        "symbol",
	"name":          "name",
	"index":         "ordinal",
	"value":         "value",
	"parent_family": "parent_family",
	"parent_id":     "parent_id",
}

// Create validates and inserts a new descriptor. The surrogate id and
// timestamps are assigned here and written back into d.
func (b *Backend) Create(d *types.Descriptor) (*types.Descriptor, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	d.CreatedAt = now
	d.UpdatedAt = now

	var parentFamily, parentID any
	if d.Parent != nil {
		parentFamily = d.Parent.Family
		parentID = d.Parent.ID
	}

	res, err := b.db.Exec(
		`INSERT INTO descriptors
		 (family, symbol, name, description, ordinal, value, parent_family, parent_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		d.Family, d.Symbol, d.Name, d.Description, d.Index, nullableInt(d.Value),
		parentFamily, parentID,
		now.Format(time.RFC3339), now.Format(time.RFC3339),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %s in %s", types.ErrDuplicateSymbol, d.Symbol, d.Family)
		}
		return nil, fmt.Errorf("inserting descriptor: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading inserted id: %w", err)
	}
	d.ID = id

	b.fireAfterSave(d, d.Symbol)
	return d, nil
}

// Update applies a non-destructive changeset: nil attribute fields leave the
// stored value untouched. Returns ErrNotFound if the row does not exist.
func (b *Backend) Update(family string, id int64, attrs types.Attributes) (*types.Descriptor, error) {
	existing, err := b.FindByID(family, id)
	if err != nil {
		return nil, err
	}
	prevSymbol := existing.Symbol

	if attrs.Symbol != nil {
		existing.Symbol = *attrs.Symbol
	}
	if attrs.Name != nil {
		existing.Name = *attrs.Name
	}
	if attrs.Description != nil {
		existing.Description = *attrs.Description
	}
	if attrs.Index != nil {
		existing.Index = *attrs.Index
	}
	if attrs.Value != nil {
		existing.Value = attrs.Value
	}
	if attrs.ParentSet {
		existing.Parent = attrs.Parent
	}
	if err := existing.Validate(); err != nil {
		return nil, err
	}

	existing.UpdatedAt = time.Now().UTC()

	var parentFamily, parentID any
	if existing.Parent != nil {
		parentFamily = existing.Parent.Family
		parentID = existing.Parent.ID
	}

	_, err = b.db.Exec(
		`UPDATE descriptors
		 SET symbol = ?, name = ?, description = ?, ordinal = ?, value = ?,
		     parent_family = ?, parent_id = ?, updated_at = ?
		 WHERE family = ? AND id = ?`,
		existing.Symbol, existing.Name, existing.Description, existing.Index,
		nullableInt(existing.Value), parentFamily, parentID,
		existing.UpdatedAt.Format(time.RFC3339),
		family, id,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %s in %s", types.ErrDuplicateSymbol, existing.Symbol, family)
		}
		return nil, fmt.Errorf("updating descriptor %d: %w", id, err)
	}

	b.fireAfterSave(existing, prevSymbol)
	return existing, nil
}

// FindBySymbol returns the unique row with the given symbol in the family,
// or ErrNotFound.
func (b *Backend) FindBySymbol(family, symbol string) (*types.Descriptor, error) {
	return b.findOne(sq.Eq{"family": family, "symbol": symbol})
}

// FindByID returns the row with the given id in the family, or ErrNotFound.
func (b *Backend) FindByID(family string, id int64) (*types.Descriptor, error) {
	return b.findOne(sq.Eq{"family": family, "id": id})
}

// FindWhere returns every row of the family matching the equality predicates,
// ordered by index. Unknown predicate keys are rejected.
func (b *Backend) FindWhere(family string, where map[string]any) ([]*types.Descriptor, error) {
	eq := sq.Eq{"family": family}
	for key, val := range where {
		col, ok := whereColumns[key]
		if !ok {
			return nil, fmt.Errorf("unknown predicate column: %s", key)
		}
		eq[col] = val
	}

	query, args, err := sq.Select(descriptorColumns...).
		From("descriptors").
		Where(eq).
		OrderBy("ordinal ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	rows, err := b.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying descriptors: %w", err)
	}
	defer rows.Close()

	var results []*types.Descriptor
	for rows.Next() {
		d, err := hydrateDescriptor(rows)
		if err != nil {
			return nil, fmt.Errorf("hydrating descriptor: %w", err)
		}
		results = append(results, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating descriptors: %w", err)
	}
	return results, nil
}

// AllSymbols returns every symbol of the family, ordered by index.
func (b *Backend) AllSymbols(family string) ([]string, error) {
	rows, err := b.db.Query(
		"SELECT symbol FROM descriptors WHERE family = ? ORDER BY ordinal ASC, id ASC",
		family,
	)
	if err != nil {
		return nil, fmt.Errorf("querying symbols: %w", err)
	}
	defer rows.Close()

	var symbols []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("scanning symbol: %w", err)
		}
		symbols = append(symbols, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating symbols: %w", err)
	}
	return symbols, nil
}

// findOne runs a single-row equality query and hydrates the result.
func (b *Backend) findOne(eq sq.Eq) (*types.Descriptor, error) {
	query, args, err := sq.Select(descriptorColumns...).
		From("descriptors").
		Where(eq).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	rows, err := b.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying descriptor: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("querying descriptor: %w", err)
		}
		return nil, types.ErrNotFound
	}
	d, err := hydrateDescriptor(rows)
	if err != nil {
		return nil, fmt.Errorf("hydrating descriptor: %w", err)
	}
	return d, nil
}

// hydrateDescriptor converts the current row into a *types.Descriptor.
func hydrateDescriptor(rows *sql.Rows) (*types.Descriptor, error) {
	var (
		d            types.Descriptor
		description  sql.NullString
		value        sql.NullInt64
		parentFamily sql.NullString
		parentID     sql.NullInt64
		createdAt    string
		updatedAt    string
	)
	if err := rows.Scan(
		&d.ID, &d.Family, &d.Symbol, &d.Name, &description,
		&d.Index, &value, &parentFamily, &parentID,
		&createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}

	d.Description = description.String
	if value.Valid {
		v := value.Int64
		d.Value = &v
	}
	if parentFamily.Valid && parentID.Valid {
		d.Parent = &types.Parent{Family: parentFamily.String, ID: parentID.Int64}
	}

	var err error
	d.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	d.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &d, nil
}

// nullableInt converts an optional int64 to a driver value.
func nullableInt(v *int64) any {
	if v == nil {
		return nil
	}
	return *v
}

// isUniqueViolation reports whether err is the SQLite unique-constraint
// failure on (family, symbol).
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
