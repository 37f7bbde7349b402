package sqlite

// Schema DDL for the descriptors table. Schema and indexing are a fixed
// concern of this backend; the rest of the module only relies on the
// (family, symbol) uniqueness and the ordinal/parent columns existing.
const createDescriptors = `CREATE TABLE IF NOT EXISTS descriptors (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    family TEXT NOT NULL,
    symbol TEXT NOT NULL,
    name TEXT NOT NULL,
    description TEXT,
    ordinal INTEGER NOT NULL DEFAULT 0,
    value INTEGER,
    parent_family TEXT,
    parent_id INTEGER,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL,
    UNIQUE (family, symbol)
);`

// Index DDL for common queries.
const (
	idxDescriptorsFamilyOrdinal = `CREATE INDEX IF NOT EXISTS idx_descriptors_family_ordinal ON descriptors(family, ordinal);`
	idxDescriptorsParent        = `CREATE INDEX IF NOT EXISTS idx_descriptors_parent ON descriptors(parent_family, parent_id);`
)

// schemaDDL lists all statements executed on open.
var schemaDDL = []string{
	createDescriptors,
	idxDescriptorsFamilyOrdinal,
	idxDescriptorsParent,
}
