package sqlitewriter

import (
	"io"

	"github.com/joeandaverde/sqlitewriter/internal/identifier"
	"github.com/joeandaverde/sqlitewriter/internal/storage"
)

// Value is a single typed column value: string, blob, integer, or float.
type Value = storage.Value

// Integer builds a Value holding a signed integer.
func Integer(v int64) Value { return storage.Integer(v) }

// Float builds a Value holding an IEEE-754 double.
func Float(v float64) Value { return storage.Float(v) }

// Text builds a Value holding a UTF-8 string.
func Text(v string) Value { return storage.Text(v) }

// Blob builds a Value holding an arbitrary byte sequence.
func Blob(v []byte) Value { return storage.Blob(v) }

// Record is a single row: a rowid plus its ordered column values.
type Record = storage.Record

// NewRecord builds a Record from a rowid and its ordered column values.
func NewRecord(rowID uint64, values ...Value) Record {
	return storage.NewRecord(rowID, values)
}

// Database is the in-memory result of a completed Builder, ready for
// Write.
type Database = storage.Database

// Builder packs a stream of records into a single-table SQLite database,
// one leaf page at a time. It is not safe for concurrent use: the format
// this package produces is strictly single-writer.
type Builder struct {
	inner *storage.Builder
}

// NewBuilder returns a Builder with no schema set and no records added.
func NewBuilder() *Builder {
	return &Builder{inner: storage.NewBuilder()}
}

// Schema records the table name and its CREATE TABLE text. It must be
// called exactly once, before any call to AddRecord or Build, and the
// table name must be a legal, non-reserved SQL identifier.
func (b *Builder) Schema(tableName, sql string) error {
	if err := identifier.ValidateTableName(tableName); err != nil {
		return err
	}
	return b.inner.Schema(tableName, sql)
}

// AddRecord packs r into the database being built. Records must be added
// in strictly ascending rowid order; rowid 0 is rejected.
func (b *Builder) AddRecord(r Record) error {
	return b.inner.AddRecord(r)
}

// Build finalizes the database and returns it, ready for Write. Build
// fails with ErrSchemaMissing if Schema was never called.
func (b *Builder) Build() (*Database, error) {
	return b.inner.Build()
}

// Write streams db's pages to w: the file header and schema page first,
// then the table's B-tree in pre-order. I/O errors from w are returned
// verbatim.
func Write(db *Database, w io.Writer) error {
	return storage.Write(db, w)
}
