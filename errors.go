package sqlitewriter

import "github.com/joeandaverde/sqlitewriter/internal/storage"

// ErrSchemaMissing is returned by Build when Schema was never called.
var ErrSchemaMissing = storage.ErrSchemaMissing

// ErrRecordTooLarge is returned by AddRecord when a record's serialized
// length exceeds what fits on an otherwise empty leaf page.
var ErrRecordTooLarge = storage.ErrRecordTooLarge

// ErrRowidOutOfOrder is returned by AddRecord when a rowid is not
// strictly greater than the previously added one, or is zero.
var ErrRowidOutOfOrder = storage.ErrRowidOutOfOrder
