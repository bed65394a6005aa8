package storage

import "errors"

// ErrSchemaMissing is returned by Build when Schema was never called.
var ErrSchemaMissing = errors.New("storage: schema not set")

// ErrRecordTooLarge is returned by AddRecord when a record's serialized
// length exceeds what fits on an otherwise empty leaf page. There is no
// overflow-page chain to fall back on.
var ErrRecordTooLarge = errors.New("storage: record too large for a single page")

// ErrRowidOutOfOrder is returned by AddRecord when a rowid is not
// strictly greater than the previously added one, or is zero.
var ErrRowidOutOfOrder = errors.New("storage: rowid out of order")
