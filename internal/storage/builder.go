package storage

import "fmt"

// leafFullnessMargin is the conservative headroom the fullness test
// reserves on a leaf page: 2 bytes for the new cell's pointer plus up to
// 3 bytes of trailing seal metadata written once the page closes.
const leafFullnessMargin = 5

// Builder packs a stream of records into table-leaf pages, sealing each
// one once it fills and starting a fresh one. It owns the leaf currently
// being filled and the ordered list of leaves already sealed; Build hands
// both, plus the schema descriptor, over to the tree assembler.
type Builder struct {
	current       *Page
	recordsOnLeaf int
	sealedLeaves  []*Page
	schemaName    string
	schemaSQL     string
	schemaSet     bool
	lastRowID     uint64
	haveLastRowID bool
}

// NewBuilder returns a Builder with an empty first leaf page ready to
// receive records.
func NewBuilder() *Builder {
	return &Builder{current: NewLeafPage()}
}

// Schema records the table name and its CREATE TABLE text. It must be
// called exactly once before Build.
func (b *Builder) Schema(tableName, sql string) error {
	if b.schemaSet {
		return fmt.Errorf("storage: schema already set")
	}
	b.schemaName = tableName
	b.schemaSQL = sql
	b.schemaSet = true
	return nil
}

// AddRecord packs r into the current leaf, sealing and replacing it first
// if r would overflow the page. Records must be added in strictly
// ascending rowid order; rowid 0 is rejected outright (see the open
// question on rowid 0 in the schema design notes).
func (b *Builder) AddRecord(r Record) error {
	if r.RowID == 0 {
		return fmt.Errorf("%w: rowid 0 is not a valid rowid", ErrRowidOutOfOrder)
	}
	if b.haveLastRowID && r.RowID <= b.lastRowID {
		return fmt.Errorf("%w: rowid %d is not greater than previous rowid %d", ErrRowidOutOfOrder, r.RowID, b.lastRowID)
	}

	payload := r.Serialize()

	if fullnessExceeded(b.current.buf, len(payload)) {
		if b.recordsOnLeaf > 0 {
			b.sealCurrent(false)
			b.current = NewLeafPage()
			b.recordsOnLeaf = 0
		}
		// A fresh, empty leaf that still can't hold the record has no
		// overflow-page mechanism to fall back on.
		if fullnessExceeded(b.current.buf, len(payload)) {
			return fmt.Errorf("%w: record for rowid %d needs %d bytes, page holds %d", ErrRecordTooLarge, r.RowID, len(payload), PageSize)
		}
	}

	b.current.Key = r.RowID
	b.current.buf.PutBytesBW(payload)
	b.current.buf.PutUint16(uint16(b.current.buf.Backward()))
	b.recordsOnLeaf++

	b.lastRowID = r.RowID
	b.haveLastRowID = true
	return nil
}

// sealCurrent finalizes the in-progress leaf's header and pushes it onto
// sealedLeaves. emptyPage is true only from Build, when the final leaf
// never received a record.
func (b *Builder) sealCurrent(emptyPage bool) {
	b.current.sealLeaf(uint16(b.recordsOnLeaf), emptyPage)
	b.sealedLeaves = append(b.sealedLeaves, b.current)
}

// fullnessExceeded reports whether adding a payload of the given length
// would leave the page without its required margin. Kept as a named
// predicate so its derivation (§9 of the format design notes) stays in
// one place.
func fullnessExceeded(buf *PageBuffer, payloadLen int) bool {
	return buf.Backward()-payloadLen <= buf.Forward()+leafFullnessMargin
}

// Build finalizes the last in-progress leaf and returns the completed
// Database: the schema descriptor plus the ordered list of sealed leaves.
// Build fails if Schema was never called.
func (b *Builder) Build() (*Database, error) {
	if !b.schemaSet {
		return nil, ErrSchemaMissing
	}

	b.sealCurrent(b.recordsOnLeaf == 0)

	return &Database{
		TableName: b.schemaName,
		SQL:       b.schemaSQL,
		Leaves:    b.sealedLeaves,
	}, nil
}

// Database is the in-memory result of a completed Builder: everything the
// tree assembler and writer need to produce the file bytes.
type Database struct {
	TableName string
	SQL       string
	Leaves    []*Page
}
