package storage

// Record is a single row: a rowid plus an ordered list of column values,
// ready to be packed into a table-leaf cell.
type Record struct {
	RowID  uint64
	Values []Value
}

// NewRecord builds a Record from a rowid and its ordered column values.
func NewRecord(rowID uint64, values []Value) Record {
	return Record{RowID: rowID, Values: values}
}

// NewSchemaRecord builds the sqlite_master row describing a table: the five
// columns are (type, name, tbl_name, rootpage, sql), in that fixed order.
// name and tbl_name are always the same here - one table, one page - so both
// take the table's own name.
func NewSchemaRecord(rowID uint64, name string, sql string, rootPage int64) Record {
	return NewRecord(rowID, []Value{
		Text("table"),
		Text(name),
		Text(name),
		Integer(rootPage),
		Text(sql),
	})
}

// Serialize packs the record into the SQLite table-leaf cell payload:
//
//	payload_length_varint
//	rowid_varint
//	header_length_varint          (= 1 + sum of serial-type varint lengths)
//	serial_type_varint ...        (one per value, in column order)
//	value_data ...                (in column order)
//
// payload_length counts every byte from header_length_varint through the
// end of the last value's data - everything after the payload-length and
// rowid varints themselves.
func (r Record) Serialize() []byte {
	serialTypes := make([][]byte, len(r.Values))
	data := make([][]byte, len(r.Values))

	bodyLen := 0
	serialTypesLen := 0
	for i, v := range r.Values {
		st, d := v.Encode()
		stBytes := EncodeVarint(st)
		serialTypes[i] = stBytes
		data[i] = d
		serialTypesLen += len(stBytes)
		bodyLen += len(d)
	}

	headerLenBytes := EncodeVarint(uint64(1 + serialTypesLen))
	payloadLen := uint64(len(headerLenBytes) + serialTypesLen + bodyLen)

	payloadLenBytes := EncodeVarint(payloadLen)
	rowIDBytes := EncodeVarint(r.RowID)

	out := make([]byte, 0, len(payloadLenBytes)+len(rowIDBytes)+int(payloadLen))
	out = append(out, payloadLenBytes...)
	out = append(out, rowIDBytes...)
	out = append(out, headerLenBytes...)
	for _, st := range serialTypes {
		out = append(out, st...)
	}
	for _, d := range data {
		out = append(out, d...)
	}
	return out
}
