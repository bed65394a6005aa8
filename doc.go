// Package sqlitewriter builds a byte-exact SQLite database file (format
// 3) from a stream of rows, in a single forward pass. It is write-only:
// there is no reader, no query planner, no transactions or WAL, and no
// support for re-opening a file once written.
//
// Callers set a schema once, add records in ascending rowid order, then
// build and write the result:
//
//	b := sqlitewriter.NewBuilder()
//	b.Schema("people", "create table people(name text)")
//	b.AddRecord(sqlitewriter.NewRecord(1, sqlitewriter.Text("ada")))
//	db, err := b.Build()
//	err = sqlitewriter.Write(db, out)
package sqlitewriter
