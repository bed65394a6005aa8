package ingest

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/joeandaverde/sqlitewriter/internal/identifier"
	"github.com/joeandaverde/sqlitewriter/internal/storage"
)

// Driver reads a comma-separated record stream and feeds each row into a
// storage.Builder in order, assigning rowids sequentially starting at 1.
// It is the external collaborator the core page engine expects: parsing,
// type inference and I/O all live here, never in the core.
type Driver struct {
	log *log.Logger
	cfg *Config
}

// New builds a Driver for cfg, logging through l. Passing a *log.Logger
// explicitly (rather than the package-level default) keeps ingestion
// testable and lets a caller route output anywhere logrus supports.
func New(cfg *Config, l *log.Logger) *Driver {
	if l == nil {
		l = log.StandardLogger()
	}
	return &Driver{log: l, cfg: cfg}
}

// Run validates the configured table name, reads comma-separated rows
// from r until EOF, and returns the resulting storage.Database ready for
// storage.Write. Fields that parse as base-10 integers are stored as
// Integer values so the serial-type encoding stays compact; every other
// field is stored as Text.
func (d *Driver) Run(r io.Reader) (*storage.Database, error) {
	if err := identifier.ValidateTableName(d.cfg.TableName); err != nil {
		return nil, fmt.Errorf("ingest: %w", err)
	}

	b := storage.NewBuilder()
	if err := b.Schema(d.cfg.TableName, d.cfg.SQL); err != nil {
		return nil, fmt.Errorf("ingest: %w", err)
	}

	reader := csv.NewReader(bufio.NewReader(r))
	reader.FieldsPerRecord = -1

	rowID := uint64(1)
	count := 0
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ingest: reading row %d: %w", rowID, err)
		}

		if len(d.cfg.Columns) > 0 && len(fields) != len(d.cfg.Columns) {
			return nil, fmt.Errorf("ingest: row %d has %d fields, expected %d", rowID, len(fields), len(d.cfg.Columns))
		}

		values := make([]storage.Value, len(fields))
		for i, f := range fields {
			values[i] = inferValue(f)
		}

		if err := b.AddRecord(storage.NewRecord(rowID, values)); err != nil {
			return nil, fmt.Errorf("ingest: row %d: %w", rowID, err)
		}

		rowID++
		count++
		if count%10000 == 0 {
			d.log.WithField("rows", count).Debug("ingest: progress")
		}
	}

	d.log.WithFields(log.Fields{
		"table": d.cfg.TableName,
		"rows":  count,
	}).Info("ingest: record stream consumed")

	db, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("ingest: %w", err)
	}
	return db, nil
}

// inferValue narrows a raw CSV field to an Integer Value when it parses
// cleanly as one, and stores it as Text otherwise.
func inferValue(field string) storage.Value {
	if n, err := strconv.ParseInt(field, 10, 64); err == nil {
		return storage.Integer(n)
	}
	return storage.Text(field)
}
