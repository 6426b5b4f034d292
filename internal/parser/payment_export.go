// Package parser turns the Gateway's paid-bill export into structured
// payment records.
//
// The export is a comma-delimited text table: one header row followed by
// data rows of at least 8 fields, some double-quoted. The parser never
// fails the whole export — each row yields its own success or failure and
// the caller decides what to do with the bad ones.
package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"billbridge/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// MinFields is the contract for a well-formed data row. Rows shorter than
// this cannot be indexed safely and are rejected whole.
const MinFields = 8

// Field positions within a data row. The trailing fields are addressed from
// the end because the export pads a variable number of columns in between.
const (
	fieldBillRef = 3
	fieldAmount  = 4

	fieldTotalInstrumentFromEnd = 4
	fieldAgentFromEnd           = 2
	fieldConfirmationFromEnd    = 1
)

// Row is the outcome of parsing one data row. Line is 1-based and counts
// the header.
type Row struct {
	Line   int
	Record entities.PaymentRecord
	Err    error
}

// ParseExport parses a raw export. The first row is the header and is
// discarded. town is the configured town marker (e.g. "ADULIS"); when it
// appears in the bill-reference field the prefix is stripped so the record
// carries the bare Ledger bill id.
func ParseExport(data, town string) []Row {
	r := csv.NewReader(strings.NewReader(data))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.TrimLeadingSpace = true

	var rows []Row
	line := 0
	for {
		fields, err := r.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			rows = append(rows, Row{Line: line, Err: fmt.Errorf("read row: %w", err)})
			continue
		}
		if line == 1 {
			continue // header
		}
		rec, err := parseRow(fields, town)
		rows = append(rows, Row{Line: line, Record: rec, Err: err})
	}
	return rows
}

func parseRow(fields []string, town string) (entities.PaymentRecord, error) {
	if len(fields) < MinFields {
		return entities.PaymentRecord{}, fmt.Errorf("row has %d fields, need at least %d", len(fields), MinFields)
	}

	ref := unquote(fields[fieldBillRef])
	tagged := town != "" && strings.Contains(ref, town)
	if tagged {
		parts := strings.SplitN(ref, "-", 2)
		if len(parts) != 2 || parts[1] == "" {
			return entities.PaymentRecord{}, fmt.Errorf("town-tagged bill reference %q has no id suffix", ref)
		}
		ref = parts[1]
	}
	if ref == "" {
		return entities.PaymentRecord{}, fmt.Errorf("empty bill reference")
	}

	amount, err := decimal.NewFromString(unquote(fields[fieldAmount]))
	if err != nil {
		return entities.PaymentRecord{}, fmt.Errorf("instrument amount %q: %w", fields[fieldAmount], err)
	}
	total, err := decimal.NewFromString(unquote(fields[len(fields)-fieldTotalInstrumentFromEnd]))
	if err != nil {
		return entities.PaymentRecord{}, fmt.Errorf("total instrument %q: %w", fields[len(fields)-fieldTotalInstrumentFromEnd], err)
	}

	return entities.PaymentRecord{
		BillRef:          ref,
		Amount:           amount,
		TotalInstrument:  total,
		Agent:            unquote(fields[len(fields)-fieldAgentFromEnd]),
		ConfirmationCode: unquote(fields[len(fields)-fieldConfirmationFromEnd]),
		TownTagged:       tagged,
	}, nil
}

// unquote strips one layer of surrounding double quotes left behind by
// producers that quote values without escaping inner content, then trims
// whitespace. encoding/csv already removes well-formed quoting.
func unquote(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, `"`)
	s = strings.TrimSuffix(s, `"`)
	return strings.TrimSpace(s)
}
