package dialect

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"deckport/internal/cards"
)

// ParseResult is a fully ingested source file: the dialect that claimed it,
// the detection evidence, and every parsed record in source order.
type ParseResult struct {
	Dialect   *Definition
	Detection Detection
	// Fallback is set when detection declined and the generic dialect took
	// over.
	Fallback bool
	Headers  []string
	Records  []cards.ParsedRecord
}

// ErrEmptyInput is returned for files with no header row.
var ErrEmptyInput = errors.New("dialect: input has no header row")

// Read ingests one export file: sniffs the delimiter, detects the dialect,
// and parses every data row. When no dialect clears the detection
// thresholds the generic fallback parses the file instead.
func (r *Registry) Read(src io.Reader, opts Options) (*ParseResult, error) {
	return r.ReadAs(src, "", opts)
}

// ReadAs is Read with the dialect forced by id, bypassing detection.
// An empty id means detect.
func (r *Registry) ReadAs(src io.Reader, dialectID string, opts Options) (*ParseResult, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	text := strings.TrimPrefix(string(data), "\uFEFF")

	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = sniffDelimiter(text)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	headers, err := reader.Read()
	if err == io.EOF {
		return nil, ErrEmptyInput
	}
	if err != nil {
		return nil, fmt.Errorf("read header row: %w", err)
	}

	result := &ParseResult{Headers: headers}
	if dialectID != "" {
		def, ok := r.Get(dialectID)
		if !ok {
			return nil, fmt.Errorf("unknown dialect %q", dialectID)
		}
		result.Dialect = def
	} else {
		detection, ok := r.Detect(headers, opts)
		result.Detection = detection
		if ok {
			result.Dialect = detection.Dialect
		} else {
			result.Dialect = r.Generic()
			result.Fallback = true
		}
	}

	parser := NewParser(result.Dialect, headers)
	// Header row is row 1; data starts at 2.
	rowNum := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		rowNum++
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", rowNum, err)
		}
		if blankRow(row) {
			continue
		}
		result.Records = append(result.Records, parser.Parse(row, rowNum)...)
	}
	return result, nil
}

// sniffDelimiter inspects the header line. Comma wins ties; tab and
// semicolon take over only when commas are absent from the header.
func sniffDelimiter(text string) rune {
	line := text
	if idx := strings.IndexAny(line, "\r\n"); idx >= 0 {
		line = line[:idx]
	}
	if strings.ContainsRune(line, ',') {
		return ','
	}
	if strings.ContainsRune(line, '\t') {
		return '\t'
	}
	if strings.ContainsRune(line, ';') {
		return ';'
	}
	return ','
}

func blankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
