package csvimport

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Reader parses an uploaded CSV file into header-keyed rows. It strips a
// UTF-8 BOM, rejects non-UTF-8 input and tolerates rows with a trailing
// short field count.
type Reader struct {
	headers   []string
	headerIdx map[string]int
	reader    *csv.Reader
	row       int
}

// NewReader creates a Reader and validates the encoding
func NewReader(r io.Reader) (*Reader, error) {
	buf := bufio.NewReader(r)

	peeked, err := buf.Peek(3)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if len(peeked) >= 3 && peeked[0] == 0xEF && peeked[1] == 0xBB && peeked[2] == 0xBF {
		_, _ = buf.Discard(3)
	}

	const checkSize = 4096
	head, err := buf.Peek(checkSize)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if len(head) == 0 {
		return nil, ErrEmptyFile
	}
	// A full peek buffer may end mid-rune; drop the incomplete tail before
	// validating so a multibyte character straddling the boundary passes.
	if len(head) == checkSize {
		head = trimIncompleteRune(head)
	}
	if !utf8.Valid(head) {
		return nil, ErrInvalidEncoding
	}

	cr := csv.NewReader(buf)
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	return &Reader{reader: cr, headerIdx: make(map[string]int)}, nil
}

// trimIncompleteRune strips a trailing partial UTF-8 sequence, at most
// utf8.UTFMax-1 bytes.
func trimIncompleteRune(b []byte) []byte {
	for i := 1; i < utf8.UTFMax && i <= len(b); i++ {
		c := b[len(b)-i]
		if c < utf8.RuneSelf {
			break
		}
		if c&0xC0 == 0xC0 { // leading byte
			if !utf8.FullRune(b[len(b)-i:]) {
				return b[:len(b)-i]
			}
			break
		}
	}
	return b
}

// NewReaderFromBytes creates a Reader over an in-memory payload
func NewReaderFromBytes(data []byte) (*Reader, error) {
	return NewReader(bytes.NewReader(data))
}

// ParseHeader reads the header row
func (r *Reader) ParseHeader() error {
	record, err := r.reader.Read()
	if err == io.EOF {
		return ErrMissingHeader
	}
	if err != nil {
		return fmt.Errorf("failed to read header: %w", err)
	}

	r.headers = make([]string, len(record))
	for i, h := range record {
		header := strings.TrimSpace(h)
		r.headers[i] = header
		r.headerIdx[header] = i
	}
	if len(r.headers) == 0 {
		return ErrMissingHeader
	}
	r.row = 1
	return nil
}

// Headers returns the parsed header names
func (r *Reader) Headers() []string {
	return r.headers
}

// MissingHeaders returns the required headers absent from the file
func (r *Reader) MissingHeaders(required []string) []string {
	var missing []string
	for _, h := range required {
		if _, ok := r.headerIdx[h]; !ok {
			missing = append(missing, h)
		}
	}
	return missing
}

// Row is one data row keyed by header name
type Row struct {
	LineNumber int
	Data       map[string]string
}

// Get returns the value for a column by header name
func (row *Row) Get(header string) string {
	return row.Data[header]
}

// IsEmpty returns true if the row has no non-empty values
func (row *Row) IsEmpty() bool {
	for _, v := range row.Data {
		if v != "" {
			return false
		}
	}
	return true
}

// ReadAll reads all remaining data rows, skipping fully empty ones
func (r *Reader) ReadAll() ([]*Row, error) {
	var rows []*Row
	for {
		record, err := r.reader.Read()
		if err == io.EOF {
			return rows, nil
		}
		r.row++
		if err != nil {
			return rows, fmt.Errorf("error reading row %d: %w", r.row, err)
		}

		row := &Row{LineNumber: r.row, Data: make(map[string]string, len(r.headers))}
		for i, header := range r.headers {
			if i < len(record) {
				row.Data[header] = strings.TrimSpace(record[i])
			} else {
				row.Data[header] = ""
			}
		}
		if row.IsEmpty() {
			continue
		}
		rows = append(rows, row)
	}
}
