package moore

import (
	"encoding/csv"
	"fmt"
	"io"
)

// Format gives how a Table is laid out as delimited text.
type Format struct {
	// Delimiter separates the fields of a row. It must not be a comma, which
	// joins the states within a field.
	Delimiter rune

	// CRLF gives whether rows end in "\r\n" instead of "\n".
	CRLF bool
}

// DefaultFormat is semicolon-delimited rows ending in "\r\n".
var DefaultFormat = Format{Delimiter: ';', CRLF: true}

// Write writes every row of t to w as delimited text. A field is quoted only if
// it contains the delimiter, a quote, or a line break.
func Write(w io.Writer, t Table, f Format) error {
	cw := csv.NewWriter(w)
	cw.Comma = f.Delimiter
	cw.UseCRLF = f.CRLF

	if err := cw.WriteAll(t.Rows()); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	return nil
}
