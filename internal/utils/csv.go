package utils

import (
	"io"      // Output stream
	"strings" // Field quoting
	"time"    // File name date
)

// WriteCSV writes a header line and one line per row. Every row field is
// double-quoted with embedded quotes doubled; lines are joined by "\n" with no
// trailing newline, so n rows produce n+1 lines.
func WriteCSV(w io.Writer, headers []string, rows [][]string) error {
	var b strings.Builder
	b.WriteString(strings.Join(headers, ","))
	for _, row := range rows {
		b.WriteByte('\n')
		for i, cell := range row {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(cell, `"`, `""`))
			b.WriteByte('"')
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// DatedFilename builds "<prefix>-YYYY-MM-DD.<ext>"
func DatedFilename(prefix, ext string, now time.Time) string {
	return prefix + "-" + now.Format("2006-01-02") + "." + ext
}
