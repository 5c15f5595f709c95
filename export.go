package msigdump

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// WriteTSV writes the records as a tab-separated table: the 19 field names
// as header, then one row per record in the order given. Tabs and line
// breaks embedded in values are flattened to spaces so every record stays on
// one line.
func WriteTSV(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'

	if err := cw.Write(FieldNames()); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, rec := range records {
		row := rec.Values()
		for i, value := range row {
			row[i] = flatten(value)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteTSVFile writes the records to the given path, creating or truncating
// the file.
func WriteTSVFile(path string, records []Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := WriteTSV(f, records); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

var fieldBreaks = strings.NewReplacer("\t", " ", "\n", " ", "\r", " ")

// flatten replaces field-breaking characters with spaces.
func flatten(value string) string {
	return fieldBreaks.Replace(value)
}
