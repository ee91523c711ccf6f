package loader

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/wassima-azzouzi/data-agent/internal/table"
)

// ErrUnsupportedFormat indicates a file that cannot be parsed into a table.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// Options controls how a file is read into a table.
type Options struct {
	// Delimiter for CSV. If 0, it is inferred from the extension
	// (tab for .tsv, comma otherwise).
	Delimiter rune
	// SheetName selects an XLSX worksheet by name.
	SheetName string
	// SheetIndex selects an XLSX worksheet by 1-based index when SheetName
	// is empty. Values <= 0 mean the first sheet.
	SheetIndex int
}

// Load reads the file at path into a Table, choosing the reader by extension.
func Load(path string, opt Options) (*table.Table, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv", ".tsv":
		return loadCSV(path, opt)
	case ".xlsx":
		return loadXLSX(path, opt)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}
