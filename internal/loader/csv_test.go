package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadCSV(t *testing.T) {
	rows := []string{
		"name,score,note",
		"alpha,10,first",
		"beta,11.5,",
		"gamma,9,third",
	}
	path := writeTemp(t, "data.csv", strings.Join(rows, "\n"))

	tbl, err := Load(path, Options{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if tbl.NumRows() != 3 || tbl.NumCols() != 3 {
		t.Fatalf("dims = %dx%d", tbl.NumRows(), tbl.NumCols())
	}
	if !tbl.IsNumeric(1) || tbl.IsNumeric(0) {
		t.Fatalf("classification wrong: %v %v", tbl.Kind(0), tbl.Kind(1))
	}
	if v, ok := tbl.Value(1, 1); !ok || v != 11.5 {
		t.Fatalf("value = %v, %v", v, ok)
	}
	if !tbl.Missing(2, 1) {
		t.Fatalf("empty note cell should be missing")
	}
}

func TestLoadCSVSemicolonDelimiter(t *testing.T) {
	path := writeTemp(t, "data.csv", "a;b\n1;2\n3;4\n")
	tbl, err := Load(path, Options{Delimiter: ';'})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if tbl.NumCols() != 2 || tbl.NumRows() != 2 {
		t.Fatalf("dims = %dx%d", tbl.NumRows(), tbl.NumCols())
	}
	if v, ok := tbl.Value(1, 1); !ok || v != 4 {
		t.Fatalf("value = %v, %v", v, ok)
	}
}

func TestLoadTSVSniffsTab(t *testing.T) {
	path := writeTemp(t, "data.tsv", "a\tb\n1\t2\n")
	tbl, err := Load(path, Options{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if tbl.NumCols() != 2 || tbl.NumRows() != 1 {
		t.Fatalf("dims = %dx%d", tbl.NumRows(), tbl.NumCols())
	}
}

func TestLoadCSVRaggedRows(t *testing.T) {
	path := writeTemp(t, "data.csv", "a,b,c\n1,2,3\n4,5\n")
	tbl, err := Load(path, Options{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !tbl.Missing(2, 1) {
		t.Fatalf("short row should pad with missing cell")
	}
}

func TestLoadEmptyCSV(t *testing.T) {
	path := writeTemp(t, "empty.csv", "")
	tbl, err := Load(path, Options{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if tbl.NumRows() != 0 || tbl.NumCols() != 0 {
		t.Fatalf("dims = %dx%d", tbl.NumRows(), tbl.NumCols())
	}
}
