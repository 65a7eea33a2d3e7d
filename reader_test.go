package ouigen

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

const sampleRegistry = `# sample registry
00:1C:B3 Apple, Inc.

F0-2F-74 ASUSTek COMPUTER INC.
# trailing comment
3C5AB4   Google, Inc.
BADLINE
`

func TestReadRecords(t *testing.T) {
	records, err := ReadRecords(strings.NewReader(sampleRegistry))
	if err != nil {
		t.Fatalf("ReadRecords: %v", err)
	}
	want := []RawRecord{
		{"00:1C:B3", "Apple, Inc."},
		{"F0-2F-74", "ASUSTek COMPUTER INC."},
		{"3C5AB4", "Google, Inc."},
	}
	if !slices.Equal(records, want) {
		t.Fatalf("ReadRecords = %+v, want %+v", records, want)
	}
}

// TestReadFile checks the memory-mapped path produces the same records as
// plain reader parsing.
func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry")
	if err := os.WriteFile(path, []byte(sampleRegistry), 0o644); err != nil {
		t.Fatal(err)
	}

	fromFile, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	fromReader, err := ReadRecords(strings.NewReader(sampleRegistry))
	if err != nil {
		t.Fatalf("ReadRecords: %v", err)
	}
	if !slices.Equal(fromFile, fromReader) {
		t.Fatalf("ReadFile = %+v, want %+v", fromFile, fromReader)
	}
}

func TestReadFileEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	records, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("ReadFile on empty file = %+v, want none", records)
	}
}

func TestReadFileMissing(t *testing.T) {
	if _, err := ReadFile(filepath.Join(t.TempDir(), "no-such-file")); err == nil {
		t.Fatal("ReadFile on missing file: expected error")
	}
}

func TestReadFileTestdata(t *testing.T) {
	records, err := ReadFile(filepath.Join("testdata", "mac-prefixes"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	// 22 data lines: comments and blanks are skipped at read time; malformed
	// prefixes and unknown vendors are still records here and only drop
	// during Build.
	if len(records) != 22 {
		t.Fatalf("len(records) = %d, want 22", len(records))
	}
}
