package ouigen

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"
)

// maxLineSize bounds a single registry line. Real registry lines are well
// under 200 bytes; 1 MiB leaves room for pathological inputs without letting
// the scanner grow unbounded.
const maxLineSize = 1 << 20

// ReadRecords parses registry records from r. Blank lines, comment lines
// (leading '#'), and lines without a manufacturer string are skipped here;
// prefix validation and vendor classification happen later in the builder.
func ReadRecords(r io.Reader) ([]RawRecord, error) {
	var records []RawRecord
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		if rec, ok := splitLine(sc.Text()); ok {
			records = append(records, rec)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan registry: %w", err)
	}
	return records, nil
}

// ReadFile parses registry records from the file at path.
//
// Regular files are memory-mapped with a sequential-read hint so large
// registries avoid per-line read syscalls; anything else (pipes, empty files)
// falls back to buffered reading.
func ReadFile(path string) ([]RawRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open registry: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat registry: %w", err)
	}
	if !stat.Mode().IsRegular() || stat.Size() == 0 {
		return ReadRecords(f)
	}

	mm, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("mmap registry: %w", err)
	}
	fadviseSequential(int(f.Fd()), 0, stat.Size())

	records, err := ReadRecords(bytes.NewReader(mm))
	return records, errors.Join(err, mm.Unmap())
}
