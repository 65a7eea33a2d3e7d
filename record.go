package ouigen

import (
	"fmt"
	"strings"

	ouierrors "github.com/tamirms/ouigen/errors"
)

// RawRecord is one registry line split into its prefix token and the
// free-text manufacturer string that follows it. Records are transient; they
// exist only between parsing and classification.
type RawRecord struct {
	Prefix       string
	Manufacturer string
}

// ParsePrefix converts a prefix token into its three octets. The token may
// separate bytes with colons, hyphens, or spaces, or use none at all, in any
// hex case. After stripping separators exactly 6 hex digits must remain;
// anything else returns ErrInvalidPrefix.
func ParsePrefix(token string) ([3]byte, error) {
	var prefix [3]byte
	n := 0
	for i := 0; i < len(token); i++ {
		c := token[i]
		if c == ':' || c == '-' || c == ' ' {
			continue
		}
		v, ok := hexValue(c)
		if !ok || n == 6 {
			return prefix, fmt.Errorf("%w: %q", ouierrors.ErrInvalidPrefix, token)
		}
		prefix[n>>1] = prefix[n>>1]<<4 | v
		n++
	}
	if n != 6 {
		return prefix, fmt.Errorf("%w: %q", ouierrors.ErrInvalidPrefix, token)
	}
	return prefix, nil
}

func hexValue(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// splitLine splits a registry line into a RawRecord. It reports ok=false for
// lines that carry no record at all: blank lines, comment lines, and lines
// with a prefix token but no manufacturer text.
func splitLine(line string) (RawRecord, bool) {
	line = strings.TrimSpace(line)
	if line == "" || line[0] == '#' {
		return RawRecord{}, false
	}
	i := strings.IndexAny(line, " \t")
	if i < 0 {
		return RawRecord{}, false
	}
	manufacturer := strings.TrimSpace(line[i+1:])
	if manufacturer == "" {
		return RawRecord{}, false
	}
	return RawRecord{Prefix: line[:i], Manufacturer: manufacturer}, true
}
