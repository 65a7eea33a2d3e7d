package ouigen

import (
	"fmt"

	ouierrors "github.com/tamirms/ouigen/errors"
)

// Artifact formats understood by Generate.
const (
	FormatGo     = "go"     // self-contained Go source file
	FormatHeader = "header" // C++ header, the original firmware artifact
)

// GenOptions configures artifact emission.
type GenOptions struct {
	// PackageName is the package of the emitted Go source file.
	// Defaults to "vendordb". Ignored by the C++ header emitter.
	PackageName string

	// Source, when set, records the input registry path in the artifact's
	// banner comment.
	Source string
}

func (o GenOptions) packageName() string {
	if o.PackageName == "" {
		return "vendordb"
	}
	return o.PackageName
}

// Generate renders the table in the named format. Identical tables and
// options produce byte-identical artifacts.
func Generate(t *Table, format string, opts GenOptions) ([]byte, error) {
	switch format {
	case FormatGo:
		return GenerateGo(t, opts)
	case FormatHeader:
		return GenerateHeader(t, opts)
	}
	return nil, fmt.Errorf("%w: %q", ouierrors.ErrUnknownFormat, format)
}

// trailer is the entry/chunk count comment closing every artifact.
func trailer(t *Table) string {
	return fmt.Sprintf("// Entries: %d in %d chunk(s)", t.Len(), t.NumChunks())
}
