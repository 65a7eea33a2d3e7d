package ouigen

import (
	"cmp"
	"slices"

	ouierrors "github.com/tamirms/ouigen/errors"
)

// pendingRecord is a record that passed prefix parsing and is waiting for
// classification at Build time.
type pendingRecord struct {
	prefix       [3]byte
	manufacturer string
}

// Builder accumulates registry records and produces an immutable Table.
//
// Usage:
//
//	builder, err := ouigen.NewBuilder(ouigen.WithChunkSize(250))
//	if err != nil { return err }
//
//	for _, rec := range records {
//	    if err := builder.AddRecord(rec); err != nil { return err }
//	}
//	table, err := builder.Build()
//
// Records with malformed prefixes or unrecognized vendors are dropped
// silently; the drop totals are available via Table.Stats. A builder is
// single-use: after Build it only returns ErrBuilderClosed.
type Builder struct {
	cfg     *buildConfig
	pending []pendingRecord
	closed  bool

	droppedMalformed int
	droppedUnknown   int
}

// NewBuilder creates a builder. It fails if the vendor enumeration and its
// display-name table have fallen out of sync, since that would corrupt every
// artifact generated from the resulting table.
func NewBuilder(opts ...BuildOption) (*Builder, error) {
	if err := verifyVendorTables(); err != nil {
		return nil, err
	}

	cfg := defaultBuildConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.chunkSize <= 0 {
		return nil, ouierrors.ErrChunkSizeInvalid
	}
	if cfg.workers < 0 {
		return nil, ouierrors.ErrWorkersInvalid
	}

	return &Builder{cfg: cfg}, nil
}

// AddLine feeds one raw registry line to the builder. Blank lines, comment
// lines, and lines without a manufacturer string carry no record and are
// ignored outright; lines whose prefix token is malformed are dropped and
// counted.
func (b *Builder) AddLine(line string) error {
	if b.closed {
		return ouierrors.ErrBuilderClosed
	}
	rec, ok := splitLine(line)
	if !ok {
		return nil
	}
	return b.AddRecord(rec)
}

// AddRecord feeds one parsed record to the builder. A malformed prefix drops
// the record silently (counted in stats), never fails the build.
func (b *Builder) AddRecord(rec RawRecord) error {
	if b.closed {
		return ouierrors.ErrBuilderClosed
	}

	prefix, err := ParsePrefix(rec.Prefix)
	if err != nil {
		b.droppedMalformed++
		return nil
	}

	b.pending = append(b.pending, pendingRecord{prefix: prefix, manufacturer: rec.Manufacturer})
	return nil
}

// Build classifies all pending records, drops the unrecognized ones, sorts
// the survivors by (byte0, byte1, byte2, tag), and returns the finished
// Table. An input with zero recognized records yields a valid empty Table.
func (b *Builder) Build() (*Table, error) {
	if b.closed {
		return nil, ouierrors.ErrBuilderClosed
	}
	b.closed = true

	tags := b.classifyPending()

	entries := make([]Entry, 0, len(b.pending))
	for i, rec := range b.pending {
		if tags[i] == VendorUnknown {
			b.droppedUnknown++
			continue
		}
		entries = append(entries, Entry{Prefix: rec.prefix, Vendor: tags[i]})
	}
	b.pending = nil

	// Exact duplicates and conflicting (prefix -> different vendor) records
	// are kept; ordering alone resolves them, matching the registry's
	// expectation that prefixes are unique after upstream curation.
	slices.SortFunc(entries, func(x, y Entry) int {
		return cmp.Compare(x.sortKey(), y.sortKey())
	})

	return &Table{
		entries:   entries,
		chunkSize: b.cfg.chunkSize,
		stats: Stats{
			Entries:          len(entries),
			Chunks:           (len(entries) + b.cfg.chunkSize - 1) / b.cfg.chunkSize,
			ChunkSize:        b.cfg.chunkSize,
			DroppedMalformed: b.droppedMalformed,
			DroppedUnknown:   b.droppedUnknown,
		},
	}, nil
}

// Build is a convenience wrapper that runs the full record pipeline in one
// call: parse, classify, drop, sort, chunk.
func Build(records []RawRecord, opts ...BuildOption) (*Table, error) {
	b, err := NewBuilder(opts...)
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if err := b.AddRecord(rec); err != nil {
			return nil, err
		}
	}
	return b.Build()
}
