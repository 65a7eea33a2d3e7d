package ouigen

// Entry pairs a 3-byte address prefix with its vendor tag. Entries are
// created during Build and immutable afterwards; packed into the artifact
// they occupy exactly 4 bytes.
type Entry struct {
	Prefix [3]byte
	Vendor Vendor
}

// sortKey packs the entry into its ascending sort order: prefix bytes first,
// vendor ordinal as tie-breaker.
func (e Entry) sortKey() uint32 {
	return uint32(e.Prefix[0])<<24 | uint32(e.Prefix[1])<<16 | uint32(e.Prefix[2])<<8 | uint32(e.Vendor)
}

// Table is the full ordered entry sequence, partitioned into fixed-size
// chunks. It is built once and read-only thereafter, so all methods are safe
// for unsynchronized concurrent use.
type Table struct {
	entries   []Entry
	chunkSize int
	stats     Stats
}

// Stats holds build statistics for a table.
type Stats struct {
	Entries          int
	Chunks           int
	ChunkSize        int
	DroppedMalformed int
	DroppedUnknown   int
}

// Stats returns the table's build statistics.
func (t *Table) Stats() Stats {
	return t.stats
}

// Len returns the total number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// NumChunks returns the number of chunks: ceil(Len / chunk size).
func (t *Table) NumChunks() int {
	return t.stats.Chunks
}

// Entries returns the full sorted entry sequence. The caller must not modify
// the returned slice.
func (t *Table) Entries() []Entry {
	return t.entries
}

// Chunks returns the entry sequence partitioned into contiguous chunks. All
// chunks hold exactly the configured chunk size except possibly the last.
// The subslices alias the table's entries and must not be modified.
func (t *Table) Chunks() [][]Entry {
	if len(t.entries) == 0 {
		return nil
	}
	chunks := make([][]Entry, 0, t.stats.Chunks)
	for start := 0; start < len(t.entries); start += t.chunkSize {
		chunks = append(chunks, t.entries[start:min(start+t.chunkSize, len(t.entries))])
	}
	return chunks
}

// Lookup returns the vendor owning the address block that contains mac,
// keyed by its first three octets. Chunks are probed in order; within each
// chunk a binary search compares keys lexicographically. If no chunk holds
// the prefix, Lookup returns VendorUnknown.
//
// The table may contain duplicate or conflicting prefixes (no dedup pass is
// performed); Lookup returns whichever matching entry the search lands on
// first.
func (t *Table) Lookup(mac [6]byte) Vendor {
	key := [3]byte{mac[0], mac[1], mac[2]}
	for start := 0; start < len(t.entries); start += t.chunkSize {
		chunk := t.entries[start:min(start+t.chunkSize, len(t.entries))]
		lo, hi := 0, len(chunk)-1
		for lo <= hi {
			mid := int(uint(lo+hi) >> 1)
			d := comparePrefix(key, chunk[mid].Prefix)
			if d == 0 {
				return chunk[mid].Vendor
			}
			if d > 0 {
				lo = mid + 1
			} else {
				hi = mid - 1
			}
		}
	}
	return VendorUnknown
}

// comparePrefix compares two 3-byte prefixes lexicographically using signed
// byte differences.
func comparePrefix(a, b [3]byte) int {
	if a[0] != b[0] {
		return int(a[0]) - int(b[0])
	}
	if a[1] != b[1] {
		return int(a[1]) - int(b[1])
	}
	if a[2] != b[2] {
		return int(a[2]) - int(b[2])
	}
	return 0
}

// IsLikelyRandomized reports whether the locally-administered bit of the
// first address byte is set. A set bit strongly indicates a software
// generated or randomized address rather than one assigned from a
// manufacturer's registered block; callers should check this before trusting
// any Lookup answer for the address.
func IsLikelyRandomized(mac [6]byte) bool {
	return mac[0]&0x02 != 0
}
