// Bench measures build time and lookup throughput for a vendor table built
// from a registry file.
//
// Usage:
//
//	go run ./cmd/bench -input mac-prefixes -lookups 10000000
//
// Flags:
//
//	-input      Registry file path (default: mac-prefixes)
//	-lookups    Number of lookups to time (default: 10,000,000)
//	-chunk-size Entries per chunk (default: 250)
//	-workers    Classification workers for the build (default: 1)
//	-hit-ratio  Fraction of lookups targeting known prefixes (default: 0.5)
//
// The MAC sample is derived from a murmur3 counter stream, so runs are
// deterministic; lookup results are folded into an xxh3 digest both to keep
// the compiler from eliding the loop and to let runs be compared.
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/spaolacci/murmur3"
	"github.com/zeebo/xxh3"

	"github.com/tamirms/ouigen"
)

// sampleSize is the number of pre-generated MACs cycled through during the
// timed loop. Power of two so indexing is a mask, not a division.
const sampleSize = 1 << 16

func main() {
	inputFlag := flag.String("input", "mac-prefixes", "registry file path")
	lookupsFlag := flag.Int("lookups", 10_000_000, "number of lookups to time")
	chunkFlag := flag.Int("chunk-size", ouigen.DefaultChunkSize, "entries per chunk")
	workersFlag := flag.Int("workers", 1, "classification workers for the build")
	hitFlag := flag.Float64("hit-ratio", 0.5, "fraction of lookups targeting known prefixes")
	flag.Parse()

	records, err := ouigen.ReadFile(*inputFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read registry: %v\n", err)
		os.Exit(1)
	}

	buildStart := time.Now()
	table, err := ouigen.Build(records,
		ouigen.WithChunkSize(*chunkFlag),
		ouigen.WithWorkers(*workersFlag),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "build table: %v\n", err)
		os.Exit(1)
	}
	buildElapsed := time.Since(buildStart)

	st := table.Stats()
	fmt.Printf("build:   %d entries in %d chunk(s), %v (dropped: %d malformed, %d unknown)\n",
		st.Entries, st.Chunks, buildElapsed, st.DroppedMalformed, st.DroppedUnknown)

	macs := generateMACs(table, *hitFlag)
	results := make([]byte, *lookupsFlag)

	start := time.Now()
	for i := range results {
		results[i] = byte(table.Lookup(macs[i&(sampleSize-1)]))
	}
	elapsed := time.Since(start)

	perOp := elapsed / time.Duration(*lookupsFlag)
	rate := float64(*lookupsFlag) / elapsed.Seconds()
	fmt.Printf("lookups: %d in %v (%.1f ns/op, %.2fM ops/s)\n",
		*lookupsFlag, elapsed, float64(perOp.Nanoseconds()), rate/1e6)
	fmt.Printf("digest:  %016x\n", xxh3.Hash(results))
}

// generateMACs derives a deterministic pseudo-random MAC sample from a
// murmur3 counter stream. Roughly hitRatio of the sample reuses prefixes
// present in the table; the rest are uniform and almost always miss.
func generateMACs(table *ouigen.Table, hitRatio float64) [][6]byte {
	entries := table.Entries()
	hitPermille := uint64(hitRatio * 1000)

	macs := make([][6]byte, sampleSize)
	var ctr [8]byte
	for i := range macs {
		binary.LittleEndian.PutUint64(ctr[:], uint64(i))
		h1, h2 := murmur3.Sum128(ctr[:])

		var mac [6]byte
		binary.LittleEndian.PutUint64(ctr[:], h1)
		copy(mac[:], ctr[:6])
		if len(entries) > 0 && h2%1000 < hitPermille {
			mac[0], mac[1], mac[2] = entryPrefix(entries[h1%uint64(len(entries))])
		}
		macs[i] = mac
	}
	return macs
}

func entryPrefix(e ouigen.Entry) (byte, byte, byte) {
	return e.Prefix[0], e.Prefix[1], e.Prefix[2]
}
