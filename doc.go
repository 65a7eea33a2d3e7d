// Package ouigen converts a flat text registry of MAC address prefixes (OUIs)
// and free-text manufacturer names into a compact, statically searchable
// vendor lookup table, emitted as a self-contained source file.
//
// The pipeline is strictly forward: raw registry line -> normalized
// manufacturer string -> vendor tag -> sorted entry -> chunked immutable
// table -> generated artifact. Classification is deterministic and
// precedence-ordered; matching is strict whole-token matching on a
// normalized string, never fuzzy.
//
// # Basic Usage
//
// Building a table:
//
//	records, err := ouigen.ReadFile("mac-prefixes")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	table, err := ouigen.Build(records, ouigen.WithChunkSize(250))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Querying a table:
//
//	mac := [6]byte{0x00, 0x1C, 0xB3, 0x12, 0x34, 0x56}
//	if ouigen.IsLikelyRandomized(mac) {
//	    // locally-administered bit set; any vendor answer is unreliable
//	}
//	fmt.Println(table.Lookup(mac))
//
// Emitting an artifact:
//
//	src, err := ouigen.GenerateGo(table, ouigen.GenOptions{Source: "mac-prefixes"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("vendordb/vendordb.go", src, 0o644)
//
// # Package Structure
//
// The implementation is organized as follows:
//
//   - Classification: normalize.go (Normalize), rules.go (ordered rule table),
//     classify.go (Classify), vendor.go (Vendor enum, display names)
//   - Parsing: record.go (RawRecord, ParsePrefix), reader.go (ReadRecords, ReadFile)
//   - Building: builder.go (Builder, Build), builder_options.go (BuildOption,
//     With* functions), builder_parallel.go (parallel classification)
//   - Querying: table.go (Table, Lookup, IsLikelyRandomized, Stats)
//   - Emission: emit.go (GenOptions), emit_go.go (Go source), emit_cpp.go
//     (C++ header), checksum.go (artifact fingerprint)
//   - Token matching: internal/wordmatch (whole-token phrase search)
//   - Platform: fadvise_*.go (sequential read hint for registry files)
package ouigen
