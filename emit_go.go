package ouigen

import (
	"bytes"
	"fmt"
)

// GenerateGo renders the table as a dependency-free Go source file exposing
// LookupVendor, IsLikelyRandomized, and DisplayName over the embedded chunk
// arrays. The output is already gofmt-formatted; no formatter runs on it, so
// identical input yields byte-identical artifacts.
func GenerateGo(t *Table, opts GenOptions) ([]byte, error) {
	if err := verifyVendorTables(); err != nil {
		return nil, err
	}

	var b bytes.Buffer
	b.WriteString("// Code generated by ouigen. DO NOT EDIT.\n")
	if opts.Source != "" {
		fmt.Fprintf(&b, "// Source: %s\n", opts.Source)
	}
	fmt.Fprintf(&b, "\npackage %s\n\n", opts.packageName())

	// Vendor enumeration.
	b.WriteString("// Vendor identifies a recognized hardware manufacturer.\n")
	b.WriteString("type Vendor uint8\n\nconst (\n")
	for v := VendorUnknown; v < numVendors; v++ {
		if v == VendorUnknown {
			fmt.Fprintf(&b, "\tVendor%s Vendor = iota\n", vendorIdents[v])
			continue
		}
		fmt.Fprintf(&b, "\tVendor%s\n", vendorIdents[v])
	}
	b.WriteString(")\n\n")

	// Display-name table, aligned to the enumeration.
	b.WriteString("// vendorNames is indexed by Vendor ordinal.\n")
	b.WriteString("var vendorNames = [...]string{\n")
	for v := VendorUnknown; v < numVendors; v++ {
		fmt.Fprintf(&b, "\t%q,\n", vendorNames[v])
	}
	b.WriteString("}\n\n")

	// Packed entries: 3 prefix bytes + 1 tag byte, no padding.
	b.WriteString("// entry packs a 3-byte address prefix and a vendor tag into 4 bytes.\n")
	b.WriteString("type entry [4]byte\n\n")

	chunks := t.Chunks()
	for ci, chunk := range chunks {
		fmt.Fprintf(&b, "var entries%d = [...]entry{\n", ci)
		for _, e := range chunk {
			fmt.Fprintf(&b, "\t{0x%02X, 0x%02X, 0x%02X, 0x%02X},\n",
				e.Prefix[0], e.Prefix[1], e.Prefix[2], byte(e.Vendor))
		}
		b.WriteString("}\n\n")
	}

	b.WriteString("// chunks indexes the per-chunk entry arrays in construction order.\n")
	if len(chunks) == 0 {
		b.WriteString("var chunks = [...][]entry{}\n\n")
		b.WriteString("// chunkSizes holds the entry count of each chunk.\n")
		b.WriteString("var chunkSizes = [...]int{}\n\n")
	} else {
		b.WriteString("var chunks = [...][]entry{\n")
		for ci := range chunks {
			fmt.Fprintf(&b, "\tentries%d[:],\n", ci)
		}
		b.WriteString("}\n\n")
		b.WriteString("// chunkSizes holds the entry count of each chunk.\n")
		b.WriteString("var chunkSizes = [...]int{\n")
		for _, chunk := range chunks {
			fmt.Fprintf(&b, "\t%d,\n", len(chunk))
		}
		b.WriteString("}\n\n")
	}

	b.WriteString(`func comparePrefix(m0, m1, m2 byte, e entry) int {
	if m0 != e[0] {
		return int(m0) - int(e[0])
	}
	if m1 != e[1] {
		return int(m1) - int(e[1])
	}
	if m2 != e[2] {
		return int(m2) - int(e[2])
	}
	return 0
}

// LookupVendor returns the vendor whose registered block contains mac, keyed
// by its first three octets, or VendorUnknown if no chunk holds the prefix.
func LookupVendor(mac [6]byte) Vendor {
	for ci := range chunks {
		c := chunks[ci]
		lo, hi := 0, chunkSizes[ci]-1
		for lo <= hi {
			mid := int(uint(lo+hi) >> 1)
			d := comparePrefix(mac[0], mac[1], mac[2], c[mid])
			if d == 0 {
				return Vendor(c[mid][3])
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

// IsLikelyRandomized reports whether the locally-administered bit of the
// first address byte is set. A set bit indicates a software-randomized
// address; LookupVendor answers for such addresses are unreliable.
func IsLikelyRandomized(mac [6]byte) bool {
	return mac[0]&0x02 != 0
}

// DisplayName returns the display string for v. Tags outside the known
// enumeration map to the Unknown display string.
func DisplayName(v Vendor) string {
	if int(v) >= len(vendorNames) {
		return vendorNames[VendorUnknown]
	}
	return vendorNames[v]
}

`)
	b.WriteString(trailer(t))
	b.WriteString("\n")
	return b.Bytes(), nil
}
