package ouigen

import (
	"bytes"
	"fmt"
	"strings"
)

// GenerateHeader renders the table as a C++ header, the artifact shape the
// embedded firmware consumes: enum class Vendor, VendorNames[], a packed
// MacEntry struct, one mac_entries_N array per chunk, the chunk pointer and
// size indexes, and the three inline query functions.
func GenerateHeader(t *Table, opts GenOptions) ([]byte, error) {
	if err := verifyVendorTables(); err != nil {
		return nil, err
	}

	var b bytes.Buffer
	b.WriteString("#pragma once\n\n")
	b.WriteString("#include <cstdint>\n#include <cstddef>\n\n")
	b.WriteString("// Auto-generated. Do not edit by hand.\n")
	if opts.Source != "" {
		fmt.Fprintf(&b, "// Source: %s\n", opts.Source)
	}
	b.WriteString("\n")

	b.WriteString("enum class Vendor : std::uint8_t {\n")
	for v := VendorUnknown; v < numVendors; v++ {
		comma := ","
		if v+1 == numVendors {
			comma = ""
		}
		fmt.Fprintf(&b, "    %s%s\n", vendorIdents[v], comma)
	}
	b.WriteString("};\n\n")

	b.WriteString("static const char *VendorNames[] {\n")
	for v := VendorUnknown; v < numVendors; v++ {
		comma := ","
		if v+1 == numVendors {
			comma = ""
		}
		name := strings.ReplaceAll(vendorNames[v], `"`, `\"`)
		fmt.Fprintf(&b, "    \"%s\"%s\n", name, comma)
	}
	b.WriteString("};\n\n")

	b.WriteString("struct MacEntry {\n")
	b.WriteString("    std::uint8_t prefix[3];\n")
	b.WriteString("    Vendor vendor;\n")
	b.WriteString("} __attribute__((packed));\n\n")

	chunks := t.Chunks()
	for ci, chunk := range chunks {
		fmt.Fprintf(&b, "static const MacEntry mac_entries_%d[] = {\n", ci)
		for _, e := range chunk {
			fmt.Fprintf(&b, "    { {0x%02X, 0x%02X, 0x%02X}, Vendor::%s },\n",
				e.Prefix[0], e.Prefix[1], e.Prefix[2], vendorIdents[e.Vendor])
		}
		b.WriteString("};\n\n")
	}

	b.WriteString("static const MacEntry* const mac_arrays[] = {\n")
	for ci := range chunks {
		fmt.Fprintf(&b, "    mac_entries_%d,\n", ci)
	}
	b.WriteString("};\n\n")

	b.WriteString("static const std::size_t mac_array_sizes[] = {\n")
	for _, chunk := range chunks {
		fmt.Fprintf(&b, "    %d,\n", len(chunk))
	}
	b.WriteString("};\n\n")

	b.WriteString(`static inline int ComparePrefix3(const std::uint8_t a[3], const std::uint8_t b[3])
{
    if (a[0] != b[0]) return (int)a[0] - (int)b[0];
    if (a[1] != b[1]) return (int)a[1] - (int)b[1];
    if (a[2] != b[2]) return (int)a[2] - (int)b[2];
    return 0;
}

static inline Vendor GetVendor(const std::uint8_t macAddress[6])
{
    const std::uint8_t key[3] = { macAddress[0], macAddress[1], macAddress[2] };
    const std::size_t numArrays = sizeof(mac_arrays) / sizeof(mac_arrays[0]);
    for (std::size_t ai = 0; ai < numArrays; ++ai) {
        const MacEntry* entries = mac_arrays[ai];
        const int size = (int)mac_array_sizes[ai];
        int low = 0;
        int high = size - 1;
        while (low <= high) {
            int mid = (low + high) >> 1;
            int cmp = ComparePrefix3(key, entries[mid].prefix);
            if (cmp == 0) return entries[mid].vendor;
            if (cmp > 0) low = mid + 1; else high = mid - 1;
        }
    }
    return Vendor::Unknown;
}

static inline bool IsMacRandomized(const std::uint8_t macAddress[6])
{
    // Locally administered (U/L) bit set => very likely randomized/spoofed.
    return (macAddress[0] & 0x02u) != 0;
}

static inline const char* VendorToString(Vendor v)
{
    return VendorNames[static_cast<std::size_t>(v)];
}

`)
	b.WriteString(trailer(t))
	b.WriteString("\n")
	return b.Bytes(), nil
}
