package ouigen

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	ouierrors "github.com/tamirms/ouigen/errors"
)

func buildTestTable(t *testing.T) *Table {
	t.Helper()
	records := []RawRecord{
		{"00:1C:B3", "Apple, Inc."},
		{"3C:5A:B4", "Google, Inc."},
		{"B0:BE:76", "TP-LINK TECHNOLOGIES CO.,LTD."},
		{"FC:FB:FB", "Cisco Systems, Inc"},
		{"DC:A6:32", "Raspberry Pi Trading Ltd"},
	}
	table, err := Build(records, WithChunkSize(2))
	if err != nil {
		t.Fatal(err)
	}
	return table
}

func TestGenerateGo(t *testing.T) {
	table := buildTestTable(t)
	artifact, err := GenerateGo(table, GenOptions{Source: "registry.txt"})
	if err != nil {
		t.Fatal(err)
	}
	out := string(artifact)

	landmarks := []string{
		"// Code generated by ouigen. DO NOT EDIT.\n",
		"// Source: registry.txt\n",
		"package vendordb\n",
		"type Vendor uint8\n",
		"\tVendorUnknown Vendor = iota\n",
		"\tVendorApple\n",
		"\tVendorUbiquiti\n",
		"var vendorNames = [...]string{\n",
		"\t\"Texas Instruments\",\n",
		"type entry [4]byte\n",
		"var entries0 = [...]entry{\n",
		"var entries1 = [...]entry{\n",
		"var entries2 = [...]entry{\n",
		"var chunks = [...][]entry{\n",
		"\tentries0[:],\n",
		"var chunkSizes = [...]int{\n",
		"func LookupVendor(mac [6]byte) Vendor {\n",
		"func IsLikelyRandomized(mac [6]byte) bool {\n",
		"func DisplayName(v Vendor) string {\n",
		"// Entries: 5 in 3 chunk(s)\n",
	}
	for _, want := range landmarks {
		if !strings.Contains(out, want) {
			t.Errorf("artifact missing %q", want)
		}
	}

	// 00:1C:B3 sorts first and carries Apple's ordinal.
	appleRow := fmt.Sprintf("\t{0x00, 0x1C, 0xB3, 0x%02X},\n", byte(VendorApple))
	if !strings.Contains(out, appleRow) {
		t.Errorf("artifact missing entry row %q", appleRow)
	}

	if !strings.HasSuffix(out, "// Entries: 5 in 3 chunk(s)\n") {
		t.Errorf("artifact does not end with the entry count trailer")
	}
}

func TestGenerateGoPackageName(t *testing.T) {
	table := buildTestTable(t)
	artifact, err := GenerateGo(table, GenOptions{PackageName: "macdb"})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(artifact), "package macdb\n") {
		t.Error("artifact does not use the configured package name")
	}
	if strings.Contains(string(artifact), "// Source:") {
		t.Error("artifact has a Source line with no source configured")
	}
}

func TestGenerateGoEmpty(t *testing.T) {
	table, err := Build(nil)
	if err != nil {
		t.Fatal(err)
	}
	artifact, err := GenerateGo(table, GenOptions{})
	if err != nil {
		t.Fatal(err)
	}
	out := string(artifact)
	for _, want := range []string{
		"var chunks = [...][]entry{}\n",
		"var chunkSizes = [...]int{}\n",
		"// Entries: 0 in 0 chunk(s)\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("empty-table artifact missing %q", want)
		}
	}
}

func TestGenerateHeader(t *testing.T) {
	table := buildTestTable(t)
	artifact, err := GenerateHeader(table, GenOptions{Source: "registry.txt"})
	if err != nil {
		t.Fatal(err)
	}
	out := string(artifact)

	landmarks := []string{
		"#pragma once\n",
		"#include <cstdint>\n",
		"// Source: registry.txt\n",
		"enum class Vendor : std::uint8_t {\n",
		"    Unknown,\n",
		"    Ubiquiti\n", // last enumerator carries no comma
		"static const char *VendorNames[] {\n",
		"    \"Texas Instruments\",\n",
		"} __attribute__((packed));\n",
		"static const MacEntry mac_entries_0[] = {\n",
		"static const MacEntry mac_entries_2[] = {\n",
		"    { {0x00, 0x1C, 0xB3}, Vendor::Apple },\n",
		"static const MacEntry* const mac_arrays[] = {\n",
		"    mac_entries_0,\n",
		"static const std::size_t mac_array_sizes[] = {\n",
		"static inline Vendor GetVendor(const std::uint8_t macAddress[6])\n",
		"static inline bool IsMacRandomized(const std::uint8_t macAddress[6])\n",
		"static inline const char* VendorToString(Vendor v)\n",
		"// Entries: 5 in 3 chunk(s)\n",
	}
	for _, want := range landmarks {
		if !strings.Contains(out, want) {
			t.Errorf("header missing %q", want)
		}
	}
}

func TestGenerateDispatch(t *testing.T) {
	table := buildTestTable(t)

	goArtifact, err := Generate(table, FormatGo, GenOptions{})
	if err != nil {
		t.Fatal(err)
	}
	direct, err := GenerateGo(table, GenOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(goArtifact, direct) {
		t.Error("Generate(FormatGo) differs from GenerateGo")
	}

	if _, err := Generate(table, "yaml", GenOptions{}); !errors.Is(err, ouierrors.ErrUnknownFormat) {
		t.Errorf("Generate with unknown format: got %v, want ErrUnknownFormat", err)
	}
}

func TestFingerprint(t *testing.T) {
	table := buildTestTable(t)
	a, err := GenerateGo(table, GenOptions{})
	if err != nil {
		t.Fatal(err)
	}
	b, err := GenerateGo(table, GenOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if Fingerprint(a) != Fingerprint(b) {
		t.Error("fingerprints differ for identical artifacts")
	}

	other, err := GenerateGo(table, GenOptions{Source: "different"})
	if err != nil {
		t.Fatal(err)
	}
	if Fingerprint(a) == Fingerprint(other) {
		t.Error("fingerprints collide for distinct artifacts")
	}
}
