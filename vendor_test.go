package ouigen

import "testing"

func TestVerifyVendorTables(t *testing.T) {
	if err := verifyVendorTables(); err != nil {
		t.Fatalf("verifyVendorTables: %v", err)
	}
}

// TestVendorOrdinals pins the ordinals that are baked into emitted
// artifacts. Reordering the enumeration changes the packed tag byte and
// silently breaks compatibility with previously generated tables.
func TestVendorOrdinals(t *testing.T) {
	cases := []struct {
		vendor Vendor
		ord    uint8
	}{
		{VendorUnknown, 0},
		{VendorApple, 1},
		{VendorCsr, 6},
		{VendorDLink, 7},
		{VendorRaspberryPi, 20},
		{VendorQualcomm, 21},
		{VendorTi, 24},
		{VendorTpLink, 26},
		{VendorUbiquiti, 28},
	}
	for _, tc := range cases {
		if uint8(tc.vendor) != tc.ord {
			t.Errorf("ordinal of %s = %d, want %d", vendorIdents[tc.vendor], uint8(tc.vendor), tc.ord)
		}
	}
	if NumVendors() != 29 {
		t.Errorf("NumVendors() = %d, want 29", NumVendors())
	}
}

func TestVendorString(t *testing.T) {
	cases := []struct {
		vendor Vendor
		want   string
	}{
		{VendorUnknown, "Unknown"},
		{VendorApple, "Apple"},
		{VendorCsr, "Cambridge Silicon Radio"},
		{VendorDLink, "D-Link"},
		{VendorRaspberryPi, "Raspberry Pi"},
		{VendorTi, "Texas Instruments"},
		{VendorTpLink, "TP-Link"},
		// Out-of-range tags map to the Unknown display string.
		{Vendor(200), "Unknown"},
	}
	for _, tc := range cases {
		if got := tc.vendor.String(); got != tc.want {
			t.Errorf("Vendor(%d).String() = %q, want %q", uint8(tc.vendor), got, tc.want)
		}
	}
}
