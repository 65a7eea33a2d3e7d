package ouigen

import (
	"fmt"

	ouierrors "github.com/tamirms/ouigen/errors"
)

// Vendor is a closed-set identifier for a recognized manufacturer. The zero
// value is VendorUnknown. Ordinals are part of the generated artifact's
// binary layout (one tag byte per entry), so the order below is stable.
type Vendor uint8

const (
	VendorUnknown Vendor = iota
	VendorApple
	VendorAsus
	VendorBroadcom
	VendorChipolo
	VendorCisco
	VendorCsr
	VendorDLink
	VendorEspressif
	VendorGoogle
	VendorHuawei
	VendorInnway
	VendorIntel
	VendorIntelbras
	VendorMercury
	VendorMercusys
	VendorMicrosoft
	VendorMikrotik
	VendorMotorola
	VendorNetgear
	VendorRaspberryPi
	VendorQualcomm
	VendorSamsung
	VendorSony
	VendorTi
	VendorTile
	VendorTpLink
	VendorTracki
	VendorUbiquiti

	numVendors
)

// vendorIdents holds the bare enumerator names used by the emitters, aligned
// 1:1 with the Vendor ordinals above.
var vendorIdents = [numVendors]string{
	VendorUnknown:     "Unknown",
	VendorApple:       "Apple",
	VendorAsus:        "Asus",
	VendorBroadcom:    "Broadcom",
	VendorChipolo:     "Chipolo",
	VendorCisco:       "Cisco",
	VendorCsr:         "Csr",
	VendorDLink:       "DLink",
	VendorEspressif:   "Espressif",
	VendorGoogle:      "Google",
	VendorHuawei:      "Huawei",
	VendorInnway:      "Innway",
	VendorIntel:       "Intel",
	VendorIntelbras:   "Intelbras",
	VendorMercury:     "Mercury",
	VendorMercusys:    "Mercusys",
	VendorMicrosoft:   "Microsoft",
	VendorMikrotik:    "Mikrotik",
	VendorMotorola:    "Motorola",
	VendorNetgear:     "Netgear",
	VendorRaspberryPi: "RaspberryPi",
	VendorQualcomm:    "Qualcomm",
	VendorSamsung:     "Samsung",
	VendorSony:        "Sony",
	VendorTi:          "Ti",
	VendorTile:        "Tile",
	VendorTpLink:      "TpLink",
	VendorTracki:      "Tracki",
	VendorUbiquiti:    "Ubiquiti",
}

// vendorNames holds the canonical display strings, aligned 1:1 with the
// Vendor ordinals. Every tag has exactly one display string and every display
// string belongs to exactly one tag; verifyVendorTables enforces this before
// any artifact is produced.
var vendorNames = [numVendors]string{
	VendorUnknown:     "Unknown",
	VendorApple:       "Apple",
	VendorAsus:        "Asus",
	VendorBroadcom:    "Broadcom",
	VendorChipolo:     "Chipolo",
	VendorCisco:       "Cisco",
	VendorCsr:         "Cambridge Silicon Radio",
	VendorDLink:       "D-Link",
	VendorEspressif:   "Espressif",
	VendorGoogle:      "Google",
	VendorHuawei:      "Huawei",
	VendorInnway:      "Innway",
	VendorIntel:       "Intel",
	VendorIntelbras:   "Intelbras",
	VendorMercury:     "Mercury",
	VendorMercusys:    "Mercusys",
	VendorMicrosoft:   "Microsoft",
	VendorMikrotik:    "Mikrotik",
	VendorMotorola:    "Motorola",
	VendorNetgear:     "Netgear",
	VendorRaspberryPi: "Raspberry Pi",
	VendorQualcomm:    "Qualcomm",
	VendorSamsung:     "Samsung",
	VendorSony:        "Sony",
	VendorTi:          "Texas Instruments",
	VendorTile:        "Tile",
	VendorTpLink:      "TP-Link",
	VendorTracki:      "Tracki",
	VendorUbiquiti:    "Ubiquiti",
}

// NumVendors returns the size of the closed vendor enumeration, including
// VendorUnknown.
func NumVendors() int {
	return int(numVendors)
}

// String returns the canonical display string for v. Tags outside the closed
// enumeration map to the Unknown display string.
func (v Vendor) String() string {
	if v >= numVendors {
		return vendorNames[VendorUnknown]
	}
	return vendorNames[v]
}

// verifyVendorTables checks the 1:1 correspondence between the vendor
// enumeration and its parallel identifier and display-name tables. A
// violation here would corrupt every generated artifact, so callers treat it
// as fatal.
func verifyVendorTables() error {
	seenName := make(map[string]Vendor, numVendors)
	seenIdent := make(map[string]Vendor, numVendors)
	for v := VendorUnknown; v < numVendors; v++ {
		name := vendorNames[v]
		ident := vendorIdents[v]
		if name == "" {
			return fmt.Errorf("%w: tag %d has no display string", ouierrors.ErrVendorTableMismatch, v)
		}
		if ident == "" {
			return fmt.Errorf("%w: tag %d has no identifier", ouierrors.ErrVendorTableMismatch, v)
		}
		if prev, dup := seenName[name]; dup {
			return fmt.Errorf("%w: display string %q used by tags %d and %d", ouierrors.ErrVendorTableMismatch, name, prev, v)
		}
		if prev, dup := seenIdent[ident]; dup {
			return fmt.Errorf("%w: identifier %q used by tags %d and %d", ouierrors.ErrVendorTableMismatch, ident, prev, v)
		}
		seenName[name] = v
		seenIdent[ident] = v
	}
	return nil
}
