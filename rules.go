package ouigen

// rule binds a vendor tag to the normalized phrases that identify it. A
// phrase matches only when it aligns to whole tokens of the normalized
// manufacturer string.
type rule struct {
	vendor  Vendor
	phrases []string
}

// classifyRules is evaluated strictly in order; the first rule with any
// matching phrase wins. Ordering is a precedence mechanism: specific,
// collision-prone phrases come before broader single tokens.
//
// Vendors identifiable only by a short ambiguous acronym are matched
// exclusively via their full expanded name. "TI" or "CSR" as bare tokens
// would mis-tag unrelated strings ("Information Technology Limited",
// "Texas Digital Systems"), so those tokens never appear below.
var classifyRules = []rule{
	{VendorCsr, []string{"CAMBRIDGE SILICON RADIO"}},
	{VendorTi, []string{"TEXAS INSTRUMENTS"}}, // never plain "TEXAS" or "TI"
	{VendorMikrotik, []string{"MIKROTIK", "ROUTERBOARD"}},
	{VendorTpLink, []string{"TP LINK"}},
	{VendorDLink, []string{"D LINK"}},
	{VendorUbiquiti, []string{"UBIQUITI"}},
	{VendorMercusys, []string{"MERCUSYS"}},
	{VendorMercury, []string{"MERCURY"}},
	{VendorIntelbras, []string{"INTELBRAS"}},
	{VendorAsus, []string{"ASUSTEK", "ASUS"}},
	{VendorHuawei, []string{"HUAWEI"}},
	{VendorGoogle, []string{"GOOGLE"}},
	{VendorApple, []string{"APPLE"}},
	{VendorSamsung, []string{"SAMSUNG"}},
	{VendorMicrosoft, []string{"MICROSOFT"}},
	{VendorMotorola, []string{"MOTOROLA"}},
	{VendorIntel, []string{"INTEL"}},
	{VendorCisco, []string{"CISCO"}},
	{VendorBroadcom, []string{"BROADCOM"}},
	{VendorEspressif, []string{"ESPRESSIF"}},
	{VendorNetgear, []string{"NETGEAR"}},
	{VendorRaspberryPi, []string{"RASPBERRY PI"}},
	{VendorSony, []string{"SONY"}},
	{VendorTile, []string{"TILE"}},
	{VendorChipolo, []string{"CHIPOLO"}},
	{VendorTracki, []string{"TRACKI"}},
	{VendorInnway, []string{"INNWAY"}},
}
