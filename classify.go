package ouigen

import "github.com/tamirms/ouigen/internal/wordmatch"

// Classify maps a free-text manufacturer string to its vendor tag.
//
// The input is normalized, then the fixed rule list is evaluated strictly in
// order; within a rule, phrases are tried in order. The first whole-token
// phrase match decides the tag. If no rule matches, Classify returns
// VendorUnknown. Classify is a pure function of its input and the rule table.
func Classify(manufacturer string) Vendor {
	m := Normalize(manufacturer)
	for _, r := range classifyRules {
		for _, phrase := range r.phrases {
			if wordmatch.Contains(m, phrase) {
				return r.vendor
			}
		}
	}
	return VendorUnknown
}
