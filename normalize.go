package ouigen

// Normalize canonicalizes a free-text manufacturer string into the form the
// classifier matches against: uppercase ASCII letters and digits, with every
// maximal run of other characters collapsed to a single interior space and
// leading/trailing separators dropped.
//
// Normalize is total and idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	out := make([]byte, 0, len(s))
	pendingSpace := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9', c >= 'A' && c <= 'Z':
			// keep as-is
		case c >= 'a' && c <= 'z':
			c -= 'a' - 'A'
		default:
			// Any non-ASCII-alphanumeric byte (including each byte of a
			// multi-byte UTF-8 sequence) acts as a separator.
			pendingSpace = true
			continue
		}
		if pendingSpace && len(out) > 0 {
			out = append(out, ' ')
		}
		pendingSpace = false
		out = append(out, c)
	}
	return string(out)
}
