package ouigen

import (
	"math/rand"
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"Apple, Inc.", "APPLE INC"},
		{"TP-Link Technologies Co., Ltd.", "TP LINK TECHNOLOGIES CO LTD"},
		{"  samsung   electronics  ", "SAMSUNG ELECTRONICS"},
		{"D-Link", "D LINK"},
		{"Routerboard.com", "ROUTERBOARD COM"},
		{"Café Networks", "CAF NETWORKS"},
		{"---", ""},
		{"...", ""},
		{"a1:b2", "A1 B2"},
		{"ALREADY NORMALIZED", "ALREADY NORMALIZED"},
		{"Samsung Electro-Mechanics(Thailand)", "SAMSUNG ELECTRO MECHANICS THAILAND"},
	}
	for _, tc := range cases {
		if got := Normalize(tc.in); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

// TestNormalizeProperties checks idempotence and the output charset over
// deterministic pseudo-random inputs.
func TestNormalizeProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 2000; i++ {
		in := randomInput(rng)
		once := Normalize(in)

		if twice := Normalize(once); twice != once {
			t.Fatalf("not idempotent: Normalize(%q) = %q, re-normalized to %q", in, once, twice)
		}
		checkNormalized(t, in, once)
	}
}

// randomInput produces strings mixing letters, digits, punctuation, spaces,
// and multi-byte runes.
func randomInput(rng *rand.Rand) string {
	const alphabet = "abcXYZ019 ,.-_:;()/&\té世"
	runes := []rune(alphabet)
	n := rng.Intn(60)
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteRune(runes[rng.Intn(len(runes))])
	}
	return sb.String()
}

func checkNormalized(t *testing.T, in, out string) {
	t.Helper()
	if strings.HasPrefix(out, " ") || strings.HasSuffix(out, " ") {
		t.Fatalf("Normalize(%q) = %q: leading or trailing space", in, out)
	}
	if strings.Contains(out, "  ") {
		t.Fatalf("Normalize(%q) = %q: double space", in, out)
	}
	for i := 0; i < len(out); i++ {
		c := out[i]
		switch {
		case c >= '0' && c <= '9', c >= 'A' && c <= 'Z', c == ' ':
		default:
			t.Fatalf("Normalize(%q) = %q: invalid byte %q", in, out, c)
		}
	}
}
