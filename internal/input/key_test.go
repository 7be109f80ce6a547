package input

import "testing"

func TestFromRune(t *testing.T) {
	tests := []struct {
		in   rune
		want Key
	}{
		{'w', W},
		{'W', W},
		{'a', A},
		{'s', S},
		{'d', D},
		{'p', P},
		{'Q', Q},
		{'x', Key('X')},
	}

	for _, tt := range tests {
		if got := FromRune(tt.in); got != tt.want {
			t.Errorf("FromRune(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestKeyString(t *testing.T) {
	if got := None.String(); got != "none" {
		t.Errorf("None.String() = %q, want %q", got, "none")
	}
	if got := D.String(); got != "D" {
		t.Errorf("D.String() = %q, want %q", got, "D")
	}
}
