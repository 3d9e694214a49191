package user

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Maria@Example.COM ", "maria@example.com"},
		{"", ""},
		{"\tBob\n", "bob"},
	}
	for _, tt := range tests {
		if got := NormalizeEmail(tt.in); got != tt.want {
			t.Errorf("NormalizeEmail(%q) = %q, want %q", tt.in, got, tt.want)
		}
		if got := NormalizeSearch(tt.in); got != tt.want {
			t.Errorf("NormalizeSearch(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
