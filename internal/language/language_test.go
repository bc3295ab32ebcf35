package language

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"en", "en"},
		{"English", "en"},
		{"JAPANESE", "ja"},
		{"jp", "ja"},
		{"S-Chinese", "zhs"},
		{"Portuguese (Brazil)", "pt"},
		{"klingon", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Normalize(tt.input); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestSame(t *testing.T) {
	if !Same("Japanese", "ja") {
		t.Error("Japanese should equal ja")
	}
	if Same("ja", "de") {
		t.Error("ja should differ from de")
	}
	// Unrecognized values fall back to a case-insensitive comparison.
	if !Same("Klingon", "klingon") {
		t.Error("identical unknown spellings should match")
	}
}

func TestDisplayName(t *testing.T) {
	if got := DisplayName("de"); got != "German" {
		t.Errorf("DisplayName(de) = %q", got)
	}
	if got := DisplayName(""); got != "Unknown" {
		t.Errorf("DisplayName(empty) = %q", got)
	}
	if got := DisplayName("xx"); got != "XX" {
		t.Errorf("DisplayName(xx) = %q", got)
	}
}
