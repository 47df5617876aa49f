package brandmark

import "testing"

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "empty string", raw: "", want: ""},
		{name: "whitespace only", raw: "   ", want: ""},
		{name: "unknown placeholder", raw: "unknown", want: ""},
		{name: "placeholder is case-insensitive", raw: "UNKNOWN", want: ""},
		{name: "n/a placeholder", raw: "n/a", want: ""},
		{name: "na placeholder", raw: "NA", want: ""},
		{name: "none placeholder", raw: "none", want: ""},
		{name: "null placeholder", raw: "null", want: ""},
		{name: "undefined placeholder", raw: "undefined", want: ""},
		{name: "placeholder with surrounding spaces", raw: "  None  ", want: ""},
		{name: "bare domain gets https prefix", raw: "example.com", want: "https://example.com"},
		{name: "bare domain with path", raw: "example.com/about", want: "https://example.com/about"},
		{name: "http URL unchanged", raw: "http://x.com", want: "http://x.com"},
		{name: "https URL unchanged", raw: "https://x.com/logo.png", want: "https://x.com/logo.png"},
		{name: "URL trimmed", raw: "  https://x.com  ", want: "https://x.com"},
		{name: "dotless string unchanged", raw: "localhost", want: "localhost"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Normalize(tc.raw); got != tc.want {
				t.Errorf("Normalize(%q) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}

func TestIsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want bool
	}{
		{name: "https URL", raw: "https://example.com", want: true},
		{name: "http URL", raw: "http://example.com", want: true},
		{name: "bare domain normalizes to valid", raw: "example.com", want: true},
		{name: "placeholder token", raw: "unknown", want: false},
		{name: "empty string", raw: "", want: false},
		{name: "dotless string", raw: "localhost", want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := IsValid(tc.raw); got != tc.want {
				t.Errorf("IsValid(%q) = %v, want %v", tc.raw, got, tc.want)
			}
		})
	}
}

func TestHostOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "bare domain", raw: "example.com", want: "example.com"},
		{name: "www stripped", raw: "https://www.example.com", want: "example.com"},
		{name: "path ignored", raw: "https://example.com/products/1", want: "example.com"},
		{name: "uppercase host lowered", raw: "https://Example.COM", want: "example.com"},
		{name: "port ignored", raw: "https://example.com:8443", want: "example.com"},
		{name: "placeholder yields nothing", raw: "n/a", want: ""},
		{name: "empty yields nothing", raw: "", want: ""},
		{name: "dotless host rejected", raw: "https://localhost", want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := hostOf(tc.raw); got != tc.want {
				t.Errorf("hostOf(%q) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}
