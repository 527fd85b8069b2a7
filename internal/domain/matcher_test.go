package domain

import "testing"

func TestCompanyFragment(t *testing.T) {
	tests := []struct {
		company string
		want    string
	}{
		{"Acme", "-acme."},
		{"MindBody", "-mindbody."},
		{"", "-."},
	}

	for _, tt := range tests {
		if got := CompanyFragment(tt.company); got != tt.want {
			t.Errorf("CompanyFragment(%q) = %q, want %q", tt.company, got, tt.want)
		}
	}
}

func TestMatcher_Match(t *testing.T) {
	tests := []struct {
		name    string
		company string
		path    string
		want    bool
	}{
		{
			name:    "exact company mail record",
			company: "Acme",
			path:    "/archive/2024/20240101T000000-acme.eml",
			want:    true,
		},
		{
			name:    "note record",
			company: "acme",
			path:    "/archive/2024/20240101T000000-acme.md",
			want:    true,
		},
		{
			name:    "uppercase filename",
			company: "acme",
			path:    "/archive/2024/20240101T000000-ACME.EML",
			want:    true,
		},
		{
			name:    "missing leading hyphen",
			company: "Acme",
			path:    "/archive/2024/20240101T000000-notacme.eml",
			want:    false,
		},
		{
			name:    "fragment needs the leading hyphen",
			company: "cme",
			path:    "/archive/2024/20240101T000000-acme.eml",
			want:    false,
		},
		{
			name:    "hyphenated slug suffix over-matches",
			company: "acme",
			path:    "/archive/2024/20240101T000000-new-acme.eml",
			want:    true,
		},
		{
			name:    "substring inside hyphenated slug",
			company: "mind",
			path:    "/archive/2024/20240101T000000-mind.body.eml",
			want:    true,
		},
		{
			name:    "unrecognized extension",
			company: "acme",
			path:    "/archive/2024/20240101T000000-acme.txt",
			want:    false,
		},
		{
			name:    "company in directory only",
			company: "acme",
			path:    "/archive/x-acme.d/20240101T000000-other.eml",
			want:    false,
		},
		{
			name:    "empty company matches broadly",
			company: "",
			path:    "/archive/2024/20240101T000000-.eml",
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMatcher(tt.company)
			if got := m.Match(tt.path); got != tt.want {
				t.Errorf("Match(%q) with fragment %q = %v, want %v", tt.path, m.Fragment(), got, tt.want)
			}
		})
	}
}
