package domain

import (
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// recordGlob is the extension allow-list for record files
var recordGlob = glob.MustCompile("*.{md,eml}")

// CompanyFragment returns the filename fragment for a company: "-{company}.".
// An empty company yields "-." which matches almost every record.
func CompanyFragment(company string) string {
	return "-" + strings.ToLower(company) + "."
}

// IsRecordName reports whether a filename carries a recognized record extension
func IsRecordName(name string) bool {
	return recordGlob.Match(strings.ToLower(filepath.Base(name)))
}

// Matcher filters filenames down to the records of one company.
// Matching is a plain substring test, so "cme" also matches "-acme.".
type Matcher struct {
	fragment string
}

// NewMatcher creates a matcher for the given company name
func NewMatcher(company string) *Matcher {
	return &Matcher{fragment: CompanyFragment(company)}
}

// Fragment returns the derived filename fragment
func (m *Matcher) Fragment() string {
	return m.fragment
}

// Match reports whether the file at path belongs to the company
func (m *Matcher) Match(path string) bool {
	name := strings.ToLower(filepath.Base(path))
	return strings.Contains(name, m.fragment) && IsRecordName(name)
}
