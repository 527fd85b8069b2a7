package domain

import (
	"path/filepath"
	"strings"
	"time"
)

// TimestampLayout is the filename timestamp. Zero-padded with no separators so
// that lexical order of filenames equals chronological order.
const TimestampLayout = "20060102T150405"

// Kind represents the type of record, derived from the file extension
type Kind int

const (
	KindUnknown Kind = iota
	KindMail         // .eml
	KindNote         // .md
)

func (k Kind) String() string {
	switch k {
	case KindMail:
		return "Mail"
	case KindNote:
		return "Note"
	default:
		return "Unknown"
	}
}

// Extension returns the file extension for the kind, without the dot
func (k Kind) Extension() string {
	switch k {
	case KindMail:
		return "eml"
	case KindNote:
		return "md"
	default:
		return ""
	}
}

// KindFromExtension maps a file extension (with or without the dot) to a Kind
func KindFromExtension(ext string) Kind {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "eml":
		return KindMail
	case "md":
		return KindNote
	default:
		return KindUnknown
	}
}

// Record represents one archived file of interview correspondence
type Record struct {
	Path      string    // Absolute path, unique within a root
	Company   string    // Company slug as found in the filename
	Timestamp time.Time // Parsed from the filename prefix
	Kind      Kind
}

// Slug returns the filename form of a company name
func Slug(company string) string {
	return strings.ToLower(company)
}

// FileName builds the record filename for a company at the given time
func FileName(at time.Time, company string, kind Kind) string {
	return at.Format(TimestampLayout) + "-" + Slug(company) + "." + kind.Extension()
}

// RelativePath returns the record path relative to the repository root
func RelativePath(at time.Time, company string, kind Kind) string {
	return filepath.Join(at.Format("2006"), FileName(at, company, kind))
}

// ParseFileName splits a record filename into its parts.
// Returns ok=false when the name does not follow the timestamp-prefix convention.
func ParseFileName(name string) (at time.Time, company string, kind Kind, ok bool) {
	base := filepath.Base(name)
	ext := filepath.Ext(base)
	kind = KindFromExtension(ext)
	if kind == KindUnknown {
		return time.Time{}, "", KindUnknown, false
	}

	stem := strings.TrimSuffix(base, ext)
	if len(stem) < len(TimestampLayout)+2 || stem[len(TimestampLayout)] != '-' {
		return time.Time{}, "", KindUnknown, false
	}

	at, err := time.ParseInLocation(TimestampLayout, stem[:len(TimestampLayout)], time.Local)
	if err != nil {
		return time.Time{}, "", KindUnknown, false
	}

	return at, stem[len(TimestampLayout)+1:], kind, true
}

// ParseRecord builds a Record from a path. Returns ok=false for non-conforming names.
func ParseRecord(path string) (Record, bool) {
	at, company, kind, ok := ParseFileName(path)
	if !ok {
		return Record{}, false
	}
	return Record{
		Path:      path,
		Company:   company,
		Timestamp: at,
		Kind:      kind,
	}, true
}
