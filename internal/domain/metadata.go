package domain

import "strings"

// Metadata holds the fields carried over from the latest record of a company
type Metadata struct {
	Description  string
	Employment   string
	Headquarters string
	Industry     string
	TechStack    string
	Website      string
}

// Metadata field labels as they appear in a record header
const (
	LabelDescription  = "Description:"
	LabelEmployment   = "Employment:"
	LabelHeadquarters = "Headquarters:"
	LabelIndustry     = "Industry:"
	LabelTechStack    = "TechStack:"
	LabelWebsite      = "Website:"
)

// DefaultMetadata returns the placeholder values used for a first record
func DefaultMetadata() Metadata {
	return Metadata{
		Description:  "",
		Employment:   "fulltime, on-site, CITY",
		Headquarters: "CITY, STATE, COUNTRY",
		Industry:     "",
		TechStack:    "",
		Website:      "URL",
	}
}

// ExtractMetadata scans lines once and captures the first value of each label.
// Labels that never appear keep their default. The scan stops once all six are found.
func ExtractMetadata(lines []string) Metadata {
	meta := DefaultMetadata()

	fields := []struct {
		label string
		dst   *string
	}{
		{LabelDescription, &meta.Description},
		{LabelEmployment, &meta.Employment},
		{LabelHeadquarters, &meta.Headquarters},
		{LabelIndustry, &meta.Industry},
		{LabelTechStack, &meta.TechStack},
		{LabelWebsite, &meta.Website},
	}
	found := make([]bool, len(fields))
	remaining := len(fields)

	for _, line := range lines {
		for i, f := range fields {
			if found[i] || !strings.HasPrefix(line, f.label) {
				continue
			}
			*f.dst = strings.TrimSpace(strings.TrimPrefix(line, f.label))
			found[i] = true
			remaining--
			break
		}
		if remaining == 0 {
			break
		}
	}

	return meta
}
