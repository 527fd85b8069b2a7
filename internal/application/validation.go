package application

import (
	"fmt"
	"strings"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", fieldName),
		}
	}
	return nil
}

// ValidateCompany checks that a company name can be used as part of a filename.
// An empty name is accepted and matches broadly; separators would leave the year directory.
func ValidateCompany(company string) error {
	if strings.ContainsAny(company, `/\`) || strings.Contains(company, "..") {
		return &ValidationError{
			Field:   "company",
			Message: fmt.Sprintf("company must not contain path separators: %q", company),
		}
	}
	return nil
}
