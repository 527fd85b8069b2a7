package ports

import (
	"time"

	"github.com/cixtor/interview/internal/domain"
)

// RecordRepository defines the interface for record archive operations
type RecordRepository interface {
	// Root returns the absolute repository root
	Root() string

	// Lookup operations
	Latest(company string) (string, error)
	List(company string) ([]string, error)
	Recent() ([]string, error)
	Companies() ([]string, error)

	// ReadLines returns the lines of a record
	ReadLines(path string) ([]string, error)

	// Create writes a new mail record and fails if the path is taken
	Create(company string, at time.Time, meta domain.Metadata) (*domain.Record, error)
}
