package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cixtor/interview/internal/application"
	"github.com/cixtor/interview/internal/domain"
	"github.com/cixtor/interview/internal/ports"
)

// CreateResult contains the result of creating a record
type CreateResult struct {
	Record  *domain.Record
	Line    int
	Message string
}

// CreateCommand creates a new record for a company, carrying metadata from
// the latest prior record when one exists
type CreateCommand struct {
	repo    ports.RecordRepository
	logger  *slog.Logger
	now     func() time.Time
	Company string
	When    string // Empty for now, otherwise a custom datetime
}

// NewCreateCommand creates a new CreateCommand
func NewCreateCommand(repo ports.RecordRepository, company, when string) *CreateCommand {
	return &CreateCommand{
		repo:    repo,
		logger:  slog.Default(),
		now:     time.Now,
		Company: company,
		When:    when,
	}
}

// WithLogger sets the logger for swallowed carryover failures
func (c *CreateCommand) WithLogger(logger *slog.Logger) *CreateCommand {
	c.logger = logger
	return c
}

// WithClock sets the time source used for "now" and "today@"
func (c *CreateCommand) WithClock(now func() time.Time) *CreateCommand {
	c.now = now
	return c
}

// Validate checks if the create operation is valid
func (c *CreateCommand) Validate() error {
	return application.ValidateCompany(c.Company)
}

// Timestamp resolves the record time
func (c *CreateCommand) Timestamp() (time.Time, error) {
	now := c.now()
	if c.When == "" {
		return now, nil
	}
	return domain.ParseCustomDatetime(c.When, now)
}

// Carryover returns the metadata of the latest record of the company.
// Any failure falls back to the defaults.
func (c *CreateCommand) Carryover() domain.Metadata {
	path, err := c.repo.Latest(c.Company)
	if err != nil {
		c.logger.Debug("no metadata to carry over",
			slog.String("company", c.Company),
			slog.String("error", err.Error()))
		return domain.DefaultMetadata()
	}

	lines, err := c.repo.ReadLines(path)
	if err != nil {
		c.logger.Debug("cannot read previous record",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return domain.DefaultMetadata()
	}

	c.logger.Debug("carrying metadata over", slog.String("from", path))
	return domain.ExtractMetadata(lines)
}

// Execute runs the create command
func (c *CreateCommand) Execute(ctx context.Context) (*CreateResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	at, err := c.Timestamp()
	if err != nil {
		return nil, err
	}

	rec, err := c.repo.Create(c.Company, at, c.Carryover())
	if err != nil {
		return nil, fmt.Errorf("failed to create record: %w", err)
	}

	return &CreateResult{
		Record:  rec,
		Line:    domain.EditLine,
		Message: fmt.Sprintf("Created record: %s", rec.Path),
	}, nil
}
