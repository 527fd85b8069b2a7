package commands

import (
	"context"
	"fmt"

	"github.com/cixtor/interview/internal/application"
	"github.com/cixtor/interview/internal/domain"
	"github.com/cixtor/interview/internal/ports"
)

// OpenResult contains the record to open and the editor line
type OpenResult struct {
	Path string
	Line int
}

// OpenCommand locates the latest record of a company and its edit offset
type OpenCommand struct {
	repo    ports.RecordRepository
	Company string
}

// NewOpenCommand creates a new OpenCommand
func NewOpenCommand(repo ports.RecordRepository, company string) *OpenCommand {
	return &OpenCommand{
		repo:    repo,
		Company: company,
	}
}

// Validate checks if the open operation is valid
func (c *OpenCommand) Validate() error {
	return application.ValidateCompany(c.Company)
}

// Execute runs the open command
func (c *OpenCommand) Execute(ctx context.Context) (*OpenResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	path, err := c.repo.Latest(c.Company)
	if err != nil {
		return nil, err
	}

	lines, err := c.repo.ReadLines(path)
	if err != nil {
		return nil, err
	}

	line, err := domain.LocateBoundary(lines)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &OpenResult{Path: path, Line: line}, nil
}
