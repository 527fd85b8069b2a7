package commands

import (
	"context"

	"github.com/cixtor/interview/internal/application"
	"github.com/cixtor/interview/internal/ports"
)

// ListCommand lists every record of a company
type ListCommand struct {
	repo    ports.RecordRepository
	Company string
}

// NewListCommand creates a new ListCommand
func NewListCommand(repo ports.RecordRepository, company string) *ListCommand {
	return &ListCommand{
		repo:    repo,
		Company: company,
	}
}

// Execute runs the list command
func (c *ListCommand) Execute(ctx context.Context) ([]string, error) {
	if err := application.ValidateCompany(c.Company); err != nil {
		return nil, err
	}
	return c.repo.List(c.Company)
}

// RecentCommand lists the most recent records of the current year
type RecentCommand struct {
	repo ports.RecordRepository
}

// NewRecentCommand creates a new RecentCommand
func NewRecentCommand(repo ports.RecordRepository) *RecentCommand {
	return &RecentCommand{repo: repo}
}

// Execute runs the recent command
func (c *RecentCommand) Execute(ctx context.Context) ([]string, error) {
	return c.repo.Recent()
}
