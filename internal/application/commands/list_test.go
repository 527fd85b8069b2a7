package commands

import (
	"context"
	"errors"
	"testing"

	"github.com/cixtor/interview/internal/domain"
)

func TestListCommand_Execute(t *testing.T) {
	repo := newMemoryRepo(map[string]string{
		"/archive/2024/20240101T000000-acme.eml":    "",
		"/archive/2023/20231201T000000-acme.md":     "",
		"/archive/2024/20240104T000000-initech.eml": "",
	})

	got, err := NewListCommand(repo, "acme").Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{
		"/archive/2023/20231201T000000-acme.md",
		"/archive/2024/20240101T000000-acme.eml",
	}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("got %v, want %v", got, want)
	}

	if _, err := NewListCommand(repo, "globex").Execute(context.Background()); !errors.Is(err, domain.ErrRecordNotFound) {
		t.Errorf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestListCommand_EmptyCompanyFragment(t *testing.T) {
	repo := newMemoryRepo(map[string]string{
		"/archive/2024/20240101T000000-.eml":     "",
		"/archive/2024/20240102T000000-acme.eml": "",
	})

	got, err := NewListCommand(repo, "").Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("fragment %q should only match the unnamed record, got %v", domain.CompanyFragment(""), got)
	}
}

func TestRecentCommand_Execute(t *testing.T) {
	repo := newMemoryRepo(map[string]string{
		"/archive/2024/20240102T000000-acme.eml": "",
		"/archive/2024/20240101T000000-acme.eml": "",
	})

	got, err := NewRecentCommand(repo).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0] > got[1] {
		t.Errorf("expected ascending records, got %v", got)
	}
}
