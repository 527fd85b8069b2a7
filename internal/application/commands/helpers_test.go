package commands

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/cixtor/interview/internal/domain"
)

// memoryRepo implements ports.RecordRepository over an in-memory file map
type memoryRepo struct {
	files      map[string]string
	readErr    error
	latestErr  error
	created    []domain.Metadata
	createdAt  []time.Time
	createPath string
}

func newMemoryRepo(files map[string]string) *memoryRepo {
	if files == nil {
		files = map[string]string{}
	}
	return &memoryRepo{files: files}
}

func (m *memoryRepo) Root() string { return "/archive" }

func (m *memoryRepo) sortedPaths() []string {
	paths := make([]string, 0, len(m.files))
	for p := range m.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

func (m *memoryRepo) Latest(company string) (string, error) {
	if m.latestErr != nil {
		return "", m.latestErr
	}
	matcher := domain.NewMatcher(company)
	latest := ""
	for _, p := range m.sortedPaths() {
		if matcher.Match(p) {
			latest = p
		}
	}
	if latest == "" {
		return "", domain.ErrRecordNotFound
	}
	return latest, nil
}

func (m *memoryRepo) List(company string) ([]string, error) {
	matcher := domain.NewMatcher(company)
	var out []string
	for _, p := range m.sortedPaths() {
		if matcher.Match(p) {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil, domain.ErrRecordNotFound
	}
	return out, nil
}

func (m *memoryRepo) Recent() ([]string, error) {
	return m.sortedPaths(), nil
}

func (m *memoryRepo) Companies() ([]string, error) {
	seen := map[string]bool{}
	var out []string
	for _, p := range m.sortedPaths() {
		if rec, ok := domain.ParseRecord(p); ok && !seen[rec.Company] {
			seen[rec.Company] = true
			out = append(out, rec.Company)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (m *memoryRepo) ReadLines(path string) ([]string, error) {
	if m.readErr != nil {
		return nil, m.readErr
	}
	content, ok := m.files[path]
	if !ok {
		return nil, fmt.Errorf("no such record: %s", path)
	}
	return strings.Split(content, "\n"), nil
}

func (m *memoryRepo) Create(company string, at time.Time, meta domain.Metadata) (*domain.Record, error) {
	path := "/archive/" + domain.RelativePath(at, company, domain.KindMail)
	if _, ok := m.files[path]; ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrRecordAlreadyExists, path)
	}
	m.files[path] = domain.RenderRecord(company, at, meta, "mem")
	m.created = append(m.created, meta)
	m.createdAt = append(m.createdAt, at)
	m.createPath = path
	return &domain.Record{Path: path, Company: domain.Slug(company), Timestamp: at, Kind: domain.KindMail}, nil
}

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}
