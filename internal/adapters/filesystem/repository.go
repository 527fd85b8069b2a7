package filesystem

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/cixtor/interview/internal/domain"
	"github.com/cixtor/interview/internal/ports"
)

// Repository implements ports.RecordRepository using the filesystem
type Repository struct {
	root     string
	logger   *slog.Logger
	now      func() time.Time
	boundary func() string
}

// Ensure Repository implements RecordRepository
var _ ports.RecordRepository = (*Repository)(nil)

// Option configures a Repository
type Option func(*Repository)

// WithLogger sets the logger used for skipped directories and unreadable records
func WithLogger(logger *slog.Logger) Option {
	return func(r *Repository) {
		r.logger = logger
	}
}

// WithClock sets the time source used to pick the current year directory
func WithClock(now func() time.Time) Option {
	return func(r *Repository) {
		r.now = now
	}
}

// WithBoundary sets the boundary token generator for new records
func WithBoundary(boundary func() string) Option {
	return func(r *Repository) {
		r.boundary = boundary
	}
}

// NewRepository creates a new filesystem repository
func NewRepository(root string, opts ...Option) *Repository {
	// Expand ~ to home directory
	if strings.HasPrefix(root, "~") {
		home, _ := os.UserHomeDir()
		root = filepath.Join(home, root[1:])
	}
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	// A symlinked root would otherwise be reported as a single non-directory entry
	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		root = resolved
	}

	r := &Repository{
		root:     root,
		logger:   slog.Default(),
		now:      time.Now,
		boundary: domain.NewBoundary,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Root returns the repository root
func (r *Repository) Root() string {
	return r.root
}

// Latest returns the most recent record of a company.
// Filenames start with a sortable timestamp, so the greatest filename is the newest.
func (r *Repository) Latest(company string) (string, error) {
	matcher := domain.NewMatcher(company)

	var latest string
	err := Visit(r.root, Lenient, r.logger, func(path string) {
		if !matcher.Match(path) {
			return
		}
		if latest == "" || newer(path, latest) {
			latest = path
		}
	})
	if err != nil {
		return "", err
	}

	if latest == "" {
		return "", fmt.Errorf("%w: no record matches %q", domain.ErrRecordNotFound, matcher.Fragment())
	}
	return latest, nil
}

// newer compares by filename first and breaks ties on the full path
func newer(a, b string) bool {
	na, nb := filepath.Base(a), filepath.Base(b)
	if na != nb {
		return na > nb
	}
	return a > b
}

// List returns every record of a company, sorted by path.
// Unreadable directories fail the listing instead of silently hiding records.
func (r *Repository) List(company string) ([]string, error) {
	paths, err := Walk(r.root, Strict, r.logger)
	if err != nil {
		return nil, err
	}

	matcher := domain.NewMatcher(company)
	var records []string
	for _, path := range paths {
		if matcher.Match(path) {
			records = append(records, path)
		}
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no record matches %q", domain.ErrRecordNotFound, matcher.Fragment())
	}
	return records, nil
}

// Recent returns the most recent files of the current year, oldest first.
// A missing or unreadable year directory yields an empty result.
func (r *Repository) Recent() ([]string, error) {
	yearDir := filepath.Join(r.root, r.now().Format("2006"))

	ranker := NewRanker(RecentLimit)
	if err := Visit(yearDir, Lenient, r.logger, ranker.Push); err != nil {
		r.logger.Debug("recent scan skipped",
			slog.String("path", yearDir),
			slog.String("error", err.Error()))
		return []string{}, nil
	}
	return ranker.Sorted(), nil
}

// Companies returns the distinct company slugs found in conforming record names
func (r *Repository) Companies() ([]string, error) {
	seen := make(map[string]struct{})
	err := Visit(r.root, Lenient, r.logger, func(path string) {
		if rec, ok := domain.ParseRecord(path); ok {
			seen[rec.Company] = struct{}{}
		}
	})
	if err != nil {
		return nil, err
	}

	companies := make([]string, 0, len(seen))
	for company := range seen {
		companies = append(companies, company)
	}
	sort.Strings(companies)
	return companies, nil
}

// ReadLines returns the lines of a record without trailing newlines
func (r *Repository) ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open record: %w", err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read record: %w", err)
	}
	return lines, nil
}

// Create writes a new mail record under the year directory of at.
// An existing file at the computed path is never touched.
func (r *Repository) Create(company string, at time.Time, meta domain.Metadata) (*domain.Record, error) {
	path := filepath.Join(r.root, domain.RelativePath(at, company, domain.KindMail))

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create year directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrRecordAlreadyExists, path)
		}
		return nil, fmt.Errorf("failed to create record: %w", err)
	}

	content := domain.RenderRecord(company, at, meta, r.boundary())
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		os.Remove(path)
		return nil, fmt.Errorf("failed to write record: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("failed to close record: %w", err)
	}

	return &domain.Record{
		Path:      path,
		Company:   domain.Slug(company),
		Timestamp: at,
		Kind:      domain.KindMail,
	}, nil
}
