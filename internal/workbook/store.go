package workbook

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Store owns the table file and the single writer lock over it. All
// mutations anywhere in the service funnel through Update, so two requests
// can never interleave their load-mutate-save cycles.
type Store struct {
	path string
	mu   chan struct{} // capacity-1 semaphore; lets acquisition respect ctx
}

func NewStore(path string) *Store {
	return &Store{path: path, mu: make(chan struct{}, 1)}
}

func (s *Store) acquire(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case s.mu <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Store) release() {
	<-s.mu
}

// EnsureSchema creates the table file with both sheets and their headers if
// it does not exist. A file from before vote aggregation gets the vote sheet
// appended, header only; the submissions sheet is never migrated. Calling
// this twice is a no-op after the first call.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if err := s.acquire(ctx); err != nil {
		return err
	}
	defer s.release()

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		wb := &Workbook{}
		wb.AddSheet(SubmissionsSheet, SubmissionHeader())
		wb.AddSheet(VotesSheet, VoteHeader())
		if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
			return fmt.Errorf("workbook: create data dir: %w", err)
		}
		return s.save(wb)
	} else if err != nil {
		return fmt.Errorf("workbook: stat %s: %w", s.path, err)
	}

	wb, err := s.load()
	if err != nil {
		return err
	}
	if wb.HasSheet(VotesSheet) {
		return nil
	}
	wb.AddSheet(VotesSheet, VoteHeader())
	return s.save(wb)
}

// Update runs fn against a fresh copy of the table inside the critical
// section and persists the result. If fn returns an error nothing is
// written and the prior on-disk state stands.
func (s *Store) Update(ctx context.Context, fn func(*Workbook) error) error {
	if err := s.acquire(ctx); err != nil {
		return err
	}
	defer s.release()

	wb, err := s.load()
	if err != nil {
		return err
	}
	if err := fn(wb); err != nil {
		return err
	}
	return s.save(wb)
}

// View runs fn against a fresh copy of the table without writing back.
func (s *Store) View(ctx context.Context, fn func(*Workbook) error) error {
	if err := s.acquire(ctx); err != nil {
		return err
	}
	defer s.release()

	wb, err := s.load()
	if err != nil {
		return err
	}
	return fn(wb)
}

func (s *Store) load() (*Workbook, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("workbook: read %s: %w", s.path, err)
	}
	var wb Workbook
	if err := json.Unmarshal(data, &wb); err != nil {
		return nil, fmt.Errorf("workbook: parse %s: %w", s.path, err)
	}
	return &wb, nil
}

// save writes the full workbook to a temp file in the same directory, syncs
// it, and renames it over the table file.
func (s *Store) save(wb *Workbook) error {
	data, err := json.MarshalIndent(wb, "", " ")
	if err != nil {
		return fmt.Errorf("workbook: encode: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("workbook: create temp: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("workbook: write temp: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("workbook: sync temp: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("workbook: close temp: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("workbook: replace %s: %w", s.path, err)
	}
	return nil
}
