package repository_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/parisxmas/featuredesk/internal/models"
	"github.com/parisxmas/featuredesk/internal/repository"
	"github.com/parisxmas/featuredesk/internal/workbook"
)

func newStore(t *testing.T) *workbook.Store {
	t.Helper()
	s := workbook.NewStore(filepath.Join(t.TempDir(), "table.fwb"))
	if err := s.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	return s
}

func TestAppendKeepsFixedColumnCount(t *testing.T) {
	store := newStore(t)
	repo := repository.NewSubmissionRepo(store)
	ctx := context.Background()

	// A record with almost everything omitted still yields a full-width row.
	sparse := &models.SubmissionRecord{Timestamp: "2024-05-01T09:30:00Z"}
	full := &models.SubmissionRecord{
		Timestamp:     "2024-05-01T09:31:00Z",
		RequestorName: "J. Lee",
		DealerName:    "Acme Motors",
		Email:         "j@acme.example",
		Phone:         "555-0100",
		Slots: [3]models.FeatureSlot{
			{Priority: "Urgent", Description: "dark mode", Severity: "Nice to Have", Attachment: "a.png"},
		},
	}
	for _, rec := range []*models.SubmissionRecord{sparse, full} {
		if err := repo.Append(ctx, rec); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	want := len(workbook.SubmissionHeader())
	err := store.View(ctx, func(wb *workbook.Workbook) error {
		rows := wb.Rows(workbook.SubmissionsSheet)
		if len(rows) != 3 {
			t.Fatalf("expected header + 2 rows, got %d", len(rows))
		}
		for i, row := range rows {
			if len(row) != want {
				t.Fatalf("row %d has %d columns, want %d", i, len(row), want)
			}
		}
		// Column order: slot 1 starts after the five header fields.
		if rows[2][5] != "Urgent" || rows[2][7] != "Nice to Have" || rows[2][8] != "a.png" {
			t.Fatalf("slot 1 out of order: %v", rows[2][5:9])
		}
		return nil
	})
	if err != nil {
		t.Fatalf("view: %v", err)
	}
}

func TestListRoundTripsRecords(t *testing.T) {
	store := newStore(t)
	repo := repository.NewSubmissionRepo(store)
	ctx := context.Background()

	rec := &models.SubmissionRecord{
		Timestamp:  "2024-05-01T09:30:00Z",
		DealerName: "Acme Motors",
		Slots: [3]models.FeatureSlot{
			{}, {Priority: "Normal", Description: "export to CSV", Severity: "Important but Workable"}, {},
		},
	}
	if err := repo.Append(ctx, rec); err != nil {
		t.Fatalf("append: %v", err)
	}

	recs, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}
	if recs[0].DealerName != "Acme Motors" || recs[0].Slots[1].Description != "export to CSV" {
		t.Fatalf("round trip lost data: %+v", recs[0])
	}
}
