package repository

import (
	"context"

	"github.com/parisxmas/featuredesk/internal/models"
	"github.com/parisxmas/featuredesk/internal/workbook"
)

type SubmissionRepo struct {
	store *workbook.Store
}

func NewSubmissionRepo(store *workbook.Store) *SubmissionRepo {
	return &SubmissionRepo{store: store}
}

// Append durably adds one submission row. The record is never touched again
// after this.
func (r *SubmissionRepo) Append(ctx context.Context, rec *models.SubmissionRecord) error {
	return r.store.Update(ctx, func(wb *workbook.Workbook) error {
		return wb.Append(workbook.SubmissionsSheet, submissionToRow(rec))
	})
}

// List returns every stored submission in append order.
func (r *SubmissionRepo) List(ctx context.Context) ([]models.SubmissionRecord, error) {
	var recs []models.SubmissionRecord
	err := r.store.View(ctx, func(wb *workbook.Workbook) error {
		rows := wb.Rows(workbook.SubmissionsSheet)
		for i := 1; i < len(rows); i++ {
			recs = append(recs, rowToSubmission(rows[i]))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return recs, nil
}

// submissionToRow lays the record out in schema order; the row width always
// matches the header, whatever fields were omitted.
func submissionToRow(rec *models.SubmissionRecord) []string {
	row := []string{rec.Timestamp, rec.RequestorName, rec.DealerName, rec.Email, rec.Phone}
	for _, slot := range rec.Slots {
		row = append(row, slot.Priority, slot.Description, slot.Severity, slot.Attachment)
	}
	return row
}

func rowToSubmission(row []string) models.SubmissionRecord {
	cell := func(i int) string {
		if i < len(row) {
			return row[i]
		}
		return ""
	}
	rec := models.SubmissionRecord{
		Timestamp:     cell(0),
		RequestorName: cell(1),
		DealerName:    cell(2),
		Email:         cell(3),
		Phone:         cell(4),
	}
	for i := 0; i < 3; i++ {
		base := 5 + i*4
		rec.Slots[i] = models.FeatureSlot{
			Priority:    cell(base),
			Description: cell(base + 1),
			Severity:    cell(base + 2),
			Attachment:  cell(base + 3),
		}
	}
	return rec
}
