package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/parisxmas/featuredesk/internal/models"
	"github.com/parisxmas/featuredesk/internal/workbook"
)

// ErrUnknownChoice is returned by Bump for a choice outside {no,nice,must}.
// Batch callers skip such events rather than failing the batch.
var ErrUnknownChoice = errors.New("vote: unknown choice")

// VoteRepo maintains the one-row-per-feature aggregate sheet. Bump and
// AdjustForPrevious operate on an already-open workbook so that a vote
// change (adjust then bump) lands on disk as a single save.
type VoteRepo struct {
	store *workbook.Store
}

func NewVoteRepo(store *workbook.Store) *VoteRepo {
	return &VoteRepo{store: store}
}

func choiceColumn(choice string) (int, bool) {
	switch choice {
	case models.ChoiceNo:
		return workbook.VoteColNo, true
	case models.ChoiceNice:
		return workbook.VoteColNice, true
	case models.ChoiceMust:
		return workbook.VoteColMust, true
	}
	return 0, false
}

// Bump adds one vote to a feature's bucket, creating the aggregate row on
// first sight of the feature id. A non-empty summary replaces the stored
// one; an empty summary leaves it alone. Returns the post-increment counts.
func (r *VoteRepo) Bump(wb *workbook.Workbook, featureID, choice, summary string) (models.Counts, error) {
	col, ok := choiceColumn(choice)
	if !ok {
		return models.Counts{}, fmt.Errorf("%w: %q", ErrUnknownChoice, choice)
	}

	row, err := wb.FindRow(workbook.VotesSheet, workbook.VoteColID, featureID)
	if errors.Is(err, workbook.ErrNotFound) {
		fresh := []string{featureID, summary, "0", "0", "0", ""}
		if err := wb.Append(workbook.VotesSheet, fresh); err != nil {
			return models.Counts{}, err
		}
		row = len(wb.Rows(workbook.VotesSheet)) - 1
	} else if err != nil {
		return models.Counts{}, err
	}

	no, nice, must := wb.ReadCounts(workbook.VotesSheet, row)
	counts := models.Counts{No: no, Nice: nice, Must: must}
	switch col {
	case workbook.VoteColNo:
		counts.No++
	case workbook.VoteColNice:
		counts.Nice++
	case workbook.VoteColMust:
		counts.Must++
	}

	if summary == "" {
		summary = cell(wb.Rows(workbook.VotesSheet)[row], workbook.VoteColSummary)
	}
	if err := wb.WriteRow(workbook.VotesSheet, row, voteCells(featureID, summary, counts)); err != nil {
		return models.Counts{}, err
	}
	return counts, nil
}

// AdjustForPrevious retracts a feature's earlier vote before the new one is
// applied: the previous bucket goes down by one, floored at zero. Unknown
// choices and features without a row are no-ops.
func (r *VoteRepo) AdjustForPrevious(wb *workbook.Workbook, featureID, prevChoice string) error {
	col, ok := choiceColumn(prevChoice)
	if !ok {
		return nil
	}
	row, err := wb.FindRow(workbook.VotesSheet, workbook.VoteColID, featureID)
	if errors.Is(err, workbook.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	no, nice, must := wb.ReadCounts(workbook.VotesSheet, row)
	counts := models.Counts{No: no, Nice: nice, Must: must}
	switch col {
	case workbook.VoteColNo:
		if counts.No > 0 {
			counts.No--
		}
	case workbook.VoteColNice:
		if counts.Nice > 0 {
			counts.Nice--
		}
	case workbook.VoteColMust:
		if counts.Must > 0 {
			counts.Must--
		}
	}

	summary := cell(wb.Rows(workbook.VotesSheet)[row], workbook.VoteColSummary)
	return wb.WriteRow(workbook.VotesSheet, row, voteCells(featureID, summary, counts))
}

// Counts returns the current counters for a feature id, zeros if it has no
// row yet.
func (r *VoteRepo) Counts(ctx context.Context, featureID string) (models.Counts, error) {
	var counts models.Counts
	err := r.store.View(ctx, func(wb *workbook.Workbook) error {
		row, err := wb.FindRow(workbook.VotesSheet, workbook.VoteColID, featureID)
		if errors.Is(err, workbook.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		no, nice, must := wb.ReadCounts(workbook.VotesSheet, row)
		counts = models.Counts{No: no, Nice: nice, Must: must}
		return nil
	})
	return counts, err
}

// List returns every aggregate row.
func (r *VoteRepo) List(ctx context.Context) ([]models.VoteRecord, error) {
	var recs []models.VoteRecord
	err := r.store.View(ctx, func(wb *workbook.Workbook) error {
		rows := wb.Rows(workbook.VotesSheet)
		for i := 1; i < len(rows); i++ {
			no, nice, must := wb.ReadCounts(workbook.VotesSheet, i)
			recs = append(recs, models.VoteRecord{
				FeatureID:   cell(rows[i], workbook.VoteColID),
				Summary:     cell(rows[i], workbook.VoteColSummary),
				Counts:      models.Counts{No: no, Nice: nice, Must: must},
				LastUpdated: cell(rows[i], workbook.VoteColUpdated),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return recs, nil
}

func voteCells(featureID, summary string, c models.Counts) []string {
	return []string{
		featureID,
		summary,
		strconv.Itoa(c.No),
		strconv.Itoa(c.Nice),
		strconv.Itoa(c.Must),
	}
}

func cell(row []string, col int) string {
	if col < len(row) {
		return row[col]
	}
	return ""
}
