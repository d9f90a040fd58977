package service

import (
	"context"
	"log"

	"github.com/parisxmas/featuredesk/internal/models"
	"github.com/parisxmas/featuredesk/internal/repository"
	"github.com/parisxmas/featuredesk/internal/workbook"
)

// VoteService applies vote events to the aggregate sheet. A whole batch runs
// in one load-mutate-save cycle, so a vote change (retract previous, count
// new) is never split across saves and concurrent batches cannot lose
// updates to each other.
type VoteService struct {
	store *workbook.Store
	votes *repository.VoteRepo
}

func NewVoteService(store *workbook.Store, votes *repository.VoteRepo) *VoteService {
	return &VoteService{store: store, votes: votes}
}

// Apply processes the events in order and returns the resulting counters per
// feature id touched. Events without an id or with an unrecognized choice
// are skipped; one bad entry must not abort the batch.
func (s *VoteService) Apply(ctx context.Context, events []models.VoteEvent) (map[string]models.Counts, error) {
	if len(events) == 0 {
		return nil, validationf("no votes in payload")
	}

	totals := make(map[string]models.Counts)
	err := s.store.Update(ctx, func(wb *workbook.Workbook) error {
		for _, ev := range events {
			if ev.ID == "" || !models.ValidChoice(ev.Choice) {
				log.Printf("Warning: skipping vote entry id=%q choice=%q", ev.ID, ev.Choice)
				continue
			}
			if ev.PrevChoice != "" {
				if err := s.votes.AdjustForPrevious(wb, ev.ID, ev.PrevChoice); err != nil {
					return err
				}
			}
			counts, err := s.votes.Bump(wb, ev.ID, ev.Choice, ev.Summary)
			if err != nil {
				return err
			}
			totals[ev.ID] = counts
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return totals, nil
}

// List returns every aggregate row for the admin view.
func (s *VoteService) List(ctx context.Context) ([]models.VoteRecord, error) {
	return s.votes.List(ctx)
}
