package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/parisxmas/featuredesk/internal/models"
	"github.com/parisxmas/featuredesk/internal/repository"
	"github.com/parisxmas/featuredesk/internal/workbook"
)

// apply runs a sequence of vote mutations in one critical section.
func apply(t *testing.T, store *workbook.Store, fn func(wb *workbook.Workbook) error) {
	t.Helper()
	if err := store.Update(context.Background(), fn); err != nil {
		t.Fatalf("update: %v", err)
	}
}

func counts(t *testing.T, repo *repository.VoteRepo, id string) models.Counts {
	t.Helper()
	c, err := repo.Counts(context.Background(), id)
	if err != nil {
		t.Fatalf("counts: %v", err)
	}
	return c
}

func TestBumpCreatesRowLazily(t *testing.T) {
	store := newStore(t)
	repo := repository.NewVoteRepo(store)

	apply(t, store, func(wb *workbook.Workbook) error {
		got, err := repo.Bump(wb, "f1", models.ChoiceNice, "dark mode")
		if err != nil {
			return err
		}
		if got != (models.Counts{Nice: 1}) {
			t.Fatalf("post-increment counts = %+v", got)
		}
		return nil
	})

	recs, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(recs) != 1 || recs[0].FeatureID != "f1" || recs[0].Summary != "dark mode" {
		t.Fatalf("row not created: %+v", recs)
	}
	if recs[0].LastUpdated == "" {
		t.Fatal("last updated not stamped")
	}
}

func TestBumpKeepsSummaryWhenEmpty(t *testing.T) {
	store := newStore(t)
	repo := repository.NewVoteRepo(store)

	apply(t, store, func(wb *workbook.Workbook) error {
		if _, err := repo.Bump(wb, "f1", models.ChoiceNo, "original summary"); err != nil {
			return err
		}
		if _, err := repo.Bump(wb, "f1", models.ChoiceNo, ""); err != nil {
			return err
		}
		_, err := repo.Bump(wb, "f1", models.ChoiceNo, "replacement")
		return err
	})

	recs, _ := repo.List(context.Background())
	if recs[0].Summary != "replacement" {
		t.Fatalf("summary = %q, want last non-empty to win", recs[0].Summary)
	}
	if recs[0].Counts.No != 3 {
		t.Fatalf("count = %d, want 3", recs[0].Counts.No)
	}
}

func TestBumpRejectsUnknownChoice(t *testing.T) {
	store := newStore(t)
	repo := repository.NewVoteRepo(store)

	err := store.Update(context.Background(), func(wb *workbook.Workbook) error {
		_, err := repo.Bump(wb, "f1", "maybe", "")
		return err
	})
	if !errors.Is(err, repository.ErrUnknownChoice) {
		t.Fatalf("expected ErrUnknownChoice, got %v", err)
	}
}

func TestVoteChangeSequence(t *testing.T) {
	store := newStore(t)
	repo := repository.NewVoteRepo(store)

	// bump nice, bump nice, adjust nice, bump must -> {no:0, nice:1, must:1}
	apply(t, store, func(wb *workbook.Workbook) error {
		if _, err := repo.Bump(wb, "f1", models.ChoiceNice, ""); err != nil {
			return err
		}
		if _, err := repo.Bump(wb, "f1", models.ChoiceNice, ""); err != nil {
			return err
		}
		if err := repo.AdjustForPrevious(wb, "f1", models.ChoiceNice); err != nil {
			return err
		}
		_, err := repo.Bump(wb, "f1", models.ChoiceMust, "")
		return err
	})

	got := counts(t, repo, "f1")
	want := models.Counts{No: 0, Nice: 1, Must: 1}
	if got != want {
		t.Fatalf("counts = %+v, want %+v", got, want)
	}
}

func TestAdjustNeverGoesNegative(t *testing.T) {
	store := newStore(t)
	repo := repository.NewVoteRepo(store)

	apply(t, store, func(wb *workbook.Workbook) error {
		if _, err := repo.Bump(wb, "f1", models.ChoiceMust, ""); err != nil {
			return err
		}
		// Retract more than was ever counted; the floor is zero.
		for i := 0; i < 3; i++ {
			if err := repo.AdjustForPrevious(wb, "f1", models.ChoiceMust); err != nil {
				return err
			}
		}
		return nil
	})

	got := counts(t, repo, "f1")
	if got.No < 0 || got.Nice < 0 || got.Must < 0 {
		t.Fatalf("counter went negative: %+v", got)
	}
	if got != (models.Counts{}) {
		t.Fatalf("counts = %+v, want all zero", got)
	}
}

func TestAdjustIsNoOpForUnknownInput(t *testing.T) {
	store := newStore(t)
	repo := repository.NewVoteRepo(store)

	apply(t, store, func(wb *workbook.Workbook) error {
		if _, err := repo.Bump(wb, "f1", models.ChoiceNo, ""); err != nil {
			return err
		}
		// Missing row and unknown choice both fall through silently.
		if err := repo.AdjustForPrevious(wb, "never-seen", models.ChoiceNo); err != nil {
			return err
		}
		return repo.AdjustForPrevious(wb, "f1", "whatever")
	})

	if got := counts(t, repo, "f1"); got != (models.Counts{No: 1}) {
		t.Fatalf("counts = %+v, want {No:1}", got)
	}
}

func TestVoteChangeConservesTotal(t *testing.T) {
	store := newStore(t)
	repo := repository.NewVoteRepo(store)

	apply(t, store, func(wb *workbook.Workbook) error {
		for i := 0; i < 4; i++ {
			if _, err := repo.Bump(wb, "f1", models.ChoiceNo, ""); err != nil {
				return err
			}
		}
		return nil
	})
	before := counts(t, repo, "f1").Total()

	// A vote change (valid previous choice) nets to zero delta in total.
	apply(t, store, func(wb *workbook.Workbook) error {
		if err := repo.AdjustForPrevious(wb, "f1", models.ChoiceNo); err != nil {
			return err
		}
		_, err := repo.Bump(wb, "f1", models.ChoiceMust, "")
		return err
	})
	if got := counts(t, repo, "f1").Total(); got != before {
		t.Fatalf("vote change moved total from %d to %d", before, got)
	}

	// A first vote (no previous choice) adds exactly one.
	apply(t, store, func(wb *workbook.Workbook) error {
		_, err := repo.Bump(wb, "f1", models.ChoiceNice, "")
		return err
	})
	if got := counts(t, repo, "f1").Total(); got != before+1 {
		t.Fatalf("fresh vote moved total from %d to %d", before, got)
	}
}
