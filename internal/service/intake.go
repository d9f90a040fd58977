package service

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/parisxmas/featuredesk/internal/attach"
	"github.com/parisxmas/featuredesk/internal/models"
	"github.com/parisxmas/featuredesk/internal/record"
	"github.com/parisxmas/featuredesk/internal/repository"
)

// IntakeService accepts one feature-request submission: it stores each
// slot's attachment under a derived name, builds the fixed-schema record,
// and appends it to the workbook.
type IntakeService struct {
	files *attach.Store
	subs  *repository.SubmissionRepo
}

func NewIntakeService(files *attach.Store, subs *repository.SubmissionRepo) *IntakeService {
	return &IntakeService{files: files, subs: subs}
}

func (s *IntakeService) Submit(ctx context.Context, in *models.Ingress) (*models.SubmissionRecord, error) {
	if in == nil || (in.Fields == nil && in.Files == nil) {
		return nil, validationf("empty submission")
	}

	now := time.Now()
	dealer := in.Field("dealer_name")

	var attachments [3]string
	for i := 1; i <= 3; i++ {
		up, ok := in.Files["attachment_"+strconv.Itoa(i)]
		if !ok || up.Filename == "" {
			continue
		}
		name := attach.Name(dealer, i, up.Filename, now)
		path, err := s.files.Save(name, up.Data)
		if err != nil {
			return nil, fmt.Errorf("save attachment %d: %w", i, err)
		}
		log.Printf("stored attachment %d for %q at %s", i, dealer, path)
		attachments[i-1] = name
	}

	rec := record.Build(in.Fields, attachments, now)
	if err := s.subs.Append(ctx, &rec); err != nil {
		return nil, fmt.Errorf("append submission: %w", err)
	}
	return &rec, nil
}

// List returns stored submissions for the admin view.
func (s *IntakeService) List(ctx context.Context) ([]models.SubmissionRecord, error) {
	return s.subs.List(ctx)
}
