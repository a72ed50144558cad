package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/ausawards/admin-api/internal/apperr"
	"github.com/ausawards/admin-api/internal/model"
)

// AwardStore persists award aggregates keyed by id with upsert
// semantics.
type AwardStore interface {
	Save(ctx context.Context, a *model.Award) error
	FindByID(ctx context.Context, id string) (*model.Award, error)
	FindAll(ctx context.Context) ([]model.Award, error)
}

// AwardService implements award creation and the partial updates the
// admin routes expose. Updates follow a load-mutate-save contract: the
// aggregate is loaded by id, a single mutation is applied, and the
// whole row is written back.
type AwardService struct {
	awards AwardStore
}

func NewAwardService(awards AwardStore) *AwardService {
	return &AwardService{awards: awards}
}

// CreateAward assigns a fresh id and persists the award.
func (s *AwardService) CreateAward(ctx context.Context, award *model.Award) error {
	award.ID = uuid.NewString()
	return s.awards.Save(ctx, award)
}

// GetAward returns the award with the given id or ErrNotFound.
func (s *AwardService) GetAward(ctx context.Context, id string) (*model.Award, error) {
	award, err := s.awards.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if award == nil {
		return nil, apperr.ErrNotFound
	}
	return award, nil
}

// ListAwards returns all awards.
func (s *AwardService) ListAwards(ctx context.Context) ([]model.Award, error) {
	return s.awards.FindAll(ctx)
}

// AddAlternateID appends a secondary identifier to an award.
func (s *AwardService) AddAlternateID(ctx context.Context, awardID string, altID model.AwardAlternateID) error {
	return s.updateAward(ctx, awardID, func(a *model.Award) error {
		a.AlternateIDs = append(a.AlternateIDs, altID)
		return nil
	})
}

// AddClassification appends a classification to an award.
func (s *AwardService) AddClassification(ctx context.Context, awardID string, c model.AwardClassification) error {
	return s.updateAward(ctx, awardID, func(a *model.Award) error {
		a.Classifications = append(a.Classifications, c)
		return nil
	})
}

// UpdateExpiredDate sets or clears the award's expiry date.
func (s *AwardService) UpdateExpiredDate(ctx context.Context, awardID string, expiredAt *time.Time) error {
	return s.updateAward(ctx, awardID, func(a *model.Award) error {
		a.ExpiredDate = expiredAt
		return nil
	})
}

// UpdateClassificationStatus flips the active flag on one classification.
func (s *AwardService) UpdateClassificationStatus(ctx context.Context, awardID, classificationID string, active bool) error {
	return s.updateClassification(ctx, awardID, classificationID, func(c *model.AwardClassification) {
		c.Active = active
	})
}

// UpdateClassificationNote replaces the note on one classification.
func (s *AwardService) UpdateClassificationNote(ctx context.Context, awardID, classificationID, note string) error {
	return s.updateClassification(ctx, awardID, classificationID, func(c *model.AwardClassification) {
		c.Note = note
	})
}

// updateAward loads the award, applies mutate and saves the result.
// A missing award yields ErrNotFound before mutate runs.
func (s *AwardService) updateAward(ctx context.Context, awardID string, mutate func(*model.Award) error) error {
	award, err := s.awards.FindByID(ctx, awardID)
	if err != nil {
		return err
	}
	if award == nil {
		log.Printf("awards: update requested for award %s but it could not be found", awardID)
		return apperr.ErrNotFound
	}
	if err := mutate(award); err != nil {
		return err
	}
	return s.awards.Save(ctx, award)
}

func (s *AwardService) updateClassification(ctx context.Context, awardID, classificationID string, mutate func(*model.AwardClassification)) error {
	return s.updateAward(ctx, awardID, func(a *model.Award) error {
		for i := range a.Classifications {
			if a.Classifications[i].ID == classificationID {
				mutate(&a.Classifications[i])
				return nil
			}
		}
		log.Printf("awards: classification %s not found on award %s", classificationID, awardID)
		return apperr.ErrNotFound
	})
}
