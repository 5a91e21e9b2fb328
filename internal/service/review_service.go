package service

import (
	"encoding/json"
	"errors"
	"time"

	"sam_awards_backend/internal/award"
	"sam_awards_backend/internal/model"
	"sam_awards_backend/internal/repository"
	"sam_awards_backend/internal/util"
	"sam_awards_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ReviewService implements the staff side of the workflow: listing
// pending nominations and moving them to their final status. A
// nomination only ever becomes "qualified" through an explicit
// approval here.
type ReviewService struct {
	Nominations *repository.NominationRepository
}

func NewReviewService(nominations *repository.NominationRepository) *ReviewService {
	return &ReviewService{Nominations: nominations}
}

func (s *ReviewService) ListPending(page, limit int) ([]model.Nomination, int64, error) {
	return s.Nominations.ListByStatus(model.StatusWaitingApproval, page, limit)
}

func (s *ReviewService) List(status model.NominationStatus, page, limit int) ([]model.Nomination, int64, error) {
	return s.Nominations.ListByStatus(status, page, limit)
}

// Overview returns nomination counts per status for the dashboard.
func (s *ReviewService) Overview() (map[model.NominationStatus]int64, error) {
	return s.Nominations.CountByStatus()
}

// Approve marks a waiting nomination as qualified.
func (s *ReviewService) Approve(id string, reviewerID uint, note string) (*model.Nomination, error) {
	return s.decide(id, reviewerID, note, model.StatusQualified, nil)
}

// Reject marks a waiting nomination as unqualified, recording the
// bilingual reasons shown to the applicant.
func (s *ReviewService) Reject(id string, reviewerID uint, note string, reasons []award.Text) (*model.Nomination, error) {
	return s.decide(id, reviewerID, note, model.StatusUnqualified, reasons)
}

func (s *ReviewService) decide(id string, reviewerID uint, note string, status model.NominationStatus, reasons []award.Text) (*model.Nomination, error) {
	n, err := s.Nominations.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrNominationNotFound
	}
	if err != nil {
		return nil, err
	}

	if n.Status != model.StatusWaitingApproval {
		return nil, util.ErrNominationNotPending
	}

	now := time.Now()
	n.Status = status
	n.ReviewedAt = &now
	n.ReviewerID = &reviewerID
	n.ReviewNote = note

	if len(reasons) > 0 {
		raw, err := json.Marshal(reasons)
		if err != nil {
			return nil, err
		}
		n.FailureReasons = raw
	}

	if err := s.Nominations.Update(n); err != nil {
		return nil, err
	}

	logger.Log.Info("nomination reviewed",
		zap.String("id", n.ID),
		zap.String("reference", n.ReferenceNumber),
		zap.String("status", string(status)),
		zap.Uint("reviewerId", reviewerID))

	return n, nil
}
