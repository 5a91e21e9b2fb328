package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"sam_awards_backend/internal/award"
	"sam_awards_backend/internal/config"
	"sam_awards_backend/internal/model"
	"sam_awards_backend/internal/repository"
	"sam_awards_backend/internal/util"
	"sam_awards_backend/pkg/logger"
	"sam_awards_backend/pkg/monitoring"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SubmissionService handles the nomination form lifecycle: drafts,
// validation, final submission, and evidence attachments.
type SubmissionService struct {
	Nominations *repository.NominationRepository
	Drafts      *repository.DraftRepository
	Eligibility *EligibilityService
	Storage     *StorageService
	Cfg         *config.Config
}

func NewSubmissionService(
	nominations *repository.NominationRepository,
	drafts *repository.DraftRepository,
	eligibility *EligibilityService,
	storage *StorageService,
	cfg *config.Config,
) *SubmissionService {
	return &SubmissionService{
		Nominations: nominations,
		Drafts:      drafts,
		Eligibility: eligibility,
		Storage:     storage,
		Cfg:         cfg,
	}
}

// SubmissionInput is the full nomination form payload.
type SubmissionInput struct {
	CategorySlug string                             `json:"categorySlug"`
	Subcategory  string                             `json:"subcategory"`
	ExtraInfo    map[string]string                  `json:"extraInfo"`
	Responses    map[string]award.CriterionResponse `json:"responses"`
}

// ReferenceNumber builds a human-quotable tracking code for one
// nomination, e.g. AWD-2026-9F3C21D4.
func ReferenceNumber(cycle int) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))[:8]
	return fmt.Sprintf("AWD-%d-%s", cycle, suffix)
}

// Validate runs the word and file limit checks without persisting
// anything, so the form can surface errors before the final step.
func (s *SubmissionService) Validate(input *SubmissionInput) ([]award.CriterionErrors, error) {
	cfg := award.LookupSubmissionConfig(input.CategorySlug)
	if cfg == nil {
		return nil, util.ErrCategoryNotFound
	}

	criteria := award.CriteriaFor(input.CategorySlug, input.Subcategory)
	return award.ValidateResponses(criteria, input.Responses, cfg.MaxWordsPerCriterion, cfg.MaxFilesPerCriterion), nil
}

// Submit finalizes a nomination. The category must exist, the user
// must have passed any eligibility questionnaire, only one submission
// per category is allowed per cycle, and every criterion response must
// clear validation.
func (s *SubmissionService) Submit(ctx context.Context, userID uint, input *SubmissionInput) (*model.Nomination, []award.CriterionErrors, error) {
	if !s.Cfg.Award.SubmissionsOpen {
		return nil, nil, util.ErrSubmissionsClosed
	}

	cfg := award.LookupSubmissionConfig(input.CategorySlug)
	if cfg == nil {
		return nil, nil, util.ErrCategoryNotFound
	}

	eligibilitySlug, ok := award.EligibilitySlug(input.CategorySlug, input.Subcategory)
	if !ok {
		return nil, nil, util.ErrUnknownSubcategory
	}
	passed, err := s.Eligibility.Passed(userID, eligibilitySlug)
	if err != nil {
		return nil, nil, err
	}
	if !passed {
		return nil, nil, util.ErrEligibilityNotPassed
	}

	cycle := time.Now().Year()
	exists, err := s.Nominations.ExistsForCycle(userID, input.CategorySlug, cycle)
	if err != nil {
		return nil, nil, err
	}
	if exists {
		return nil, nil, util.ErrDuplicateNomination
	}

	criteria := award.CriteriaFor(input.CategorySlug, input.Subcategory)
	validationErrs := award.ValidateResponses(criteria, input.Responses, cfg.MaxWordsPerCriterion, cfg.MaxFilesPerCriterion)
	if len(validationErrs) > 0 {
		return nil, validationErrs, nil
	}

	extraInfo, err := json.Marshal(input.ExtraInfo)
	if err != nil {
		return nil, nil, err
	}
	responses, err := json.Marshal(input.Responses)
	if err != nil {
		return nil, nil, err
	}

	n := &model.Nomination{
		ReferenceNumber: ReferenceNumber(cycle),
		UserID:          userID,
		CategorySlug:    input.CategorySlug,
		Subcategory:     input.Subcategory,
		Cycle:           cycle,
		Status:          model.StatusWaitingApproval,
		ExtraInfo:       extraInfo,
		Responses:       responses,
		TotalPoints:     cfg.TotalPoints,
		SubmittedAt:     time.Now(),
	}

	if err := s.Nominations.Create(n); err != nil {
		return nil, nil, err
	}

	if err := s.Drafts.Delete(ctx, userID, input.CategorySlug); err != nil {
		logger.Log.Warn("draft cleanup failed", zap.Error(err))
	}

	monitoring.NominationsSubmitted.WithLabelValues(input.CategorySlug).Inc()
	logger.Log.Info("nomination submitted",
		zap.Uint("userId", userID),
		zap.String("category", input.CategorySlug),
		zap.String("reference", n.ReferenceNumber))

	return n, nil, nil
}

// SaveDraft stores an in-progress form in Redis.
func (s *SubmissionService) SaveDraft(ctx context.Context, userID uint, input *SubmissionInput) error {
	if award.LookupSubmissionConfig(input.CategorySlug) == nil {
		return util.ErrCategoryNotFound
	}
	return s.Drafts.Save(ctx, userID, input.CategorySlug, input)
}

// LoadDraft returns the stored draft, or nil when none exists.
func (s *SubmissionService) LoadDraft(ctx context.Context, userID uint, slug string) (*SubmissionInput, error) {
	var input SubmissionInput
	found, err := s.Drafts.Load(ctx, userID, slug, &input)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &input, nil
}

func (s *SubmissionService) DiscardDraft(ctx context.Context, userID uint, slug string) error {
	return s.Drafts.Delete(ctx, userID, slug)
}

// ListMine returns the user's nominations, newest first.
func (s *SubmissionService) ListMine(userID uint) ([]model.Nomination, error) {
	return s.Nominations.FindByUser(userID)
}

// Get returns one nomination, restricted to its owner unless the
// caller is staff.
func (s *SubmissionService) Get(id string, userID uint, staff bool) (*model.Nomination, error) {
	n, err := s.Nominations.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrNominationNotFound
	}
	if err != nil {
		return nil, err
	}
	if !staff && n.UserID != userID {
		return nil, util.ErrPermissionDenied
	}
	return n, nil
}

// Track looks a nomination up by its public reference number.
func (s *SubmissionService) Track(ref string, userID uint, staff bool) (*model.Nomination, error) {
	n, err := s.Nominations.FindByReference(ref)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrNominationNotFound
	}
	if err != nil {
		return nil, err
	}
	if !staff && n.UserID != userID {
		return nil, util.ErrPermissionDenied
	}
	return n, nil
}

// attachmentCapReached reports whether another file would exceed the
// per-criterion cap. A non-positive cap means unlimited.
func attachmentCapReached(existing, maxFiles int) bool {
	return maxFiles > 0 && existing >= maxFiles
}

// AddAttachment stores an evidence file for one criterion and records
// it against the nomination. The file must carry an allowed extension
// and its sniffed content type must match an accepted MIME family.
func (s *SubmissionService) AddAttachment(ctx context.Context, userID uint, nominationID, criterionID, fileName, contentType string, size int64, reader io.Reader) (*model.Attachment, error) {
	n, err := s.Get(nominationID, userID, false)
	if err != nil {
		return nil, err
	}
	if n.Status != model.StatusDraft && n.Status != model.StatusWaitingApproval {
		return nil, util.ErrNominationNotEditable
	}

	cfg := award.LookupSubmissionConfig(n.CategorySlug)
	if cfg == nil {
		return nil, util.ErrCategoryNotFound
	}

	// A zero cap means the category has no per-criterion file limit.
	existing := 0
	for _, a := range n.Attachments {
		if a.CriterionID == criterionID {
			existing++
		}
	}
	if attachmentCapReached(existing, cfg.MaxFilesPerCriterion) {
		return nil, fmt.Errorf("file limit reached for this criterion (max %d)", cfg.MaxFilesPerCriterion)
	}

	if !util.HasAllowedExtension(fileName, util.AllowedEvidenceExtensions) {
		return nil, errors.New("file type not allowed")
	}

	head := make([]byte, 512)
	read, err := io.ReadFull(reader, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, err
	}
	head = head[:read]
	if _, err := util.ValidateMimeType(bytes.NewReader(head), util.AllowedEvidenceMimeTypes); err != nil {
		return nil, err
	}
	body := io.MultiReader(bytes.NewReader(head), reader)

	key := fmt.Sprintf("nominations/%s/%s/%s-%s", n.ID, criterionID, model.GenerateUUID()[:8], fileName)
	url, err := s.Storage.Upload(ctx, key, body, size, contentType)
	if err != nil {
		return nil, err
	}

	attachment := &model.Attachment{
		NominationID: n.ID,
		CriterionID:  criterionID,
		FileName:     fileName,
		Size:         size,
		ContentType:  contentType,
		StorageKey:   key,
		URL:          url,
	}
	if err := s.Nominations.CreateAttachment(attachment); err != nil {
		return nil, err
	}
	return attachment, nil
}

// RemoveAttachment deletes an evidence file from storage and the DB.
func (s *SubmissionService) RemoveAttachment(ctx context.Context, userID uint, nominationID, attachmentID string) error {
	n, err := s.Get(nominationID, userID, false)
	if err != nil {
		return err
	}

	attachment, err := s.Nominations.FindAttachment(attachmentID)
	if err != nil || attachment.NominationID != n.ID {
		return util.ErrNominationNotFound
	}

	if err := s.Storage.Delete(ctx, attachment.StorageKey); err != nil {
		logger.Log.Warn("attachment blob delete failed", zap.Error(err))
	}
	return s.Nominations.DeleteAttachment(attachmentID)
}
