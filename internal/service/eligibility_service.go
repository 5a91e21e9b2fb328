package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"sam_awards_backend/internal/award"
	"sam_awards_backend/internal/model"
	"sam_awards_backend/internal/repository"
	"sam_awards_backend/internal/util"
	"sam_awards_backend/pkg/logger"
	"sam_awards_backend/pkg/monitoring"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// EligibilityService runs the pre-submission questionnaire for
// categories that gate entry. Answers are cached in Redis while the
// applicant works through the questions and persisted to MySQL on
// every change.
type EligibilityService struct {
	Repo      *repository.EligibilityRepository
	Redirects *award.RedirectScheduler
}

func NewEligibilityService(repo *repository.EligibilityRepository) *EligibilityService {
	return &EligibilityService{
		Repo:      repo,
		Redirects: award.NewRedirectScheduler(),
	}
}

// CheckState is the questionnaire snapshot returned to the client.
type CheckState struct {
	CategorySlug     string                   `json:"categorySlug"`
	HasQuestionnaire bool                     `json:"hasQuestionnaire"`
	SubcategoryLabel *award.Text              `json:"subcategoryLabel,omitempty"`
	Questions        []award.Question         `json:"questions"`
	Answers          award.Answers            `json:"answers"`
	AllAnswered      bool                     `json:"allAnswered"`
	Outcome          model.EligibilityOutcome `json:"outcome"`
	FailureReasons   []award.Text             `json:"failureReasons,omitempty"`
	Redirect         *award.Redirect          `json:"redirect,omitempty"`
}

func redirectKey(userID uint, slug string) string {
	return fmt.Sprintf("%d:%s", userID, slug)
}

// Start opens (or resumes) a questionnaire session. Categories without
// an eligibility questionnaire return an already-passed state so the
// client can move straight to the submission form.
func (s *EligibilityService) Start(ctx context.Context, userID uint, slug string) (*CheckState, error) {
	if award.CategoryBySlug(slug) == nil && award.LookupEligibility(slug) == nil {
		return nil, util.ErrCategoryNotFound
	}

	rs := award.LookupEligibility(slug)
	if rs == nil {
		return &CheckState{
			CategorySlug:     slug,
			HasQuestionnaire: false,
			Answers:          award.Answers{},
			AllAnswered:      true,
			Outcome:          model.EligibilityPassed,
		}, nil
	}

	cycle := time.Now().Year()
	check, err := s.Repo.FindActive(userID, slug, cycle)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		check = &model.EligibilityCheck{
			UserID:       userID,
			CategorySlug: slug,
			Cycle:        cycle,
			Answers:      json.RawMessage("{}"),
			Outcome:      model.EligibilityPending,
		}
		if err := s.Repo.Create(check); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	answers, err := s.loadAnswers(ctx, userID, slug, check)
	if err != nil {
		return nil, err
	}

	return s.buildState(rs, check, answers, nil), nil
}

// Answer records one answer, clears any dependent answers, and
// re-evaluates the questionnaire. When a question carries a redirect
// and is answered "no", the redirect is scheduled and returned so the
// client can show the toast before navigating.
func (s *EligibilityService) Answer(ctx context.Context, userID uint, slug, questionID, value string) (*CheckState, error) {
	rs := award.LookupEligibility(slug)
	if rs == nil {
		return nil, util.ErrCategoryNotFound
	}

	question, ok := questionByID(rs, questionID)
	if !ok {
		return nil, util.ErrUnknownQuestion
	}

	cycle := time.Now().Year()
	check, err := s.Repo.FindActive(userID, slug, cycle)
	if err != nil {
		return nil, err
	}

	answers, err := s.loadAnswers(ctx, userID, slug, check)
	if err != nil {
		return nil, err
	}

	answers = award.SetAnswer(rs, answers, questionID, value)

	var redirect *award.Redirect
	if r := award.RedirectFor(question, value); r != nil {
		redirect = r
		s.Redirects.Schedule(redirectKey(userID, slug), r, func(fired *award.Redirect) {
			logger.Log.Info("eligibility redirect fired",
				zap.Uint("userId", userID),
				zap.String("category", slug),
				zap.String("target", fired.TargetSlug))
		})
	} else {
		s.Redirects.Cancel(redirectKey(userID, slug))
	}

	ev := award.Evaluate(rs, answers)
	if ev.AllAnswered {
		now := time.Now()
		check.CompletedAt = &now
		if ev.Passed() {
			check.Outcome = model.EligibilityPassed
		} else {
			check.Outcome = model.EligibilityFailed
		}
	} else {
		check.CompletedAt = nil
		check.Outcome = model.EligibilityPending
	}

	raw, err := json.Marshal(answers)
	if err != nil {
		return nil, err
	}
	check.Answers = raw
	if err := s.Repo.Update(check); err != nil {
		return nil, err
	}
	if ev.AllAnswered {
		// The completed row in MySQL is authoritative now; the hot
		// cache only serves in-progress sessions.
		monitoring.EligibilityChecks.WithLabelValues(slug, string(check.Outcome)).Inc()
		if err := s.Repo.DropCachedAnswers(ctx, userID, slug); err != nil {
			logger.Log.Warn("answer cache drop failed", zap.Error(err))
		}
	} else if err := s.Repo.CacheAnswers(ctx, userID, slug, answers); err != nil {
		logger.Log.Warn("answer cache write failed", zap.Error(err))
	}

	return s.buildState(rs, check, answers, redirect), nil
}

// State returns the current questionnaire snapshot without mutating it.
func (s *EligibilityService) State(ctx context.Context, userID uint, slug string) (*CheckState, error) {
	rs := award.LookupEligibility(slug)
	if rs == nil {
		return nil, util.ErrCategoryNotFound
	}

	check, err := s.Repo.FindActive(userID, slug, time.Now().Year())
	if err != nil {
		return nil, err
	}

	answers, err := s.loadAnswers(ctx, userID, slug, check)
	if err != nil {
		return nil, err
	}

	return s.buildState(rs, check, answers, nil), nil
}

// Snapshot is the result of a stateless evaluation of one answer set.
type Snapshot struct {
	CategorySlug   string           `json:"categorySlug"`
	AllAnswered    bool             `json:"allAnswered"`
	Passed         bool             `json:"passed"`
	Status         award.Status     `json:"status"`
	FailureReasons []award.Text     `json:"failureReasons,omitempty"`
	Questions      []award.Question `json:"questions"`
	Answers        award.Answers    `json:"answers"`
}

// EvaluateSnapshot runs the questionnaire rules over a caller-supplied
// answer set without touching any stored session. Clients use it to
// preview the outcome; nothing here can produce "qualified".
func (s *EligibilityService) EvaluateSnapshot(slug string, answers award.Answers) (*Snapshot, error) {
	rs := award.LookupEligibility(slug)
	if rs == nil {
		return nil, util.ErrCategoryNotFound
	}
	if answers == nil {
		answers = award.Answers{}
	}

	ev := award.Evaluate(rs, answers)
	status, reasons := award.ResolveStatus(true, ev)

	return &Snapshot{
		CategorySlug:   slug,
		AllAnswered:    ev.AllAnswered,
		Passed:         ev.Passed(),
		Status:         status,
		FailureReasons: reasons,
		Questions:      award.VisibleQuestions(rs, answers),
		Answers:        answers,
	}, nil
}

// CancelRedirect aborts a pending redirect, typically because the
// applicant changed the triggering answer back.
func (s *EligibilityService) CancelRedirect(userID uint, slug string) bool {
	return s.Redirects.Cancel(redirectKey(userID, slug))
}

// Passed reports whether the user completed the questionnaire for the
// category with an acceptable answer set. Categories without a
// questionnaire always pass.
func (s *EligibilityService) Passed(userID uint, slug string) (bool, error) {
	if award.LookupEligibility(slug) == nil {
		return true, nil
	}

	check, err := s.Repo.FindActive(userID, slug, time.Now().Year())
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return check.Outcome == model.EligibilityPassed, nil
}

func (s *EligibilityService) Stop() {
	s.Redirects.Stop()
}

func (s *EligibilityService) loadAnswers(ctx context.Context, userID uint, slug string, check *model.EligibilityCheck) (award.Answers, error) {
	answers, err := s.Repo.CachedAnswers(ctx, userID, slug)
	if err != nil {
		logger.Log.Warn("answer cache read failed", zap.Error(err))
	}
	if answers != nil {
		return answers, nil
	}

	answers = award.Answers{}
	if len(check.Answers) > 0 {
		if err := json.Unmarshal(check.Answers, &answers); err != nil {
			return nil, err
		}
	}
	return answers, nil
}

func (s *EligibilityService) buildState(rs *award.RuleSet, check *model.EligibilityCheck, answers award.Answers, redirect *award.Redirect) *CheckState {
	ev := award.Evaluate(rs, answers)

	state := &CheckState{
		CategorySlug:     check.CategorySlug,
		HasQuestionnaire: true,
		SubcategoryLabel: rs.SubcategoryLabel,
		Questions:        award.VisibleQuestions(rs, answers),
		Answers:          answers,
		AllAnswered:      ev.AllAnswered,
		Outcome:          check.Outcome,
		Redirect:         redirect,
	}
	if check.Outcome == model.EligibilityFailed {
		state.FailureReasons = ev.FailureReasons()
	}
	return state
}

func questionByID(rs *award.RuleSet, id string) (award.Question, bool) {
	for _, q := range rs.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return award.Question{}, false
}
