package util

import "errors"

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrEmailRegistered       = errors.New("email already registered")
	ErrPermissionDenied      = errors.New("permission denied")
	ErrCategoryNotFound      = errors.New("award category not found")
	ErrNominationNotFound    = errors.New("nomination not found")
	ErrDuplicateNomination   = errors.New("a nomination for this category already exists in the current cycle")
	ErrEligibilityNotPassed  = errors.New("eligibility check not passed for this category")
	ErrUnknownSubcategory    = errors.New("unknown subcategory for this award category")
	ErrEligibilityIncomplete = errors.New("eligibility questionnaire not fully answered")
	ErrNominationNotEditable = errors.New("nomination can no longer be edited")
	ErrNominationNotPending  = errors.New("nomination is not awaiting review")
	ErrUnknownQuestion       = errors.New("unknown questionnaire question")
	ErrSubmissionsClosed     = errors.New("the nomination window is currently closed")
)
