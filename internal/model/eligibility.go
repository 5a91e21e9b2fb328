package model

import (
	"encoding/json"
	"time"
)

type EligibilityOutcome string

const (
	EligibilityPending EligibilityOutcome = "pending"
	EligibilityPassed  EligibilityOutcome = "passed"
	EligibilityFailed  EligibilityOutcome = "failed"
)

// EligibilityCheck records a user's questionnaire session for one
// award category. Answers accumulate across requests until every
// visible question has been answered.
// swagger:model EligibilityCheck
type EligibilityCheck struct {
	UUIDBase
	UserID       uint               `gorm:"index;not null" json:"userId"`
	CategorySlug string             `gorm:"size:60;index;not null" json:"categorySlug"`
	Cycle        int                `gorm:"index;not null" json:"cycle"`
	Answers      json.RawMessage    `gorm:"type:json" json:"answers"`
	Outcome      EligibilityOutcome `gorm:"size:20;default:'pending'" json:"outcome"`
	CompletedAt  *time.Time         `json:"completedAt,omitempty"`
}

func (EligibilityCheck) TableName() string {
	return "eligibility_checks"
}
