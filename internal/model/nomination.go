package model

import (
	"encoding/json"
	"time"
)

type NominationStatus string

const (
	StatusDraft           NominationStatus = "draft"
	StatusWaitingApproval NominationStatus = "waiting-approval"
	StatusQualified       NominationStatus = "qualified"
	StatusUnqualified     NominationStatus = "unqualified"
)

// swagger:model Nomination
type Nomination struct {
	UUIDBase
	ReferenceNumber string           `gorm:"size:30;uniqueIndex" json:"referenceNumber"`
	UserID          uint             `gorm:"index;not null" json:"userId"`
	User            *User            `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CategorySlug    string           `gorm:"size:60;index;not null" json:"categorySlug"`
	Subcategory     string           `gorm:"size:60" json:"subcategory"`
	Cycle           int              `gorm:"index;not null" json:"cycle"` // award year
	Status          NominationStatus `gorm:"size:30;index;default:'waiting-approval'" json:"status"`
	ExtraInfo       json.RawMessage  `gorm:"type:json" json:"extraInfo"`      // answers to the category's extra info fields
	Responses       json.RawMessage  `gorm:"type:json" json:"responses"`      // per-criterion written responses and ratings
	FailureReasons  json.RawMessage  `gorm:"type:json" json:"failureReasons"` // bilingual reasons when unqualified
	TotalPoints     int              `json:"totalPoints"`
	SubmittedAt     time.Time        `json:"submittedAt"`
	ReviewedAt      *time.Time       `json:"reviewedAt,omitempty"`
	ReviewerID      *uint            `json:"reviewerId,omitempty"`
	ReviewNote      string           `gorm:"size:1000" json:"reviewNote"`
	Attachments     []Attachment     `gorm:"foreignKey:NominationID" json:"attachments,omitempty"`
}

func (Nomination) TableName() string {
	return "nominations"
}

// swagger:model Attachment
type Attachment struct {
	UUIDBase
	NominationID string `gorm:"size:36;index;not null" json:"nominationId"`
	CriterionID  string `gorm:"size:60;index" json:"criterionId"`
	FileName     string `gorm:"size:255;not null" json:"fileName"`
	Size         int64  `json:"size"`
	ContentType  string `gorm:"size:100" json:"contentType"`
	StorageKey   string `gorm:"size:255;not null" json:"-"`
	URL          string `gorm:"size:500" json:"url"`
}

func (Attachment) TableName() string {
	return "nomination_attachments"
}
