package award

import "time"

// QuestionType distinguishes yes/no questions from free numeric inputs.
type QuestionType string

const (
	QuestionBoolean QuestionType = "boolean"
	QuestionNumber  QuestionType = "number"
)

// Text carries an Arabic/English string pair. The portal is bilingual end
// to end, so every user-facing string is stored in both languages.
type Text struct {
	Ar string `json:"ar"`
	En string `json:"en"`
}

// In returns the string for the given locale, falling back to English.
func (t Text) In(locale string) string {
	if locale == "ar" {
		return t.Ar
	}
	return t.En
}

// ExtraOption is an additional answer choice beyond yes/no, e.g. a CEO
// nomination that satisfies a service-years requirement.
type ExtraOption struct {
	Value      string `json:"value"`
	Label      Text   `json:"label"`
	Acceptable bool   `json:"acceptable"`
}

// Redirect describes the redirect-on-no behavior of a gating question:
// when the applicant answers "no" the portal shows a toast and, after
// Delay, sends them to the category identified by TargetSlug.
type Redirect struct {
	Toast      Text          `json:"toast"`
	TargetSlug string        `json:"targetSlug"`
	Delay      time.Duration `json:"delayMs" swaggertype:"integer"`
}

// Question is a single eligibility question within a rule set.
type Question struct {
	ID   string       `json:"id"`
	Text Text         `json:"text"`
	Type QuestionType `json:"type,omitempty"`
	// Acceptable is the answer that satisfies the requirement. Empty for
	// number questions, where any non-blank value is acceptable.
	Acceptable   string        `json:"acceptableAnswer,omitempty"`
	Error        Text          `json:"error"`
	ParentID     string        `json:"parentId,omitempty"`
	ParentAnswer string        `json:"parentAnswer,omitempty"`
	ExtraOptions []ExtraOption `json:"extraOptions,omitempty"`
	Placeholder  Text          `json:"placeholder,omitempty"`
	RedirectOnNo *Redirect     `json:"redirectOnNo,omitempty"`
}

// RuleSet is the eligibility questionnaire for one or more category slugs.
type RuleSet struct {
	Slugs            []string   `json:"slugs"`
	SubcategoryLabel *Text      `json:"subcategoryLabel,omitempty"`
	Questions        []Question `json:"questions"`
}

// Matches reports whether this rule set applies to the given slug.
func (rs *RuleSet) Matches(slug string) bool {
	for _, s := range rs.Slugs {
		if s == slug {
			return true
		}
	}
	return false
}

// Answers maps question ID to the applicant's raw answer. A missing key
// means the question has not been answered yet.
type Answers map[string]string
