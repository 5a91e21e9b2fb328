package award

// CriterionGroup classifies criteria for the EFQM-style categories that
// split scoring into enablers and results.
type CriterionGroup string

const (
	GroupEnablers CriterionGroup = "enablers"
	GroupResults  CriterionGroup = "results"
)

// RatingScale is attached to supervisor-rated criteria instead of a free
// text response requirement.
type RatingScale struct {
	Min      int  `json:"min"`
	Max      int  `json:"max"`
	MinLabel Text `json:"minLabel"`
	MaxLabel Text `json:"maxLabel"`
}

// SubCriterion is a named breakdown item within a criterion.
type SubCriterion struct {
	ID       string `json:"id"`
	Title    Text   `json:"title"`
	Evidence Text   `json:"evidence,omitempty"`
}

// Criterion is one scored section of a category's submission form.
type Criterion struct {
	ID          string `json:"id"`
	Title       Text   `json:"title"`
	Description Text   `json:"description"`
	// Points is the weight shown to applicants. Kept as a string because
	// the award handbook prints it verbatim.
	Points             string         `json:"points"`
	Group              CriterionGroup `json:"group,omitempty"`
	EvidenceAr         []string       `json:"evidenceListAr"`
	EvidenceEn         []string       `json:"evidenceListEn"`
	ExamplesAr         []string       `json:"examplesListAr,omitempty"`
	ExamplesEn         []string       `json:"examplesListEn,omitempty"`
	RatingScale        *RatingScale   `json:"ratingScale,omitempty"`
	JustificationLabel *Text          `json:"justificationLabel,omitempty"`
	SubCriteria        []SubCriterion `json:"subCriteria,omitempty"`
}

// FieldType enumerates the input kinds of extra info fields.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldNumber   FieldType = "number"
	FieldDate     FieldType = "date"
	FieldTextarea FieldType = "textarea"
	FieldSelect   FieldType = "select"
)

// FieldOption is a choice for select-type extra info fields.
type FieldOption struct {
	Value string `json:"value"`
	Label Text   `json:"label"`
}

// ExtraInfoField is a category-specific input collected on the intro step
// of the submission form, beyond the shared nominee details.
type ExtraInfoField struct {
	ID       string        `json:"id"`
	Type     FieldType     `json:"type"`
	Label    Text          `json:"label"`
	Required bool          `json:"required"`
	Options  []FieldOption `json:"options,omitempty"`
}

// SubmissionConfig describes the submission form of a category: its step
// sequence, per-criterion limits, extra fields, and criteria set.
type SubmissionConfig struct {
	Slugs                []string         `json:"slugs"`
	Steps                []string         `json:"steps"`
	MaxWordsPerCriterion int              `json:"maxWordsPerCriterion"`
	MaxFilesPerCriterion int              `json:"maxFilesPerCriterion"`
	ExtraInfoFields      []ExtraInfoField `json:"extraInfoFields"`
	Criteria             []Criterion      `json:"criteria"`
	TotalPoints          int              `json:"totalPoints"`
}

// Matches reports whether this config applies to the given slug.
func (c *SubmissionConfig) Matches(slug string) bool {
	for _, s := range c.Slugs {
		if s == slug {
			return true
		}
	}
	return false
}

// Subcategory is an employee subcategory choice shown on the submission
// form's intro step.
type Subcategory struct {
	Value string `json:"value"`
	Label Text   `json:"label"`
}

// EmployeeSubcategories maps the employee branch ("nonsupervisory" or
// "supervisory") to its selectable subcategories.
var EmployeeSubcategories = map[string][]Subcategory{
	"nonsupervisory": {
		{Value: "administrative", Label: Text{Ar: "الموظف الإداري المتميز", En: "Distinguished Administrative Employee"}},
		{Value: "specialist", Label: Text{Ar: "الموظف التخصصي المتميز", En: "Distinguished Specialized Employee"}},
		{Value: "technical", Label: Text{Ar: "الموظف الفني الميداني المتميز", En: "Distinguished Technical Field Employee"}},
		{Value: "customerservice", Label: Text{Ar: "موظف خدمة المتعاملين المتميز", En: "Distinguished Customer Service Employee"}},
		{Value: "unsung", Label: Text{Ar: "الجندي المجهول المتميز", En: "Distinguished Unknown Soldier"}},
	},
	"supervisory": {
		{Value: "leader", Label: Text{Ar: "القائد المتميز", En: "Distinguished Leader"}},
		{Value: "futureleader", Label: Text{Ar: "قائد المستقبل المتميز", En: "Distinguished Future Leader"}},
	},
}
