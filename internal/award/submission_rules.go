package award

// defaultSteps is the step sequence every category currently uses.
var defaultSteps = []string{"intro", "criteria", "review", "confirmation"}

var sharedEmployeeExtraFields = []ExtraInfoField{
	{ID: "department", Type: FieldText, Label: Text{Ar: "القسم / الإدارة", En: "Department / Division"}, Required: true},
	{ID: "yearsOfService", Type: FieldNumber, Label: Text{Ar: "سنوات الخدمة", En: "Years of Service"}, Required: true},
	{ID: "position", Type: FieldText, Label: Text{Ar: "المسمى الوظيفي", En: "Job Title / Position"}, Required: true},
}

var submissionConfigs = []SubmissionConfig{
	{
		Slugs:                []string{"employee-nonsupervisory"},
		Steps:                defaultSteps,
		MaxWordsPerCriterion: 400,
		MaxFilesPerCriterion: 0,
		TotalPoints:          100,
		ExtraInfoFields:      sharedEmployeeExtraFields,
		Criteria:             patternACriteria,
	},
	{
		Slugs:                []string{"employee-supervisory"},
		Steps:                defaultSteps,
		MaxWordsPerCriterion: 400,
		MaxFilesPerCriterion: 0,
		TotalPoints:          100,
		ExtraInfoFields:      sharedEmployeeExtraFields,
		Criteria:             leaderCriteria,
	},
	{
		Slugs:                []string{"department"},
		Steps:                defaultSteps,
		MaxWordsPerCriterion: 400,
		MaxFilesPerCriterion: 0,
		TotalPoints:          1000,
		ExtraInfoFields: []ExtraInfoField{
			{ID: "deptName", Type: FieldText, Label: Text{Ar: "اسم القسم / الإدارة", En: "Department Name"}, Required: true},
			{ID: "deptHeadName", Type: FieldText, Label: Text{Ar: "اسم رئيس القسم", En: "Department Head Name"}, Required: true},
		},
		Criteria: departmentCriteria,
	},
	{
		Slugs:                []string{"project"},
		Steps:                defaultSteps,
		MaxWordsPerCriterion: 400,
		MaxFilesPerCriterion: 0,
		TotalPoints:          100,
		ExtraInfoFields: []ExtraInfoField{
			{ID: "projectName", Type: FieldText, Label: Text{Ar: "اسم المشروع / المبادرة", En: "Project / Initiative Name"}, Required: true},
			{ID: "projectLead", Type: FieldText, Label: Text{Ar: "قائد المشروع", En: "Project Lead"}, Required: true},
			{ID: "projectDuration", Type: FieldText, Label: Text{Ar: "مدة المشروع", En: "Project Duration"}, Required: true},
		},
		Criteria: projectCriteria,
	},
	{
		Slugs:                []string{"knowledge"},
		Steps:                defaultSteps,
		MaxWordsPerCriterion: 400,
		MaxFilesPerCriterion: 0,
		TotalPoints:          1000,
		ExtraInfoFields: []ExtraInfoField{
			{ID: "kmDept", Type: FieldText, Label: Text{Ar: "القسم / الإدارة", En: "Department / Division"}, Required: true},
		},
		Criteria: knowledgeCriteria,
	},
	{
		Slugs:                []string{"green"},
		Steps:                defaultSteps,
		MaxWordsPerCriterion: 400,
		MaxFilesPerCriterion: 0,
		TotalPoints:          1000,
		ExtraInfoFields: []ExtraInfoField{
			{ID: "greenDept", Type: FieldText, Label: Text{Ar: "القسم / الإدارة", En: "Department / Division"}, Required: true},
		},
		Criteria: greenCriteria,
	},
}

// supervisoryCriteriaMap and nonSupervisoryCriteriaMap swap in the
// subcategory-specific criteria sets for the two employee categories.
var supervisoryCriteriaMap = map[string][]Criterion{
	"leader":       leaderCriteria,
	"futureleader": futureLeaderCriteria,
}

var nonSupervisoryCriteriaMap = map[string][]Criterion{
	"unsung": unsungCriteria,
}

// LookupSubmissionConfig returns the submission configuration whose slug
// list contains slug, or nil for unknown categories.
func LookupSubmissionConfig(slug string) *SubmissionConfig {
	for i := range submissionConfigs {
		if submissionConfigs[i].Matches(slug) {
			return &submissionConfigs[i]
		}
	}
	return nil
}

// CriteriaFor resolves the criteria set for a category and an optional
// employee subcategory. Supervisory applicants fall back to the leader
// set when the subcategory is unknown; non-supervisory applicants fall
// back to the standard employee set unless the subcategory has its own
// (currently only the unsung hero track does).
// EligibilitySlug resolves the questionnaire slug for a category and
// subcategory pair. Employee categories gate per subcategory, so a
// missing or unknown subcategory has no valid slug there.
func EligibilitySlug(slug, subcategory string) (string, bool) {
	var group string
	switch slug {
	case "employee-nonsupervisory":
		group = "nonsupervisory"
	case "employee-supervisory":
		group = "supervisory"
	default:
		return slug, true
	}

	for _, s := range EmployeeSubcategories[group] {
		if s.Value == subcategory {
			return slug + "-" + subcategory, true
		}
	}
	return "", false
}

func CriteriaFor(slug, subcategory string) []Criterion {
	if slug == "employee-supervisory" {
		if c, ok := supervisoryCriteriaMap[subcategory]; ok {
			return c
		}
		return leaderCriteria
	}
	if slug == "employee-nonsupervisory" {
		if c, ok := nonSupervisoryCriteriaMap[subcategory]; ok {
			return c
		}
		return patternACriteria
	}
	if cfg := LookupSubmissionConfig(slug); cfg != nil {
		return cfg.Criteria
	}
	return nil
}
