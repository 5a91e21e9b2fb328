package award

import "time"

// departmentRedirect is shared by the two supervisory rule sets: an
// applicant whose department is not enrolled in the Distinguished
// Management category is sent to register the department first.
var departmentRedirect = &Redirect{
	Toast: Text{
		Ar: "يجب ان يكون قسمك مشارك في فئة الإدارة المتميزة، سيتم تحويلك لصفحة التسجيل",
		En: "Your department must be participating. Redirecting to department registration...",
	},
	TargetSlug: "department",
	Delay:      3 * time.Second,
}

var departmentQuestion = Question{
	ID: "leader-dept",
	Text: Text{
		Ar: "هل قسمك مشارك في فئة الادارة المتميزة؟",
		En: "Is your department participating in the Distinguished Management category?",
	},
	Acceptable: "yes",
	Error: Text{
		Ar: "يجب ان يكون قسمك مشارك في فئة الإدارة المتميزة.",
		En: "Your department must be participating in the Distinguished Management category.",
	},
	RedirectOnNo: departmentRedirect,
}

var employeeCountQuestion = func(id string) Question {
	return Question{
		ID:   id,
		Type: QuestionNumber,
		Text: Text{
			Ar: "كم عدد الموظفين المسؤول عنهم؟",
			En: "How many employees are you responsible for?",
		},
		Placeholder: Text{
			Ar: "أدخل عدد الموظفين",
			En: "Enter number of employees",
		},
		Error: Text{
			Ar: "يرجى إدخال عدد الموظفين المسؤول عنهم.",
			En: "Please enter the number of employees you are responsible for.",
		},
	}
}

// eligibilityRules holds the questionnaire for every (sub)category that
// requires an eligibility check. Categories absent from this table go
// directly to the submission form.
var eligibilityRules = []RuleSet{
	{
		Slugs: []string{"employee-nonsupervisory-administrative"},
		SubcategoryLabel: &Text{
			Ar: "الموظف الإداري المتميز",
			En: "The Distinguished Administrative Employee",
		},
		Questions: []Question{
			{
				ID: "admin-years",
				Text: Text{
					Ar: "هل أكملت 3 سنوات أو أكثر من الخدمة؟",
					En: "Have you completed 3 or more years of service?",
				},
				Acceptable: "yes",
				Error: Text{
					Ar: "يجب أن تكون قد أكملت 3 سنوات من الخدمة أو أن يتم ترشيحك من قبل الرئيس التنفيذي.",
					En: "You must have completed 3 years of service or be nominated by the CEO.",
				},
				ExtraOptions: []ExtraOption{
					{
						Value: "ceo-nominated",
						Label: Text{
							Ar: "تم ترشيحي من قبل الرئيس التنفيذي",
							En: "Nominated by CEO",
						},
						Acceptable: true,
					},
				},
			},
		},
	},
	{
		Slugs: []string{"employee-nonsupervisory-specialist"},
		SubcategoryLabel: &Text{
			Ar: "الموظف التخصصي المتميز",
			En: "The Distinguished Specialized Employee",
		},
		Questions: []Question{
			{
				ID: "spec-years",
				Text: Text{
					Ar: "هل أكملت 3 سنوات أو أكثر من الخدمة؟",
					En: "Have you completed 3 or more years of service?",
				},
				Acceptable: "yes",
				Error: Text{
					Ar: "يجب أن تكون قد أكملت 3 سنوات أو أكثر من الخدمة.",
					En: "You must have completed 3 or more years of service.",
				},
			},
		},
	},
	{
		Slugs: []string{"employee-nonsupervisory-technical"},
		SubcategoryLabel: &Text{
			Ar: "الموظف الفني الميداني المتميز",
			En: "The Distinguished Technical Field Employee",
		},
		Questions: []Question{
			{
				ID: "tech-years",
				Text: Text{
					Ar: "هل أكملت 3 سنوات أو أكثر من الخدمة؟",
					En: "Have you completed 3 or more years of service?",
				},
				Acceptable: "yes",
				Error: Text{
					Ar: "يجب أن تكون قد أكملت 3 سنوات أو أكثر من الخدمة.",
					En: "You must have completed 3 or more years of service.",
				},
			},
			{
				ID: "tech-field",
				Text: Text{
					Ar: "هل يشمل دورك العمل الميداني المباشر والتنفيذ على أرض الواقع؟",
					En: "Does your role involve direct fieldwork and hands-on project execution?",
				},
				Acceptable: "yes",
				Error: Text{
					Ar: "يجب أن يشمل دورك العمل الميداني المباشر والتنفيذ على أرض الواقع.",
					En: "Your role must involve direct fieldwork and hands-on project execution.",
				},
			},
		},
	},
	{
		Slugs: []string{"employee-nonsupervisory-customerservice"},
		SubcategoryLabel: &Text{
			Ar: "موظف خدمة المتعاملين المتميز",
			En: "The Distinguished Customer Service Employee",
		},
		Questions: []Question{
			{
				ID: "cs-external",
				Text: Text{
					Ar: "هل تعمل مباشرة في خدمة العملاء الخارجيين (مثل: موظف استقبال، تنفيذي خط أمامي، تنفيذي خدمة عملاء)؟",
					En: "Are you directly engaged with serving external customers (e.g., Receptionist, Front-line Executive, Customer Service Executive)?",
				},
				Acceptable: "yes",
				Error: Text{
					Ar: "يجب أن تكون مشاركاً مباشرة في خدمة العملاء الخارجيين.",
					En: "You must be directly engaged with serving external customers.",
				},
			},
		},
	},
	{
		Slugs: []string{"employee-supervisory-leader"},
		SubcategoryLabel: &Text{
			Ar: "القائد المتميز",
			En: "The Distinguished Leader",
		},
		Questions: []Question{
			{
				ID: "leader-position",
				Text: Text{
					Ar: "هل تشغل منصباً تنفيذياً عالياً (مدير تنفيذي فما فوق)؟",
					En: "Are you in a senior executive position (Executive Director and above)?",
				},
				Acceptable: "yes",
				Error: Text{
					Ar: "يجب أن تكون في منصب تنفيذي عالٍ (مدير تنفيذي فما فوق).",
					En: "You must be in a senior executive position (Executive Director and above).",
				},
			},
			{
				ID: "leader-24months",
				Text: Text{
					Ar: "هل أكملت 24 شهراً على الأقل من الخدمة (باستثناء فترة الاختبار) في نفس المنصب في الشارقة لإدارة الأصول؟",
					En: "Have you completed at least 24 months of service (excluding the probation period) in the same position in SAM?",
				},
				Acceptable: "yes",
				Error: Text{
					Ar: "يجب أن تكون قد أكملت 24 شهراً على الأقل من الخدمة في نفس المنصب في الشارقة لإدارة الأصول.",
					En: "You must have completed at least 24 months of service (excluding probation) in the same position in SAM.",
				},
			},
			employeeCountQuestion("leader-emp-count"),
			departmentQuestion,
		},
	},
	{
		Slugs: []string{"employee-supervisory-futureleader"},
		SubcategoryLabel: &Text{
			Ar: "قائد المستقبل المتميز",
			En: "The Distinguished Future Leader",
		},
		Questions: []Question{
			{
				ID: "fl-position",
				Text: Text{
					Ar: "هل تشغل منصباً قيادياً (مشرف فما فوق) ولديك مرؤوسون مباشرون؟",
					En: "Are you in a leadership position (Supervisor level and above) with direct subordinates?",
				},
				Acceptable: "yes",
				Error: Text{
					Ar: "يجب أن تكون في منصب قيادي مع مرؤوسين مباشرين.",
					En: "You must be in a leadership position with direct subordinates.",
				},
			},
			{
				ID: "fl-years",
				Text: Text{
					Ar: "هل أكملت 3 سنوات أو أكثر من الخدمة في نفس المنصب في الشارقة لإدارة الأصول؟",
					En: "Have you completed 3 or more years of service in the same position in SAM?",
				},
				Acceptable: "yes",
				Error: Text{
					Ar: "يجب أن تكون قد أكملت 3 سنوات أو أكثر من الخدمة في نفس المنصب في الشارقة لإدارة الأصول.",
					En: "You must have completed 3 or more years of service in the same position in SAM.",
				},
			},
			employeeCountQuestion("fl-emp-count"),
			departmentQuestion,
		},
	},
	{
		Slugs: []string{"project"},
		Questions: []Question{
			{
				ID: "proj-completed",
				Text: Text{
					Ar: "هل تم إنجاز المشروع/المبادرة بالكامل؟",
					En: "Has the project/initiative been fully completed?",
				},
				Acceptable: "yes",
				Error: Text{
					Ar: "يجب أن يكون المشروع/المبادرة قد تم إنجازه بالكامل للتأهل.",
					En: "The project/initiative must be fully completed to be eligible.",
				},
			},
			{
				ID: "proj-duration",
				Text: Text{
					Ar: "هل تم إنجاز المشروع/المبادرة خلال اخر سنتين؟",
					En: "Was the project/initiative completed in the last 2 years?",
				},
				Acceptable: "yes",
				Error: Text{
					Ar: "يجب أن يكون المشروع/المبادرة قد أُنجز خلال آخر سنتين.",
					En: "The project/initiative must have been completed in the last 2 years.",
				},
				ParentID:     "proj-completed",
				ParentAnswer: "yes",
			},
			{
				ID: "proj-kpi",
				Text: Text{
					Ar: "هل لديك تقارير حالة ونتائج مؤشرات أداء رئيسية مدعومة بأدلة موضوعية؟",
					En: "Do you have status reports and KPI results backed by objective evidence?",
				},
				Acceptable: "yes",
				Error: Text{
					Ar: "يجب أن يكون لديك تقارير حالة ونتائج مؤشرات أداء رئيسية مدعومة بأدلة.",
					En: "You must have status reports and KPI results backed by objective evidence.",
				},
			},
		},
	},
}

// LookupEligibility returns the rule set whose slug list contains slug,
// or nil when the category has no eligibility check.
func LookupEligibility(slug string) *RuleSet {
	for i := range eligibilityRules {
		if eligibilityRules[i].Matches(slug) {
			return &eligibilityRules[i]
		}
	}
	return nil
}

// CategoriesWithEligibility lists the top-level category slugs that gate
// applications behind an eligibility questionnaire.
var CategoriesWithEligibility = []string{
	"employee-nonsupervisory",
	"employee-supervisory",
	"project",
}

// CategoriesWithDirectApply lists the category slugs whose applicants go
// straight to the submission form.
var CategoriesWithDirectApply = []string{
	"department",
	"green",
	"knowledge",
}
