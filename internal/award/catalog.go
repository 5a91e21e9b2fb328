package award

// Category is one entry of the award selection catalogue. RequiresCheck
// tells the portal whether to route applicants through the eligibility
// questionnaire before the submission form.
type Category struct {
	Slug          string        `json:"slug"`
	Name          Text          `json:"name"`
	Description   Text          `json:"description"`
	Icon          string        `json:"icon"`
	RequiresCheck bool          `json:"requiresCheck"`
	Subcategories []Subcategory `json:"subcategories,omitempty"`
}

var catalog = []Category{
	{
		Slug: "department",
		Name: Text{Ar: "الإدارة المتميزة", En: "Outstanding Department"},
		Description: Text{
			Ar: "تكريم الأقسام التي حققت أداءً استثنائياً وتميّزاً في العمليات والنتائج.",
			En: "Recognizing departments that achieved exceptional performance and operational excellence.",
		},
		Icon: "building-office",
	},
	{
		Slug: "employee-nonsupervisory",
		Name: Text{Ar: "الموظف المتميز", En: "Outstanding Employee"},
		Description: Text{
			Ar: "تقدير الموظفين الذين أظهروا تميّزاً في أدائهم ومساهماتهم المتميّزة.",
			En: "Acknowledging employees who demonstrated excellence in their performance and outstanding contributions.",
		},
		Icon:          "user",
		RequiresCheck: true,
		Subcategories: EmployeeSubcategories["nonsupervisory"],
	},
	{
		Slug: "employee-supervisory",
		Name: Text{Ar: "القائد المتميز", En: "Outstanding Leader"},
		Description: Text{
			Ar: "تقدير القادة والمشرفين الذين أظهروا تميّزاً في قيادة فرقهم وتحقيق النتائج.",
			En: "Acknowledging leaders and supervisors who demonstrated excellence in leading their teams and delivering results.",
		},
		Icon:          "users",
		RequiresCheck: true,
		Subcategories: EmployeeSubcategories["supervisory"],
	},
	{
		Slug: "project",
		Name: Text{Ar: "المشروع المتميز", En: "Outstanding Project"},
		Description: Text{
			Ar: "الاحتفاء بالمشاريع المبتكرة التي حققت نتائج ملموسة وأثراً إيجابياً.",
			En: "Celebrating innovative projects that achieved tangible results and positive impact.",
		},
		Icon:          "rocket-launch",
		RequiresCheck: true,
	},
	{
		Slug: "green",
		Name: Text{Ar: "الممارسات الخضراء", En: "Green Practices"},
		Description: Text{
			Ar: "تكريم المبادرات والممارسات التي تعزز الاستدامة البيئية والتميّز الأخضر.",
			En: "Honoring initiatives and practices that promote environmental sustainability and green excellence.",
		},
		Icon: "globe",
	},
	{
		Slug: "knowledge",
		Name: Text{Ar: "إدارة المعرفة", En: "Knowledge Management"},
		Description: Text{
			Ar: "تقدير الجهود المتميّزة في إدارة المعرفة ونقلها ومشاركتها داخل المؤسسة.",
			En: "Recognizing distinguished efforts in managing, transferring, and sharing knowledge within the organization.",
		},
		Icon: "book-open",
	},
}

// Categories returns the full award catalogue in display order.
func Categories() []Category {
	return catalog
}

// CategoryBySlug returns the catalogue entry for slug, or nil.
func CategoryBySlug(slug string) *Category {
	for i := range catalog {
		if catalog[i].Slug == slug {
			return &catalog[i]
		}
	}
	return nil
}
