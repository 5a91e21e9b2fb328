package award

import "testing"

func TestLookupEligibility(t *testing.T) {
	tests := []struct {
		slug      string
		wantRules bool
	}{
		{"employee-nonsupervisory-administrative", true},
		{"employee-nonsupervisory-specialist", true},
		{"employee-nonsupervisory-technical", true},
		{"employee-nonsupervisory-customerservice", true},
		{"employee-supervisory-leader", true},
		{"employee-supervisory-futureleader", true},
		{"project", true},
		{"department", false},
		{"green", false},
		{"knowledge", false},
		{"bogus", false},
	}

	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			rs := LookupEligibility(tt.slug)
			if (rs != nil) != tt.wantRules {
				t.Errorf("LookupEligibility(%q) = %v, want rules=%v", tt.slug, rs, tt.wantRules)
			}
			if rs != nil && len(rs.Questions) == 0 {
				t.Errorf("rule set %q has no questions", tt.slug)
			}
		})
	}
}

func TestEligibilitySlug(t *testing.T) {
	tests := []struct {
		name        string
		slug        string
		subcategory string
		want        string
		wantOK      bool
	}{
		{"non-employee ignores subcategory", "project", "", "project", true},
		{"non-employee with stray subcategory", "department", "whatever", "department", true},
		{"nonsupervisory known", "employee-nonsupervisory", "administrative", "employee-nonsupervisory-administrative", true},
		{"nonsupervisory unsung", "employee-nonsupervisory", "unsung", "employee-nonsupervisory-unsung", true},
		{"supervisory known", "employee-supervisory", "leader", "employee-supervisory-leader", true},
		{"nonsupervisory missing", "employee-nonsupervisory", "", "", false},
		{"nonsupervisory unknown", "employee-nonsupervisory", "nonsupervisory-bogus", "", false},
		{"supervisory missing", "employee-supervisory", "", "", false},
		{"supervisory unknown", "employee-supervisory", "administrative", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := EligibilitySlug(tt.slug, tt.subcategory)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("EligibilitySlug(%q, %q) = (%q, %v), want (%q, %v)",
					tt.slug, tt.subcategory, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestLookupSubmissionConfig(t *testing.T) {
	for _, slug := range []string{
		"employee-nonsupervisory", "employee-supervisory",
		"department", "project", "knowledge", "green",
	} {
		cfg := LookupSubmissionConfig(slug)
		if cfg == nil {
			t.Errorf("no submission config for %q", slug)
			continue
		}
		if cfg.MaxWordsPerCriterion != 400 {
			t.Errorf("%s: max words = %d", slug, cfg.MaxWordsPerCriterion)
		}
		if cfg.MaxFilesPerCriterion != 0 {
			t.Errorf("%s: max files = %d", slug, cfg.MaxFilesPerCriterion)
		}
	}
	if cfg := LookupSubmissionConfig("unknown"); cfg != nil {
		t.Errorf("unexpected config for unknown slug: %v", cfg)
	}
}

func TestCriteriaFor(t *testing.T) {
	tests := []struct {
		name        string
		slug        string
		subcategory string
		wantFirstID string
	}{
		{"supervisory leader", "employee-supervisory", "leader", "ldr-perf"},
		{"supervisory future leader", "employee-supervisory", "futureleader", "fl-perf"},
		{"supervisory unknown falls back to leader", "employee-supervisory", "other", "ldr-perf"},
		{"nonsupervisory unsung hero", "employee-nonsupervisory", "unsung", "unsung-achievements"},
		{"nonsupervisory default pattern", "employee-nonsupervisory", "administrative", "emp-perf"},
		{"department ignores subcategory", "department", "whatever", "dept-plan"},
		{"project", "project", "", "proj-design"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			crits := CriteriaFor(tt.slug, tt.subcategory)
			if len(crits) == 0 {
				t.Fatal("no criteria resolved")
			}
			if crits[0].ID != tt.wantFirstID {
				t.Errorf("first criterion = %s, want %s", crits[0].ID, tt.wantFirstID)
			}
		})
	}

	if crits := CriteriaFor("unknown", ""); crits != nil {
		t.Errorf("unexpected criteria for unknown slug: %v", crits)
	}
}

func TestCriteriaPointTotals(t *testing.T) {
	// Each config's criteria point strings are display values; the
	// configured totals are what the review UI reports.
	tests := []struct {
		slug string
		want int
	}{
		{"employee-nonsupervisory", 100},
		{"employee-supervisory", 100},
		{"department", 1000},
		{"project", 100},
		{"knowledge", 1000},
		{"green", 1000},
	}
	for _, tt := range tests {
		cfg := LookupSubmissionConfig(tt.slug)
		if cfg == nil {
			t.Errorf("no config for %s", tt.slug)
			continue
		}
		if cfg.TotalPoints != tt.want {
			t.Errorf("%s total = %d, want %d", tt.slug, cfg.TotalPoints, tt.want)
		}
	}
}

func TestUnsungCriteriaHaveRatingScale(t *testing.T) {
	for _, c := range CriteriaFor("employee-nonsupervisory", "unsung") {
		if c.RatingScale == nil {
			t.Errorf("%s missing rating scale", c.ID)
			continue
		}
		if c.RatingScale.Min != 1 || c.RatingScale.Max != 10 {
			t.Errorf("%s scale = %d..%d", c.ID, c.RatingScale.Min, c.RatingScale.Max)
		}
		if c.JustificationLabel == nil {
			t.Errorf("%s missing justification label", c.ID)
		}
	}
}

func TestCatalog(t *testing.T) {
	cats := Categories()
	if len(cats) != 6 {
		t.Fatalf("catalogue size = %d", len(cats))
	}
	for _, c := range cats {
		if c.Name.Ar == "" || c.Name.En == "" {
			t.Errorf("%s missing bilingual name", c.Slug)
		}
		if c.Name.In("en") != c.Name.En || c.Name.In("ar") != c.Name.Ar {
			t.Errorf("%s locale selection broken", c.Slug)
		}
		if c.Name.In("fr") != c.Name.En {
			t.Errorf("%s unknown locale should fall back to English", c.Slug)
		}
	}

	checked := map[string]bool{}
	for _, c := range cats {
		checked[c.Slug] = c.RequiresCheck
	}
	for _, slug := range CategoriesWithEligibility {
		if !checked[slug] {
			t.Errorf("%s should require an eligibility check", slug)
		}
	}
	for _, slug := range CategoriesWithDirectApply {
		if checked[slug] {
			t.Errorf("%s should apply directly", slug)
		}
	}

	if CategoryBySlug("employee-supervisory") == nil {
		t.Error("employee-supervisory missing from catalogue")
	}
	if CategoryBySlug("nope") != nil {
		t.Error("unexpected entry for unknown slug")
	}
}
