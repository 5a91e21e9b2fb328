package award

import (
	"strings"
	"testing"
)

func TestWordCount(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 0},
		{"whitespace only", "   \t\n ", 0},
		{"single word", "excellence", 1},
		{"multiple spaces collapse", "a  b   c", 3},
		{"newlines separate words", "line one\nline two", 4},
		{"arabic text", "أداء متميز في العمل", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WordCount(tt.text); got != tt.want {
				t.Errorf("WordCount(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestValidateResponses(t *testing.T) {
	criteria := []Criterion{
		{ID: "c1", Points: "40"},
		{ID: "c2", Points: "30"},
		{ID: "c3", Points: "30"},
	}
	longEnough := "a detailed description of the achievement"

	t.Run("missing responses reported in order", func(t *testing.T) {
		errs := ValidateResponses(criteria, map[string]CriterionResponse{
			"c2": {Text: longEnough},
		}, 400, 0)
		if len(errs) != 2 {
			t.Fatalf("errors = %v", errs)
		}
		if errs[0].CriterionID != "c1" || errs[1].CriterionID != "c3" {
			t.Errorf("order = %s, %s", errs[0].CriterionID, errs[1].CriterionID)
		}
		for _, e := range errs {
			if e.Errors[0].Code != ErrResponseRequired {
				t.Errorf("code = %s", e.Errors[0].Code)
			}
		}
	})

	t.Run("short response flagged", func(t *testing.T) {
		errs := ValidateResponses(criteria[:1], map[string]CriterionResponse{
			"c1": {Text: "too short"},
		}, 400, 0)
		if len(errs) != 1 || errs[0].Errors[0].Code != ErrResponseTooShort {
			t.Fatalf("errors = %v", errs)
		}
	})

	t.Run("word limit boundary", func(t *testing.T) {
		atLimit := strings.Repeat("word ", 400)
		overLimit := strings.Repeat("word ", 401)

		errs := ValidateResponses(criteria[:1], map[string]CriterionResponse{
			"c1": {Text: atLimit},
		}, 400, 0)
		if len(errs) != 0 {
			t.Errorf("400 words should pass, got %v", errs)
		}

		errs = ValidateResponses(criteria[:1], map[string]CriterionResponse{
			"c1": {Text: overLimit},
		}, 400, 0)
		if len(errs) != 1 {
			t.Fatalf("errors = %v", errs)
		}
		e := errs[0].Errors[0]
		if e.Code != ErrWordLimitExceeded || e.Current != 401 || e.Max != 400 {
			t.Errorf("error = %+v", e)
		}
	})

	t.Run("file limit enforced only when positive", func(t *testing.T) {
		resp := map[string]CriterionResponse{
			"c1": {Text: longEnough, Files: []FileRef{{ID: "f1"}, {ID: "f2"}}},
		}
		if errs := ValidateResponses(criteria[:1], resp, 400, 0); len(errs) != 0 {
			t.Errorf("zero max files should not limit, got %v", errs)
		}
		errs := ValidateResponses(criteria[:1], resp, 400, 1)
		if len(errs) != 1 || errs[0].Errors[0].Code != ErrFileLimitExceeded {
			t.Fatalf("errors = %v", errs)
		}
	})

	t.Run("valid responses produce no errors", func(t *testing.T) {
		resp := map[string]CriterionResponse{
			"c1": {Text: longEnough},
			"c2": {Text: longEnough},
			"c3": {Text: longEnough},
		}
		if errs := ValidateResponses(criteria, resp, 400, 0); len(errs) != 0 {
			t.Errorf("expected clean validation, got %v", errs)
		}
	})
}
