package service

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"sam_awards_backend/internal/config"
	"sam_awards_backend/internal/util"
)

func TestReferenceNumber(t *testing.T) {
	pattern := regexp.MustCompile(`^AWD-2026-[0-9A-F]{8}$`)

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		ref := ReferenceNumber(2026)
		if !pattern.MatchString(ref) {
			t.Fatalf("reference %q does not match expected format", ref)
		}
		if seen[ref] {
			t.Fatalf("duplicate reference generated: %s", ref)
		}
		seen[ref] = true
	}
}

// Employee nominations must name a real subcategory; otherwise the
// derived questionnaire slug would match no rule set and skip the
// eligibility gate entirely.
func TestSubmitRejectsUnknownSubcategory(t *testing.T) {
	cfg := &config.Config{}
	cfg.Award.SubmissionsOpen = true
	s := NewSubmissionService(nil, nil, nil, nil, cfg)

	tests := []struct {
		name  string
		input SubmissionInput
	}{
		{"missing subcategory", SubmissionInput{CategorySlug: "employee-nonsupervisory"}},
		{"made-up subcategory", SubmissionInput{CategorySlug: "employee-nonsupervisory", Subcategory: "bogus"}},
		{"supervisory missing", SubmissionInput{CategorySlug: "employee-supervisory"}},
		{"wrong group", SubmissionInput{CategorySlug: "employee-supervisory", Subcategory: "administrative"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := s.Submit(context.Background(), 42, &tt.input)
			if !errors.Is(err, util.ErrUnknownSubcategory) {
				t.Fatalf("Submit() error = %v, want ErrUnknownSubcategory", err)
			}
		})
	}
}

func TestSubmitClosedWindow(t *testing.T) {
	cfg := &config.Config{}
	s := NewSubmissionService(nil, nil, nil, nil, cfg)

	_, _, err := s.Submit(context.Background(), 42, &SubmissionInput{CategorySlug: "project"})
	if !errors.Is(err, util.ErrSubmissionsClosed) {
		t.Fatalf("Submit() error = %v, want ErrSubmissionsClosed", err)
	}
}

func TestAttachmentCapReached(t *testing.T) {
	tests := []struct {
		name     string
		existing int
		maxFiles int
		want     bool
	}{
		{"zero cap is unlimited", 5, 0, false},
		{"no files yet under zero cap", 0, 0, false},
		{"under positive cap", 1, 3, false},
		{"at positive cap", 3, 3, true},
		{"over positive cap", 4, 3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := attachmentCapReached(tt.existing, tt.maxFiles); got != tt.want {
				t.Errorf("attachmentCapReached(%d, %d) = %v, want %v", tt.existing, tt.maxFiles, got, tt.want)
			}
		})
	}
}
