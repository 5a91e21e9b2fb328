package award

import "testing"

func TestResolveStatus(t *testing.T) {
	rs := LookupEligibility("project")

	t.Run("no questionnaire waits for approval", func(t *testing.T) {
		status, reasons := ResolveStatus(false, Evaluation{})
		if status != StatusWaitingApproval || reasons != nil {
			t.Errorf("status = %s, reasons = %v", status, reasons)
		}
	})

	t.Run("failed answers disqualify with reasons", func(t *testing.T) {
		ev := Evaluate(rs, Answers{
			"proj-completed": "no",
			"proj-kpi":       "yes",
		})
		status, reasons := ResolveStatus(true, ev)
		if status != StatusUnqualified {
			t.Errorf("status = %s", status)
		}
		if len(reasons) == 0 {
			t.Error("expected failure reasons")
		}
	})

	t.Run("passing answers still wait for approval", func(t *testing.T) {
		ev := Evaluate(rs, Answers{
			"proj-completed": "yes",
			"proj-duration":  "yes",
			"proj-kpi":       "yes",
		})
		if !ev.Passed() {
			t.Fatalf("evaluation failed: %v", ev.Failed)
		}
		status, _ := ResolveStatus(true, ev)
		if status != StatusWaitingApproval {
			t.Errorf("status = %s, want %s", status, StatusWaitingApproval)
		}
	})
}

func TestStatusValid(t *testing.T) {
	for _, s := range []Status{StatusQualified, StatusUnqualified, StatusWaitingApproval} {
		if !s.Valid() {
			t.Errorf("%s should be valid", s)
		}
	}
	if Status("pending").Valid() {
		t.Error("pending should be invalid")
	}
}
