package award

import (
	"reflect"
	"testing"
)

func TestVisibleQuestionsGating(t *testing.T) {
	rs := LookupEligibility("project")
	if rs == nil {
		t.Fatal("project rule set missing")
	}

	tests := []struct {
		name    string
		answers Answers
		wantIDs []string
	}{
		{
			name:    "no answers hides dependent question",
			answers: Answers{},
			wantIDs: []string{"proj-completed", "proj-kpi"},
		},
		{
			name:    "parent answered yes reveals child",
			answers: Answers{"proj-completed": "yes"},
			wantIDs: []string{"proj-completed", "proj-duration", "proj-kpi"},
		},
		{
			name:    "parent answered no keeps child hidden",
			answers: Answers{"proj-completed": "no"},
			wantIDs: []string{"proj-completed", "proj-kpi"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, q := range VisibleQuestions(rs, tt.answers) {
				got = append(got, q.ID)
			}
			if !reflect.DeepEqual(got, tt.wantIDs) {
				t.Errorf("visible = %v, want %v", got, tt.wantIDs)
			}
		})
	}
}

func TestIsAcceptable(t *testing.T) {
	boolQ := Question{ID: "q1", Type: QuestionBoolean, Acceptable: "yes"}
	numQ := Question{ID: "q2", Type: QuestionNumber}
	extraQ := Question{
		ID:         "q3",
		Type:       QuestionBoolean,
		Acceptable: "yes",
		ExtraOptions: []ExtraOption{
			{Value: "nominated", Acceptable: true},
			{Value: "other", Acceptable: false},
		},
	}

	tests := []struct {
		name    string
		q       Question
		answers Answers
		want    Verdict
	}{
		{"unanswered is pending", boolQ, Answers{}, VerdictPending},
		{"acceptable answer passes", boolQ, Answers{"q1": "yes"}, VerdictPass},
		{"other answer fails", boolQ, Answers{"q1": "no"}, VerdictFail},
		{"number with value passes", numQ, Answers{"q2": "12"}, VerdictPass},
		{"number zero passes", numQ, Answers{"q2": "0"}, VerdictPass},
		{"blank number fails", numQ, Answers{"q2": "   "}, VerdictFail},
		{"acceptable extra option passes", extraQ, Answers{"q3": "nominated"}, VerdictPass},
		{"unacceptable extra option fails", extraQ, Answers{"q3": "other"}, VerdictFail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsAcceptable(tt.q, tt.answers); got != tt.want {
				t.Errorf("IsAcceptable = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvaluate(t *testing.T) {
	rs := LookupEligibility("employee-supervisory-leader")
	if rs == nil {
		t.Fatal("leader rule set missing")
	}

	passing := Answers{
		"leader-position":  "yes",
		"leader-24months":  "yes",
		"leader-emp-count": "4",
		"leader-dept":      "yes",
	}

	t.Run("all acceptable answers pass", func(t *testing.T) {
		ev := Evaluate(rs, passing)
		if !ev.AllAnswered {
			t.Error("expected AllAnswered")
		}
		if !ev.Passed() {
			t.Errorf("expected pass, failed: %v", ev.Failed)
		}
	})

	t.Run("partial answers not all answered", func(t *testing.T) {
		ev := Evaluate(rs, Answers{"leader-position": "yes"})
		if ev.AllAnswered {
			t.Error("expected AllAnswered=false")
		}
	})

	t.Run("failing answer recorded", func(t *testing.T) {
		answers := Answers{}
		for k, v := range passing {
			answers[k] = v
		}
		answers["leader-24months"] = "no"
		ev := Evaluate(rs, answers)
		if ev.Passed() {
			t.Fatal("expected failure")
		}
		if len(ev.Failed) != 1 || ev.Failed[0].ID != "leader-24months" {
			t.Errorf("failed = %v", ev.Failed)
		}
		reasons := ev.FailureReasons()
		if len(reasons) != 1 || reasons[0].En == "" {
			t.Errorf("failure reasons = %v", reasons)
		}
	})
}

func TestSetAnswerClearsDependents(t *testing.T) {
	rs := LookupEligibility("project")
	answers := Answers{}

	answers = SetAnswer(rs, answers, "proj-completed", "yes")
	answers = SetAnswer(rs, answers, "proj-duration", "yes")
	if answers["proj-duration"] != "yes" {
		t.Fatal("child answer not stored")
	}

	answers = SetAnswer(rs, answers, "proj-completed", "no")
	if _, ok := answers["proj-duration"]; ok {
		t.Error("stale child answer survived parent change")
	}
	if answers["proj-completed"] != "no" {
		t.Error("parent answer not updated")
	}
}

func TestRedirectFor(t *testing.T) {
	rs := LookupEligibility("employee-supervisory-leader")
	var deptQ Question
	for _, q := range rs.Questions {
		if q.ID == "leader-dept" {
			deptQ = q
		}
	}
	if deptQ.RedirectOnNo == nil {
		t.Fatal("department question missing redirect")
	}

	if r := RedirectFor(deptQ, "no"); r == nil || r.TargetSlug != "department" {
		t.Errorf("redirect on no = %v", r)
	}
	if r := RedirectFor(deptQ, "yes"); r != nil {
		t.Errorf("unexpected redirect on yes: %v", r)
	}
}
