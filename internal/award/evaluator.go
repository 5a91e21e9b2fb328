package award

import "strings"

// Verdict is the tri-state result of checking one answer: a question with
// no answer yet is pending, not failed.
type Verdict int

const (
	VerdictPending Verdict = iota
	VerdictPass
	VerdictFail
)

// VisibleQuestions filters the rule set down to the questions the
// applicant should currently see. A child question is visible only while
// its parent holds the exact answer named by ParentAnswer.
func VisibleQuestions(rs *RuleSet, answers Answers) []Question {
	if rs == nil {
		return nil
	}
	visible := make([]Question, 0, len(rs.Questions))
	for _, q := range rs.Questions {
		if q.ParentID == "" || answers[q.ParentID] == q.ParentAnswer {
			visible = append(visible, q)
		}
	}
	return visible
}

// IsAcceptable checks a single answer against its question.
//
// Number questions accept any non-blank value. Boolean questions pass
// when the answer equals the acceptable answer or matches an extra
// option marked acceptable; anything else fails.
func IsAcceptable(q Question, answers Answers) Verdict {
	answer, ok := answers[q.ID]
	if !ok {
		return VerdictPending
	}
	if q.Type == QuestionNumber {
		if strings.TrimSpace(answer) == "" {
			return VerdictFail
		}
		return VerdictPass
	}
	if answer == q.Acceptable {
		return VerdictPass
	}
	for _, opt := range q.ExtraOptions {
		if opt.Value == answer && opt.Acceptable {
			return VerdictPass
		}
	}
	return VerdictFail
}

// Evaluation is the outcome of running a full questionnaire.
type Evaluation struct {
	// AllAnswered is true when the rule set has at least one visible
	// question and every visible question carries a usable answer.
	AllAnswered bool
	// Failed holds the visible questions whose answers are unacceptable,
	// in questionnaire order.
	Failed []Question
}

// Passed reports whether the questionnaire is complete with no failures.
func (e Evaluation) Passed() bool {
	return e.AllAnswered && len(e.Failed) == 0
}

// Evaluate runs the questionnaire against the current answers. Hidden
// questions are ignored entirely, so answers left over from a collapsed
// branch never count against the applicant.
func Evaluate(rs *RuleSet, answers Answers) Evaluation {
	visible := VisibleQuestions(rs, answers)
	ev := Evaluation{AllAnswered: len(visible) > 0}
	for _, q := range visible {
		answer, ok := answers[q.ID]
		if !ok || (q.Type == QuestionNumber && strings.TrimSpace(answer) == "") {
			ev.AllAnswered = false
			continue
		}
		if IsAcceptable(q, answers) == VerdictFail {
			ev.Failed = append(ev.Failed, q)
		}
	}
	return ev
}

// FailureReasons collects the error texts of the failed questions.
func (e Evaluation) FailureReasons() []Text {
	if len(e.Failed) == 0 {
		return nil
	}
	reasons := make([]Text, 0, len(e.Failed))
	for _, q := range e.Failed {
		reasons = append(reasons, q.Error)
	}
	return reasons
}

// SetAnswer records an answer and clears the answers of every direct
// child of the changed question, so a stale child answer never survives
// a parent change. Returns the updated map (answers may be nil).
func SetAnswer(rs *RuleSet, answers Answers, questionID, value string) Answers {
	if answers == nil {
		answers = Answers{}
	}
	answers[questionID] = value
	if rs != nil {
		for _, q := range rs.Questions {
			if q.ParentID == questionID {
				delete(answers, q.ID)
			}
		}
	}
	return answers
}

// RedirectFor returns the redirect directive triggered by answering "no"
// to the given question, or nil when the answer does not trigger one.
func RedirectFor(q Question, value string) *Redirect {
	if value == "no" && q.RedirectOnNo != nil {
		return q.RedirectOnNo
	}
	return nil
}
