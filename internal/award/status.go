package award

// Status is the lifecycle state of a category application.
type Status string

const (
	// StatusWaitingApproval marks an application that passed its checks
	// and now awaits an administrator decision.
	StatusWaitingApproval Status = "waiting-approval"
	// StatusQualified is only ever assigned by an administrator approval,
	// never by the eligibility engine itself.
	StatusQualified   Status = "qualified"
	StatusUnqualified Status = "unqualified"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusWaitingApproval, StatusQualified, StatusUnqualified:
		return true
	}
	return false
}

// ResolveStatus determines the initial status of a category application.
// Categories without eligibility questions go straight to admin review.
// A failed questionnaire yields unqualified together with the failure
// reasons; a passed one still requires approval.
func ResolveStatus(hasQuestions bool, ev Evaluation) (Status, []Text) {
	if !hasQuestions {
		return StatusWaitingApproval, nil
	}
	if len(ev.Failed) > 0 {
		return StatusUnqualified, ev.FailureReasons()
	}
	return StatusWaitingApproval, nil
}
