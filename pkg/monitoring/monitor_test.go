package monitoring

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestDomainCounters(t *testing.T) {
	NominationsSubmitted.WithLabelValues("project").Inc()
	NominationsSubmitted.WithLabelValues("project").Inc()
	if got := testutil.ToFloat64(NominationsSubmitted.WithLabelValues("project")); got != 2 {
		t.Errorf("nominations counter = %v, want 2", got)
	}

	EligibilityChecks.WithLabelValues("employee-supervisory-leader", "failed").Inc()
	if got := testutil.ToFloat64(EligibilityChecks.WithLabelValues("employee-supervisory-leader", "failed")); got != 1 {
		t.Errorf("eligibility counter = %v, want 1", got)
	}
	if got := testutil.ToFloat64(EligibilityChecks.WithLabelValues("employee-supervisory-leader", "passed")); got != 0 {
		t.Errorf("untouched outcome counter = %v, want 0", got)
	}
}
