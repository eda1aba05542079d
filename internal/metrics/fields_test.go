package metrics

import "testing"

func TestMetricFieldConstants(t *testing.T) {
	for _, key := range []string{AttrMethod, AttrPath, AttrStatus, AttrProvider, AttrKind, AttrOutcome} {
		if key == "" {
			t.Fatalf("expected metric attribute keys to be non-empty")
		}
	}
}
