package roster

import "testing"

func TestResolve_PriorityOrder(t *testing.T) {
	t.Parallel()

	row := Row{"id": "111", "الرقم التدريبي": "222"}
	got, ok := row.Resolve(traineeIDKeys)
	if !ok {
		t.Fatalf("expected a match")
	}
	if got != "222" {
		t.Fatalf("Resolve = %q, want the Arabic header to win", got)
	}
}

func TestResolve_PresenceNotTruthiness(t *testing.T) {
	t.Parallel()

	// An empty cell under a higher-priority header still wins over a
	// populated lower-priority one.
	row := Row{"اسم المتدرب": "", "name": "Ali"}
	got, ok := row.Resolve(traineeNameKeys)
	if !ok {
		t.Fatalf("expected a match")
	}
	if got != "" {
		t.Fatalf("Resolve = %q, want empty value from the present header", got)
	}
}

func TestResolve_Absent(t *testing.T) {
	t.Parallel()

	row := Row{"unrelated": "x"}
	if _, ok := row.Resolve(dayKeys); ok {
		t.Fatalf("expected no match for absent columns")
	}
}

func TestResolve_AliasTolerance(t *testing.T) {
	t.Parallel()

	english := Row{"Name": "سالم"}
	arabic := Row{"اسم المتدرب": "سالم"}

	gotEN, _ := english.Resolve(traineeNameKeys)
	gotAR, _ := arabic.Resolve(traineeNameKeys)
	if gotEN != gotAR {
		t.Fatalf("alias extraction differs: %q vs %q", gotEN, gotAR)
	}
}
