package allocation

import "testing"

func TestAssemble_SkipsZeroEntries(t *testing.T) {
	s := weighted(t, map[int64]string{1: "60", 2: "40"})
	s = s.Select(3) // selected but never weighted

	funds := Assemble(s)
	if len(funds) != 2 {
		t.Fatalf("len(Assemble()) = %d, want 2 (zero entry skipped)", len(funds))
	}
	for _, f := range funds {
		if f.FundID == 3 {
			t.Error("zero-weighted fund 3 appeared in payload")
		}
	}
}

func TestAssemble_DeselectedFundOmitted(t *testing.T) {
	s := weighted(t, map[int64]string{1: "60", 2: "40"})
	s = s.Deselect(2)

	funds := Assemble(s)
	if len(funds) != 1 {
		t.Fatalf("len(Assemble()) = %d, want 1", len(funds))
	}
	if funds[0].FundID != 1 || funds[0].TargetWeighting != 60 {
		t.Errorf("Assemble()[0] = %+v, want fund 1 at 60", funds[0])
	}
}

func TestAssemble_ParsesRawInput(t *testing.T) {
	s, _ := NewState().SetWeighting(1, "10.")
	s, _ = s.SetWeighting(2, "89.5")

	funds := Assemble(s)
	if len(funds) != 2 {
		t.Fatalf("len(Assemble()) = %d, want 2", len(funds))
	}
	if funds[0].TargetWeighting != 10 {
		t.Errorf("funds[0].TargetWeighting = %v, want 10 (parsed from %q)", funds[0].TargetWeighting, "10.")
	}
	if funds[1].TargetWeighting != 89.5 {
		t.Errorf("funds[1].TargetWeighting = %v, want 89.5", funds[1].TargetWeighting)
	}
}

func TestAssemble_PreservesSelectionOrder(t *testing.T) {
	s, _ := NewState().SetWeighting(9, "50")
	s, _ = s.SetWeighting(1, "50")

	funds := Assemble(s)
	if funds[0].FundID != 9 || funds[1].FundID != 1 {
		t.Errorf("payload order = [%d %d], want [9 1]", funds[0].FundID, funds[1].FundID)
	}
}

func TestAssemble_EmptyState(t *testing.T) {
	funds := Assemble(NewState())
	if len(funds) != 0 {
		t.Errorf("len(Assemble(empty)) = %d, want 0", len(funds))
	}
}
