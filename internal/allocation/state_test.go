package allocation

import "testing"

func TestSanitize(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"42", "42"},
		{"42.5", "42.5"},
		{"12.345", "12.34"},
		{"1a2", "12"},
		{"10..5", "10.5"},
		{"10.", "10."},
		{".5", ".5"},
		{"abc", ""},
		{"-5", "5"},
		{"1 2", "12"},
		{"", ""},
	}
	for _, c := range cases {
		if got := Sanitize(c.input); string(got) != c.want {
			t.Errorf("Sanitize(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestRawWeighting_Value(t *testing.T) {
	cases := []struct {
		raw  RawWeighting
		want float64
	}{
		{"", 0},
		{"10.", 10},
		{".", 0},
		{"42.5", 42.5},
		{"0", 0},
	}
	for _, c := range cases {
		if got := c.raw.Value(); got != c.want {
			t.Errorf("RawWeighting(%q).Value() = %v, want %v", c.raw, got, c.want)
		}
	}
}

func TestState_SelectDeselect(t *testing.T) {
	s := NewState().Select(1).Select(2)
	if !s.IsSelected(1) || !s.IsSelected(2) {
		t.Fatal("expected funds 1 and 2 selected")
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}

	// Selecting again is a no-op
	s = s.Select(1)
	if s.Len() != 2 {
		t.Errorf("Len() after re-select = %d, want 2", s.Len())
	}

	s = s.Deselect(1)
	if s.IsSelected(1) {
		t.Error("fund 1 still selected after Deselect")
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}

func TestState_SetWeightingSelectsFund(t *testing.T) {
	s, ok := NewState().SetWeighting(7, "25")
	if !ok {
		t.Fatal("SetWeighting(25) rejected")
	}
	if !s.IsSelected(7) {
		t.Error("setting a weighting should select the fund")
	}
	if raw, _ := s.Raw(7); raw != "25" {
		t.Errorf("Raw(7) = %q, want %q", raw, "25")
	}
}

func TestState_SetWeightingOverMaxRejected(t *testing.T) {
	s, _ := NewState().SetWeighting(1, "50")

	rejected, ok := s.SetWeighting(1, "150")
	if ok {
		t.Error("SetWeighting(150) accepted, want rejected")
	}
	if raw, _ := rejected.Raw(1); raw != "50" {
		t.Errorf("field should retain prior value %q, got %q", "50", raw)
	}
}

func TestState_SetWeightingAtMaxAccepted(t *testing.T) {
	s, ok := NewState().SetWeighting(1, "100")
	if !ok {
		t.Fatal("SetWeighting(100) rejected, want accepted")
	}
	if got := s.Total(); got != 100 {
		t.Errorf("Total() = %v, want 100", got)
	}
}

func TestState_SetWeightingSanitizes(t *testing.T) {
	s, ok := NewState().SetWeighting(1, "12a.3x45")
	if !ok {
		t.Fatal("sanitizable input rejected")
	}
	if raw, _ := s.Raw(1); raw != "12.34" {
		t.Errorf("Raw(1) = %q, want %q", raw, "12.34")
	}
}

func TestState_InProgressDecimalRetained(t *testing.T) {
	s, _ := NewState().SetWeighting(1, "10.")
	if raw, _ := s.Raw(1); raw != "10." {
		t.Errorf("Raw(1) = %q, want in-progress %q kept as typed", raw, "10.")
	}
	if got := s.Total(); got != 10 {
		t.Errorf("Total() = %v, want 10", got)
	}
}

func TestState_ImmutableUpdates(t *testing.T) {
	base := NewState().Select(1)
	withWeight, _ := base.SetWeighting(1, "60")

	if raw, _ := base.Raw(1); raw != "" {
		t.Errorf("original state mutated: Raw(1) = %q, want empty", raw)
	}
	if raw, _ := withWeight.Raw(1); raw != "60" {
		t.Errorf("updated state Raw(1) = %q, want %q", raw, "60")
	}

	deselected := withWeight.Deselect(1)
	if !withWeight.IsSelected(1) {
		t.Error("Deselect mutated its receiver")
	}
	if deselected.IsSelected(1) {
		t.Error("Deselect returned state with fund still selected")
	}
}

func TestState_TotalSumsSelectedOnly(t *testing.T) {
	s, _ := NewState().SetWeighting(1, "60")
	s, _ = s.SetWeighting(2, "40")
	s, _ = s.SetWeighting(3, "10")
	s = s.Deselect(3)

	if got := s.Total(); got != 100 {
		t.Errorf("Total() = %v, want 100 after deselecting fund 3", got)
	}
}

func TestState_EntriesInSelectionOrder(t *testing.T) {
	s, _ := NewState().SetWeighting(5, "30")
	s, _ = s.SetWeighting(2, "30")
	s, _ = s.SetWeighting(9, "40")

	entries := s.Entries()
	if len(entries) != 3 {
		t.Fatalf("len(Entries()) = %d, want 3", len(entries))
	}
	wantOrder := []int64{5, 2, 9}
	for i, e := range entries {
		if e.FundID != wantOrder[i] {
			t.Errorf("Entries()[%d].FundID = %d, want %d", i, e.FundID, wantOrder[i])
		}
	}
}
