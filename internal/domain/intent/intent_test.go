package intent

import "testing"

func TestType_IsValid(t *testing.T) {
	valid := []Type{Briefing, Position, Quote, Comparison, SessionSearch, Search}
	for _, ty := range valid {
		if !ty.IsValid() {
			t.Errorf("expected %q to be valid", ty)
		}
	}
	if Type("summary").IsValid() {
		t.Error("unknown type should not be valid")
	}
}

func TestFilters_IsEmpty(t *testing.T) {
	if !(Filters{}).IsEmpty() {
		t.Error("zero filters should be empty")
	}
	if (Filters{Session: "67"}).IsEmpty() {
		t.Error("session filter should not be empty")
	}
	if (Filters{Keywords: []string{"pesca"}}).IsEmpty() {
		t.Error("keyword filter should not be empty")
	}
}
