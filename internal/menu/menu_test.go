package menu

import "testing"

func TestDisplayFallsBackToName(t *testing.T) {
	sec := &Section{Name: "wifi"}
	if got := sec.Display(); got != "wifi" {
		t.Fatalf("expected name fallback, got %q", got)
	}
	sec.Label = "Wi-Fi"
	if got := sec.Display(); got != "Wi-Fi" {
		t.Fatalf("expected label, got %q", got)
	}
}

func TestValidateAcceptsWellFormedTree(t *testing.T) {
	if err := testMenu().Validate(); err != nil {
		t.Fatalf("expected valid tree, got %v", err)
	}
}

func TestValidateRejectsEmptyMenu(t *testing.T) {
	if err := (&Menu{}).Validate(); err == nil {
		t.Fatalf("expected error for menu without sections")
	}
}

func TestValidateRejectsEmptyBranch(t *testing.T) {
	m := &Menu{Sections: []*Section{
		{Name: "top", Sections: []*Section{}},
	}}
	if err := m.Validate(); err == nil {
		t.Fatalf("expected error for declared-but-empty children")
	}
}

func TestValidateRejectsUnnamedSection(t *testing.T) {
	m := &Menu{Sections: []*Section{
		{Name: "top", Sections: []*Section{{Name: ""}}},
	}}
	if err := m.Validate(); err == nil {
		t.Fatalf("expected error for empty section name")
	}
}

func TestSectionAtWalksPath(t *testing.T) {
	m := testMenu()
	if got := SectionAt(m, []int{0}).Name; got != "A" {
		t.Fatalf("expected A, got %q", got)
	}
	if got := SectionAt(m, []int{0, 1}).Name; got != "b" {
		t.Fatalf("expected b, got %q", got)
	}
	if got := SectionAt(m, []int{1, 0, 0}).Name; got != "Baa" {
		t.Fatalf("expected Baa, got %q", got)
	}
}

func TestSiblingsAtReturnsGroupOfLastIndex(t *testing.T) {
	m := testMenu()
	top := SiblingsAt(m, []int{1})
	if len(top) != 2 || top[0].Name != "A" || top[1].Name != "B" {
		t.Fatalf("expected top-level siblings A,B, got %v", top)
	}
	if !top[0].Branch {
		t.Fatalf("expected A to be a branch")
	}
	inner := SiblingsAt(m, []int{0, 0})
	if len(inner) != 2 || inner[0].Label != "Alpha" || inner[1].Label != "b" {
		t.Fatalf("expected children Alpha,b, got %v", inner)
	}
	if inner[0].Branch {
		t.Fatalf("expected leaf item for a")
	}
}
