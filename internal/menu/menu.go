package menu

import "fmt"

// Menu is the root of a navigable section tree. The Callback identifier, when
// present, names the function activated at the root boundary.
type Menu struct {
	Sections []*Section
	Callback string
}

// Section is a single node in the menu tree. A nil Sections slice marks a
// leaf; a non-nil slice must hold at least one child.
type Section struct {
	Name     string
	Label    string
	Callback string
	Sections []*Section
}

// Callback is a zero-argument hook attached to a menu node. The bool reports
// whether the callback produced text; false means it ran with nothing to show.
type Callback func() (string, bool)

// DynamicSection supplies the label/callback pair for one generated sibling
// of a dynamic-marked section name.
type DynamicSection struct {
	Label    string
	Callback string
}

// Item is a read-only projection of a sibling used by embedding UIs.
type Item struct {
	Name   string
	Label  string
	Branch bool
}

// Leaf reports whether the section has no children.
func (s *Section) Leaf() bool {
	return s.Sections == nil
}

// Display returns the section label, falling back to its name.
func (s *Section) Display() string {
	if s.Label != "" {
		return s.Label
	}
	return s.Name
}

// Validate checks the construction invariants of the tree: at least one
// top-level section, non-empty branches, and non-empty names.
func (m *Menu) Validate() error {
	if m == nil {
		return fmt.Errorf("menu is nil")
	}
	if len(m.Sections) == 0 {
		return fmt.Errorf("menu has no sections")
	}
	for _, sec := range m.Sections {
		if err := sec.validate(); err != nil {
			return err
		}
	}
	return nil
}

func (s *Section) validate() error {
	if s.Name == "" {
		return fmt.Errorf("section with empty name")
	}
	if s.Sections != nil && len(s.Sections) == 0 {
		return fmt.Errorf("section %q declares children but has none", s.Name)
	}
	for _, child := range s.Sections {
		if err := child.validate(); err != nil {
			return fmt.Errorf("in section %q: %w", s.Name, err)
		}
	}
	return nil
}

// SectionAt walks the given index path from the root and returns the section
// it addresses. The path must be non-empty and every index in range.
func SectionAt(m *Menu, path []int) *Section {
	sections := m.Sections
	var sec *Section
	for _, idx := range path {
		sec = sections[idx]
		sections = sec.Sections
	}
	return sec
}

// SiblingsAt returns display items for the sibling group addressed by the
// last element of path: the top-level sections when the path has a single
// element, otherwise the children of the enclosing section.
func SiblingsAt(m *Menu, path []int) []Item {
	sections := m.Sections
	for _, idx := range path[:len(path)-1] {
		sections = sections[idx].Sections
	}
	items := make([]Item, 0, len(sections))
	for _, sec := range sections {
		items = append(items, Item{Name: sec.Name, Label: sec.Display(), Branch: !sec.Leaf()})
	}
	return items
}
