package menu

import (
	"fmt"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/stepmenu/stepmenu/internal/logging"
	"github.com/stepmenu/stepmenu/internal/logging/events"
)

const (
	// DefaultSeparator splits the section name from the property in keys
	// such as "host.label".
	DefaultSeparator = "."

	// defaultSettingsGroup is the reserved group carrying root menu
	// settings rather than sections.
	defaultSettingsGroup = "default_settings"

	propLabel    = "label"
	propCallback = "callback"
	propDynamic  = "dynamic"
)

// Builder reads a grouped key-value properties file and produces a Menu.
// Each non-reserved group becomes a top-level section whose children are the
// names accumulated from the group's keys, in first-seen order.
type Builder struct {
	path string
	sep  string
}

// BuilderOption adjusts Builder construction.
type BuilderOption func(*Builder)

// WithSeparator overrides the name/property separator used in keys.
func WithSeparator(sep string) BuilderOption {
	return func(b *Builder) { b.sep = sep }
}

// NewBuilder prepares a builder for the properties file at path.
func NewBuilder(path string, opts ...BuilderOption) (*Builder, error) {
	if path == "" {
		return nil, fmt.Errorf("menu builder requires a source path")
	}
	b := &Builder{path: path, sep: DefaultSeparator}
	for _, opt := range opts {
		opt(b)
	}
	if b.sep == "" {
		return nil, fmt.Errorf("menu builder requires a non-empty separator")
	}
	return b, nil
}

// Separator returns the name/property separator in use.
func (b *Builder) Separator() string {
	return b.sep
}

// Build parses the source file and assembles the Menu tree. The dynamic map
// supplies generated siblings for names carrying the dynamic marker: the name
// expands into one leaf per entry, named <base>0..<base>N-1. A marked name
// missing from the map fails the build, as does a group yielding no sections.
func (b *Builder) Build(dynamic map[string][]DynamicSection) (*Menu, error) {
	// Only "=" may delimit key from value: ini's default delimiters include
	// ":", which would split keys using a colon-bearing separator.
	file, err := ini.LoadSources(ini.LoadOptions{KeyValueDelimiters: "="}, b.path)
	if err != nil {
		return nil, fmt.Errorf("load menu source %s: %w", b.path, err)
	}

	var roots []*Section
	rootCallback := ""
	for _, group := range file.Sections() {
		name := group.Name()
		if name == ini.DefaultSection {
			continue
		}
		if name == defaultSettingsGroup {
			rootCallback = group.Key(propCallback).Value()
			continue
		}
		sections, err := b.buildGroup(group, dynamic)
		if err != nil {
			return nil, err
		}
		if len(sections) == 0 {
			return nil, fmt.Errorf("no sections could be found in group %q", name)
		}
		events.Build.Group(name, len(sections))
		roots = append(roots, &Section{Name: name, Sections: sections})
	}

	m := &Menu{Sections: roots, Callback: rootCallback}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

type pendingSection struct {
	label    string
	callback string
	dynamic  bool
}

func (b *Builder) buildGroup(group *ini.Section, dynamic map[string][]DynamicSection) ([]*Section, error) {
	var order []string
	pending := make(map[string]*pendingSection)
	for _, key := range group.Keys() {
		parts := strings.Split(key.Name(), b.sep)
		if len(parts) != 2 {
			continue
		}
		name, property := parts[0], parts[1]
		p, ok := pending[name]
		if !ok {
			p = &pendingSection{}
			pending[name] = p
			order = append(order, name)
		}
		switch property {
		case propLabel:
			p.label = key.Value()
		case propCallback:
			p.callback = key.Value()
		case propDynamic:
			p.dynamic = true
		default:
			logging.Warn(fmt.Sprintf("unknown property %q for section %q in group %q", property, name, group.Name()))
			events.Build.UnknownProperty(group.Name(), key.Name())
		}
	}

	sections := make([]*Section, 0, len(order))
	for _, name := range order {
		p := pending[name]
		if p.dynamic {
			entries, ok := dynamic[name]
			if !ok {
				return nil, fmt.Errorf("dynamic section %q in group %q has no supplied entries", name, group.Name())
			}
			for i, entry := range entries {
				sections = append(sections, &Section{
					Name:     fmt.Sprintf("%s%d", name, i),
					Label:    entry.Label,
					Callback: entry.Callback,
				})
			}
			events.Build.Dynamic(group.Name(), name, len(entries))
			continue
		}
		sections = append(sections, &Section{Name: name, Label: p.label, Callback: p.callback})
	}
	return sections, nil
}
