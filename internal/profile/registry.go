package profile

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultProfileName is used when no profile is requested.
const DefaultProfileName = "complete"

// builtins is the internal registry of the profiles shipped with the CLI.
var builtins = map[string]*Profile{
	"minimal":  minimalProfile(),
	"complete": completeProfile(),
}

// Builtin returns a copy of a built-in profile.
func Builtin(name string) (*Profile, bool) {
	p, ok := builtins[name]
	if !ok {
		return nil, false
	}
	return p.clone(), true
}

// BuiltinNames returns the built-in profile names in sorted order.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Set is a lookup of profiles by name: the built-ins plus any configured ones.
type Set struct {
	profiles map[string]*Profile
}

// NewSet returns a set holding the built-in profiles.
func NewSet() *Set {
	s := &Set{profiles: make(map[string]*Profile, len(builtins))}
	for name, p := range builtins {
		s.profiles[name] = p.clone()
	}
	return s
}

// Add registers a profile, replacing any profile of the same name.
func (s *Set) Add(p *Profile) error {
	if err := p.Validate(); err != nil {
		return err
	}
	s.profiles[p.Name] = p
	return nil
}

// Get returns a profile by name.
func (s *Set) Get(name string) (*Profile, error) {
	p, ok := s.profiles[name]
	if !ok {
		return nil, fmt.Errorf("unknown profile %q; valid profiles: %s", name, strings.Join(s.Names(), ", "))
	}
	return p, nil
}

// Names returns all profile names in sorted order.
func (s *Set) Names() []string {
	names := make([]string, 0, len(s.profiles))
	for name := range s.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (p *Profile) clone() *Profile {
	c := *p
	c.Paths = append(c.Paths[:0:0], p.Paths...)
	c.NextSteps = append(c.NextSteps[:0:0], p.NextSteps...)
	c.Sections = make(map[string]Category, len(p.Sections))
	for k, v := range p.Sections {
		c.Sections[k] = v
	}
	return &c
}
