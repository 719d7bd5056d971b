package catalog

import (
	"fmt"

	"github.com/aretw0/xrinput/pkg/domain"
)

// Catalog is an immutable, validated set of ActionSpecs.
type Catalog struct {
	specs    []domain.ActionSpec
	index    map[string]int
	handlers map[string]string
	grip     string
	aim      string
}

// Default returns the built-in catalog.
// The table is static, so a validation failure is a programming error.
func Default() *Catalog {
	cat, err := New(defaultActions...)
	if err != nil {
		panic(fmt.Sprintf("catalog: invalid built-in action table: %v", err))
	}
	return cat
}

// New validates specs and builds a catalog from them.
// Handler identifiers are resolved here, once, into a lookup table.
func New(specs ...domain.ActionSpec) (*Catalog, error) {
	c := &Catalog{
		specs:    make([]domain.ActionSpec, 0, len(specs)),
		index:    make(map[string]int, len(specs)),
		handlers: make(map[string]string, len(specs)),
	}

	for _, s := range specs {
		if err := validateSpec(s); err != nil {
			return nil, err
		}
		if _, dup := c.index[s.Name]; dup {
			return nil, fmt.Errorf("duplicate action %q", s.Name)
		}

		switch s.Pose {
		case domain.PoseGrip:
			if c.grip != "" {
				return nil, fmt.Errorf("action %q: grip pose already designated by %q", s.Name, c.grip)
			}
			c.grip = s.Name
		case domain.PoseAim:
			if c.aim != "" {
				return nil, fmt.Errorf("action %q: aim pose already designated by %q", s.Name, c.aim)
			}
			c.aim = s.Name
		}

		cp := s
		cp.Hands = append([]domain.Hand(nil), s.Hands...)
		c.index[s.Name] = len(c.specs)
		c.specs = append(c.specs, cp)
		c.handlers[s.Name] = domain.HandlerPrefix + s.Name + domain.HandlerSuffix
	}

	if c.grip == "" {
		return nil, fmt.Errorf("no grip pose action")
	}
	if c.aim == "" {
		return nil, fmt.Errorf("no aim pose action")
	}

	return c, nil
}

func validateSpec(s domain.ActionSpec) error {
	if s.Name == "" {
		return fmt.Errorf("action name is required")
	}
	if s.BindingName == "" {
		return fmt.Errorf("action %q: binding name is required", s.Name)
	}
	if len(components[s.BindingName]) == 0 {
		return fmt.Errorf("action %q: binding %q has no physical binding in any interaction profile", s.Name, s.BindingName)
	}
	if len(s.Hands) == 0 || len(s.Hands) > 2 {
		return fmt.Errorf("action %q: expected 1 or 2 hands, got %d", s.Name, len(s.Hands))
	}
	for _, h := range s.Hands {
		if !h.Valid() {
			return fmt.Errorf("action %q: unknown hand %q", s.Name, h)
		}
	}
	if len(s.Hands) == 2 && s.Hands[0] == s.Hands[1] {
		return fmt.Errorf("action %q: hand %q declared twice", s.Name, s.Hands[0])
	}

	switch s.Kind {
	case domain.KindContinuous, domain.KindVibration:
		if s.Pose != domain.PoseNone {
			return fmt.Errorf("action %q: pose role on a %s action", s.Name, s.Kind)
		}
	case domain.KindPose:
		if s.Pose != domain.PoseGrip && s.Pose != domain.PoseAim {
			return fmt.Errorf("action %q: pose action needs a grip or aim role", s.Name)
		}
	default:
		return fmt.Errorf("action %q: unknown value kind %q", s.Name, s.Kind)
	}
	return nil
}

// Len returns the number of actions.
func (c *Catalog) Len() int {
	return len(c.specs)
}

// Specs returns a copy of the action table in registration order.
func (c *Catalog) Specs() []domain.ActionSpec {
	out := make([]domain.ActionSpec, len(c.specs))
	for i, s := range c.specs {
		out[i] = s
		out[i].Hands = append([]domain.Hand(nil), s.Hands...)
	}
	return out
}

// Lookup returns the spec registered under name.
func (c *Catalog) Lookup(name string) (domain.ActionSpec, bool) {
	i, ok := c.index[name]
	if !ok {
		return domain.ActionSpec{}, false
	}
	s := c.specs[i]
	s.Hands = append([]domain.Hand(nil), s.Hands...)
	return s, true
}

// HandlerID returns the dispatch handler identifier of an action, or "" if unknown.
func (c *Catalog) HandlerID(name string) string {
	return c.handlers[name]
}

// Bimanual reports whether name is a known two-handed action.
func (c *Catalog) Bimanual(name string) bool {
	i, ok := c.index[name]
	return ok && c.specs[i].Bimanual()
}

// Grip returns the name of the grip pose action.
func (c *Catalog) Grip() string { return c.grip }

// Aim returns the name of the aim pose action.
func (c *Catalog) Aim() string { return c.aim }
