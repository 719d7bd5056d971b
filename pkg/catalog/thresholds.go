package catalog

import (
	"math"

	"github.com/aretw0/xrinput/pkg/domain"
)

// Thresholds maps binding_name to the activation threshold used when a bimanual
// release is evaluated.
type Thresholds map[string]float64

// DefaultThresholds returns the thresholds for the built-in bimanual bindings.
func DefaultThresholds() Thresholds {
	return Thresholds{
		"TRIGGER": 0.3,
		"SQUEEZE": 0.3,
	}
}

// For returns the threshold of bindingName.
func (t Thresholds) For(bindingName string) (float64, bool) {
	v, ok := t[bindingName]
	return v, ok
}

// With returns a copy of t overlaid with over.
func (t Thresholds) With(over Thresholds) Thresholds {
	out := make(Thresholds, len(t)+len(over))
	for k, v := range t {
		out[k] = v
	}
	for k, v := range over {
		out[k] = v
	}
	return out
}

// Check verifies that every action eligible for release deferral (bimanual and
// dispatched) has a threshold in [0, 1]. It returns the first *domain.ConfigError found.
func (t Thresholds) Check(cat *Catalog) error {
	for _, s := range cat.specs {
		if !s.Bimanual() || !s.Dispatched() {
			continue
		}
		v, ok := t[s.BindingName]
		if !ok {
			return &domain.ConfigError{BindingName: s.BindingName, Action: s.Name, Reason: "missing activation threshold"}
		}
		if math.IsNaN(v) || v < 0 || v > 1 {
			return &domain.ConfigError{BindingName: s.BindingName, Action: s.Name, Reason: "threshold must be within [0, 1]"}
		}
	}
	return nil
}
