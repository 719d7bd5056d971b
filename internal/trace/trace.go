// Package trace reads recorded input traces and replays them through a dispatcher.
package trace

import (
	"fmt"
	"io"
	"os"

	"github.com/aretw0/xrinput/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Step is one recorded input: an action event, a mouse move, or a session state change.
type Step struct {
	Action  *domain.ActionEvent
	Mouse   *domain.MouseEvent
	Session *bool
}

type rawStep struct {
	Action  string             `mapstructure:"action"`
	Hand    string             `mapstructure:"hand"`
	Kind    string             `mapstructure:"kind"`
	Value   float64            `mapstructure:"value"`
	Mouse   *domain.MouseEvent `mapstructure:"mouse"`
	Session *bool              `mapstructure:"session"`
}

type rawTrace struct {
	Events []map[string]any `yaml:"events"`
}

// Load reads a trace file.
func Load(path string) ([]Step, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open trace: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// Read parses a YAML (or JSON) trace document of the form
//
//	events:
//	  - {action: squeeze, hand: right, kind: PRESS, value: 1.0}
//	  - {mouse: {x: 10, y: 20}}
//	  - {session: false}
func Read(r io.Reader) ([]Step, error) {
	var doc rawTrace
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to parse trace: %w", err)
	}

	steps := make([]Step, 0, len(doc.Events))
	for i, m := range doc.Events {
		var raw rawStep
		dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:           &raw,
			WeaklyTypedInput: true,
			ErrorUnused:      true,
		})
		if err != nil {
			return nil, err
		}
		if err := dec.Decode(m); err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}

		step, err := raw.toStep()
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
		steps = append(steps, step)
	}
	return steps, nil
}

func (r rawStep) toStep() (Step, error) {
	switch {
	case r.Action != "":
		hand, err := domain.ParseHand(r.Hand)
		if err != nil {
			return Step{}, err
		}
		return Step{Action: &domain.ActionEvent{
			Action: r.Action,
			Hand:   hand,
			Kind:   domain.ParseEventKind(r.Kind),
			Value:  r.Value,
		}}, nil
	case r.Mouse != nil:
		return Step{Mouse: r.Mouse}, nil
	case r.Session != nil:
		return Step{Session: r.Session}, nil
	}
	return Step{}, fmt.Errorf("expected one of action, mouse or session")
}
