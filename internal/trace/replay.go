package trace

import "github.com/aretw0/xrinput/pkg/domain"

// Handler is what a trace is replayed into.
type Handler interface {
	HandleAction(ev domain.ActionEvent) domain.Disposition
	HandleMouseMove(ev domain.MouseEvent) domain.Disposition
}

// Outcome pairs a replayed step with the disposition it produced.
// Session steps have an empty disposition.
type Outcome struct {
	Step        Step
	Disposition domain.Disposition
}

// Replay feeds steps to h in order. setSession is called for session steps and may be nil.
func Replay(steps []Step, h Handler, setSession func(running bool)) []Outcome {
	out := make([]Outcome, 0, len(steps))
	for _, s := range steps {
		o := Outcome{Step: s}
		switch {
		case s.Action != nil:
			o.Disposition = h.HandleAction(*s.Action)
		case s.Mouse != nil:
			o.Disposition = h.HandleMouseMove(*s.Mouse)
		case s.Session != nil:
			if setSession != nil {
				setSession(*s.Session)
			}
		}
		out = append(out, o)
	}
	return out
}
