package domain

// Disposition tells the host loop what to do after a dispatch step.
type Disposition string

const (
	// DispositionRunning keeps the action handler alive: more events are expected.
	DispositionRunning Disposition = "running"
	// DispositionFinished ends the current occurrence of the action.
	DispositionFinished Disposition = "finished"
	// DispositionPassThrough hands the event to downstream handlers unmodified.
	DispositionPassThrough Disposition = "pass_through"
	// DispositionCancelled stops the mouse passthrough stream for good.
	DispositionCancelled Disposition = "cancelled"
	// DispositionIgnored marks events for actions this system did not register.
	DispositionIgnored Disposition = "ignored"
)

// DispatchPhase summarizes the hold state of a bimanual action.
type DispatchPhase string

const (
	PhaseIdle            DispatchPhase = "idle"
	PhaseActiveOneHand   DispatchPhase = "active_one_hand"
	PhaseActiveBothHands DispatchPhase = "active_both_hands"
)
