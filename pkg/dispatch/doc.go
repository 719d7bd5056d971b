/*
Package dispatch routes raw XR action events and mouse moves to the single event consumer.

A Dispatcher runs synchronously on the host's event pump, one event at a time. For every raw
event it emits at most one normalized event and returns a domain.Disposition telling the host
loop whether the action is still running, finished, or should be ignored.

# Bimanual release deferral

Two-handed actions (trigger, squeeze) report presses and releases per hand, in any order.
On a release the dispatcher looks at the last value recorded for the other hand: if it is
still above the binding's activation threshold, no "complete" event is emitted and the
action keeps running until the other hand releases too. This yields exactly one
"complete" per bimanual gesture, on the last hand to let go.

The rule reads the other hand's last reported value, not an explicit per-hand pressed
flag, so a lost release event on the other hand keeps the gesture open.
*/
package dispatch
