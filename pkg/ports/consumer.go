package ports

import "github.com/aretw0/xrinput/pkg/domain"

// Consumer receives every forwarded (non-deferred) normalized event.
// Delivery is synchronous and at-most-once per raw input.
type Consumer interface {
	OnEvent(phase domain.Phase, data domain.EventData)
}

// ConsumerFunc adapts a plain function to the Consumer interface.
type ConsumerFunc func(phase domain.Phase, data domain.EventData)

// OnEvent calls f(phase, data).
func (f ConsumerFunc) OnEvent(phase domain.Phase, data domain.EventData) {
	f(phase, data)
}

// Tee returns a Consumer that hands every event to each of consumers, in order.
// The dispatcher still sees a single consumer.
func Tee(consumers ...Consumer) Consumer {
	return ConsumerFunc(func(phase domain.Phase, data domain.EventData) {
		for _, c := range consumers {
			if c != nil {
				c.OnEvent(phase, data)
			}
		}
	})
}
