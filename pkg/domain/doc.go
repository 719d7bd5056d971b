/*
Package domain contains the core value types for XR input tracking.

It defines the declarative action descriptions consumed at session start, the raw events
delivered by the host's event pump, and the normalized events handed to the consumer. This
package is kept pure and free of external dependencies like I/O or the host runtime API,
following Hexagonal Architecture principles.

# Key Entities

  - ActionSpec: One logical action (name, binding name, hands, value kind, pose role).
  - ActionEvent: A raw per-frame event reported by the runtime for one hand of an action.
  - EventData: The normalized payload delivered to the single event consumer.
  - Disposition: What the host loop should do after a dispatch step.
*/
package domain
