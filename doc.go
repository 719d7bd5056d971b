/*
Package xrinput maps a fixed set of logical XR controller actions onto a host runtime's
action/binding model and routes per-frame input events to a single consumer.

It separates the declarative action table (package catalog) from the event state machine
(package dispatch). The host application owns the XR session and the event pump; xrinput
only registers actions once at session start and then decides, for every raw event, whether
an action is still in progress, complete, or deferred because the other hand still holds it.

# Usage

	package main

	import (
		"context"
		"log"

		"github.com/aretw0/xrinput"
		"github.com/aretw0/xrinput/pkg/domain"
		"github.com/aretw0/xrinput/pkg/ports"
	)

	func main() {
		ctx := context.Background()

		consumer := ports.ConsumerFunc(func(phase domain.Phase, data domain.EventData) {
			log.Println(phase, data.Action, data.Hand, data.Value)
		})

		// host implements ports.HostRuntime on top of the XR runtime.
		sess, err := xrinput.Start(ctx, host, consumer,
			xrinput.WithDisabledProfiles("simple"),
			xrinput.WithMouseMovement(true),
		)
		if err != nil {
			log.Fatal(err) // RegistrationError or ConfigError: abort session start
		}

		// Event pump
		for ev := range actionEvents {
			switch sess.HandleAction(ev) {
			case domain.DispositionFinished:
				// the action's gesture is over
			}
		}
	}
*/
package xrinput
