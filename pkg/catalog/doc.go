/*
Package catalog holds the fixed table of logical XR actions and turns it into runtime
registrations.

The catalog is process-wide, read-only configuration: it is built once (Default) and never
mutated. At session start Materialize walks it and asks the host runtime to create the
reserved action set, one action per ActionSpec, one binding per hand and enabled
interaction profile, the grip/aim pose sources, and finally activates the set.

	cat := catalog.Default()
	if err := catalog.DefaultThresholds().Check(cat); err != nil {
		return err // *domain.ConfigError
	}
	res, err := catalog.Materialize(ctx, host, cat,
		catalog.WithDisabledProfiles("simple"),
	)
	if err != nil {
		return err // *domain.RegistrationError, fatal to session start
	}
	_ = res.Created
*/
package catalog
