/*
Package observability exposes Prometheus metrics for action registration and dispatch.

Metrics are fed through domain.LifecycleHooks, so neither the catalog nor the dispatcher
depend on Prometheus directly:

	m := observability.NewMetrics(prometheus.NewRegistry())
	d, err := dispatch.New(cat, thresholds, consumer, dispatch.WithHooks(m.Hooks()))
*/
package observability
