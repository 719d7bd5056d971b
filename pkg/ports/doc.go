/*
Package ports defines the driven ports (interfaces) between the input tracker and its host.

These interfaces decouple the catalog and dispatcher from a concrete XR runtime, allowing
the same logic to run against a real session, the in-memory recorder used by tests and the
CLI, or any other adapter.

# Key Interfaces

  - HostRuntime: The XR runtime's action-set registration API plus the session probe.
  - ActionSetInspector: Optional capability that lets materialization skip an existing set.
  - Consumer: The single process-wide receiver of normalized events.
*/
package ports
