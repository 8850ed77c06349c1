// Package ports defines interfaces between layers in the hexagonal architecture.
// Service ports are implemented by the application layer and called by inbound
// adapters (HTTP handlers, the CLI, the API client). Repository ports are
// implemented by persistence adapters and called by the use-cases.
package ports
