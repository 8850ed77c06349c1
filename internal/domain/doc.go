// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/user, domain/task).
// This root package holds sentinel errors and the typed errors that wrap them,
// so that every layer can classify failures with errors.Is and inspect their
// details with errors.As.
package domain
