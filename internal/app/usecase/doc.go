// Package usecase implements one type per application operation. Each use-case
// orchestrates repository ports and domain entities, logs intent, success and
// failure, and returns domain errors unchanged so that inbound adapters can
// classify them with errors.Is.
package usecase
