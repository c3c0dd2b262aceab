// Package domain contains shared domain types used across entity sub-packages.
// Entities live in sub-packages (domain/project, domain/skill, domain/contact)
// and value objects in domain/valueobject. This root package holds sentinel
// errors, validation types, slug derivation, and the timestamp helpers that
// every entity shares.
package domain
