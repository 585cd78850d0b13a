// Package domain contains shared domain types used across the service.
// PIN action types live in the pin sub-package. This root package holds the
// sentinel errors and the field-level validation error that every layer
// (adapters, application, HTTP edge) agrees on.
package domain
