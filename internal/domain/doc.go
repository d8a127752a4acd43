// Package domain defines the core data model and the contracts shared across
// safe. It contains plain types and interfaces only.
package domain
