// Package valueobject holds immutable, self-validating wrappers around
// primitive values. Two value objects are equal when their values are equal.
package valueobject
