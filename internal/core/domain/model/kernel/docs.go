// Package kernel contains shared value objects used across the domain model.
// These types are immutable, validated at construction, and carry no
// infrastructure concerns.
package kernel
