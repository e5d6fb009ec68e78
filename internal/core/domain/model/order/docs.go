// Package order contains the Order aggregate and its status state machine.
// The aggregate owns every invariant that does not depend on configuration:
// positive quantity, bounded product name, non-negative two-decimal unit
// price, a derived total that always equals quantity times unit price, and
// the legal status transitions.
package order
