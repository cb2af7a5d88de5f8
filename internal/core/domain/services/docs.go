// Package services provides domain services that coordinate the order model
// beyond a single aggregate.
//
// The package includes:
//   - OrderStatusMachine: applies preparation and payment transitions to an order
//   - OrderRegistry: the in-memory set of committed orders, keyed by identity
//   - DraftTicket: the single active builder shared by all callers
//
// The registry and the draft ticket are safe for concurrent use. Every change
// to a registered order runs as one critical section: clone, transition,
// persist, swap. A failure at any step leaves the registry as it was.
package services
