// Package services provides domain services that coordinate the order and
// courier aggregates.
//
// The package includes:
//   - AssignmentPolicy: binds a pending order to an available courier
//   - StatusTransitionPolicy: moves an order through its lifecycle and frees
//     the courier when the job ends
//   - PositionSimulator: computes the next courier positions for one tick
//
// The services are pure over the aggregates they receive; loading and saving
// is left to the application layer.
package services
