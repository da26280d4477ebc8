// Package courier provides the Courier aggregate: a rider registered to a hub,
// with a vehicle, a live position and an availability status.
//
// Key business rules:
//   - A courier is idle, busy or offline
//   - Offline couriers are never assigned and never moved by the simulator
//   - A courier becomes busy when an order is assigned to it and idle again when
//     one of its orders is delivered or cancelled
//   - Newly registered couriers start idle at their hub's fixed coordinate with a
//     5.0 rating
package courier
