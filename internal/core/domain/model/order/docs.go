// Package order provides the Order aggregate of the dispatch simulator.
//
// An order is booked Pending, bound to a courier by assignment, and walked
// forward by explicit status updates:
//
//	Pending ──> Assigned ──> Arrived at Pickup ──> In Transit ──> Arrived at Delivery ──> Delivered
//	   │            │               │                  │                   │
//	   └────────────┴───────────────┴──────────────────┴───────────────────┴──> Cancelled
//
// Key business rules:
//   - The courier id is set if and only if the status is Assigned or later
//     (Assigned, Arrived at Pickup, In Transit, Arrived at Delivery, Delivered)
//   - Delivered and Cancelled are final; cancelling releases the courier binding
//   - Writing the current status again is accepted as an idempotent update
//   - Orders are never deleted
package order
