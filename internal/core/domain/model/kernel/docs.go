// Package kernel holds the value objects shared by every aggregate of the
// dispatch simulator: geographic locations, the three operating hubs, the
// injectable random source and the identifier formats built on top of it.
//
// Location is immutable and validated on construction; the zero value fails
// Validate. Hub is a closed enumeration (ABUJA, KADUNA, KANO) that knows its
// locality code and its fixed coordinates.
package kernel
