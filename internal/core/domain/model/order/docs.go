// Package order contains the Order aggregate and its Status state machine,
// the core of the order lifecycle engine.
//
// Orders are created in Pending status and move through exactly one legal
// transition: Pending to a different status (Paid or Cancelled). Both of
// those states are terminal. The transition rule is role-agnostic; role
// gating belongs to the authorization layer that runs before the engine.
package order
