// Package order provides the domain model of the water-delivery order
// workflow. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: the aggregate root holding identity, snapshot customer data,
//     quantity/litres, and the assigned agent
//   - OrderNumber: the generated "WO-<year>-<sequence>" display identity
//   - Status: a state machine enforcing valid lifecycle transitions
//
// Key business rules:
//   - A valid order has non-empty snapshot customer name, phone, and
//     delivery address, and a quantity of at least one bag
//   - Total litres is always quantity * 20
//   - Status follows pending -> assigned -> in_transit -> delivered, with
//     cancellation possible from any non-terminal status
//   - Reassignment while assigned is allowed and overwrites the agent
//   - The delivered timestamp is recorded explicitly by the caller, not
//     implied by the status change
package order
