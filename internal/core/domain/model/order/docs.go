// Package order provides the ticket model of the restaurant: line items, the
// builder that accumulates them for a table, and the committed Order aggregate
// with its two independent status axes.
//
// The package includes:
//   - LineItem: menu identity, captured name, quantity and unit price at order time
//   - Builder: the in-progress ticket; merges duplicate menu items and derives its total
//   - Order: the committed ticket with a frozen item list and a stored total snapshot
//   - PreparationStatus: placed -> preparing -> served, any -> cancelled (terminal)
//   - PaymentStatus: unpaid -> paid -> refunded (terminal), unpaid -> refunded rejected
//
// Key business rules:
//   - A builder holds at most one line per menu item identity
//   - Quantities are at least 1; table numbers are positive
//   - A builder is cleared only by a successful commit or an explicit cancel
//   - An order's total is a snapshot taken at commit and never recomputed
//   - The two status axes are not coupled: a cancelled order may still be paid or refunded
package order
