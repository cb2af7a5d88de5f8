// Package menu provides the menu catalog entry used by the restaurant domain.
//
// An Item is an immutable snapshot: identity (assigned by persistence), display
// name and unit price. Orders copy name and price out of an Item when a line is
// added, so later catalog edits never reach placed orders.
package menu
