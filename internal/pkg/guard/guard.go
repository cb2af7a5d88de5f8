// Package guard marks values that were created through their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in value objects, entities, commands and queries
// so that a zero value can be told apart from one built by its constructor.
//
// Example:
//
//	var ErrTicketIsNotConstructed = errors.New("Ticket must be created via NewTicket")
//
//	type Ticket struct {
//	    table int
//	    guard guard.ConstructorGuard
//	}
//
//	func (t Ticket) Validate() error {
//	    return t.guard.Validate(ErrTicketIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that reports the owner as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the owner was not created through its constructor.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
