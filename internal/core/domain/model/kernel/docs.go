// Package kernel provides core domain primitives shared by the restaurant model.
//
// The package includes:
//   - Money: an exact, non-negative decimal amount used for prices and totals
//
// Primitives are immutable value objects created through constructors; their
// zero values fail validation.
package kernel
