// Package queries contains read operations.
//
// Orders and the draft ticket are answered from the in-memory registry and
// draft, which are the source of truth once the service is running. Menu
// items and bookings are read straight from the database with raw SQL.
package queries
