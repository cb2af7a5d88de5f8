// Package booking models dine-in table reservations.
//
// A TableBooking records who booked which table for how many guests and when
// the booking was taken. Capacity is informational only; nothing checks it
// against the table or against other bookings.
package booking
