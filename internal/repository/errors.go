// Package repository defines sentinel error values shared across the data
// access layer. Handlers compare against these to pick the right HTTP
// status without inspecting message text: a missing booking or profile maps
// to 404, an unresolvable worker blocks the enclosing create with 400, and a
// duplicate caller-supplied id maps to 409.
package repository

import "errors"

// ErrWorkerNotFound is returned when a worker id does not resolve to an
// owning admin. Creates referencing such a worker must be rejected rather
// than defaulted to a synthetic admin.
var ErrWorkerNotFound = errors.New("worker not found")

// ErrBookingNotFound is returned when no booking matches the requested id.
var ErrBookingNotFound = errors.New("booking not found")

// ErrProfileNotFound is returned when an admin has no pricing profile.
var ErrProfileNotFound = errors.New("pricing profile not found")

// ErrDuplicateBooking is returned when a caller-supplied booking id collides
// with an existing row.
var ErrDuplicateBooking = errors.New("booking id already exists")

// ErrDuplicateProfile is returned when a profile already exists for the
// admin; the settings table enforces one profile per admin id.
var ErrDuplicateProfile = errors.New("pricing profile already exists")
