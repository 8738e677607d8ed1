package domain

import "errors"

// Error kinds. Every specific error below unwraps to exactly one of them.
var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrValidation = errors.New("validation error")
)

var (
	ErrCourtNotFound       = newError(ErrNotFound, "tennis court not found")
	ErrScheduleNotFound    = newError(ErrNotFound, "schedule not found")
	ErrGuestNotFound       = newError(ErrNotFound, "guest not found")
	ErrReservationNotFound = newError(ErrNotFound, "reservation not found")
)

var (
	ErrSlotAlreadyScheduled = newError(ErrConflict, "slot is already scheduled for given interval")
	ErrSlotAlreadyBooked    = newError(ErrConflict, "slot already has an active reservation")
	ErrGuestNameTaken       = newError(ErrConflict, "guest name is already taken")
	ErrGuestHasReservations = newError(ErrConflict, "guest is referenced by reservations")
)

var (
	ErrStartMissing        = newError(ErrValidation, "start date and time is missing")
	ErrPastSchedule        = newError(ErrValidation, "cannot add schedule for past dates")
	ErrSlotNotInFuture     = newError(ErrValidation, "can book, cancel or reschedule only future dates")
	ErrReservationNotReady = newError(ErrValidation, "cannot cancel/reschedule because it is not in ready-to-play status")
	ErrSameSlot            = newError(ErrValidation, "cannot reschedule to the same slot")
)

type kindError struct {
	kind error
	msg  string
}

func newError(kind error, msg string) error {
	return &kindError{kind: kind, msg: msg}
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.kind }
