package reservation

import "github.com/ruzaikr/table-booking/internal/httperr"

// ===============================
// Rejection Signals
// ===============================

const (
	CodeInvalidRequest   = "invalid_request"
	CodeOutOfWindow      = "out_of_window"
	CodeClosedDay        = "closed_day"
	CodeDuplicateBooking = "duplicate_booking"
	CodeNoAvailability   = "no_availability"
	CodeStorageConflict  = "storage_conflict"
)

func ErrInvalidRequest() error   { return httperr.ErrBusiness(CodeInvalidRequest) }
func ErrOutOfWindow() error      { return httperr.ErrBusiness(CodeOutOfWindow) }
func ErrClosedDay() error        { return httperr.ErrBusiness(CodeClosedDay) }
func ErrDuplicateBooking() error { return httperr.ErrBusiness(CodeDuplicateBooking) }
func ErrNoAvailability() error   { return httperr.ErrBusiness(CodeNoAvailability) }

// ErrStorageConflict sinaliza uma transação abortada por um commit
// concorrente. É o único sinal que o chamador pode repetir com segurança.
func ErrStorageConflict() error { return httperr.ErrBusiness(CodeStorageConflict) }
