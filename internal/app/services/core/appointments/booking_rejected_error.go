package appointments

import (
	"strings"

	"clinica-service/internal/pkg/dto/responses"
)

// BookingRejectedError carries every temporal rule the proposal violated so
// the transport layer can echo the selection back with the full list.
type BookingRejectedError struct {
	Rejection *responses.BookingRejected
}

func (e *BookingRejectedError) Error() string {
	return "booking rejected: " + strings.Join(e.Rejection.Violations, ", ")
}
