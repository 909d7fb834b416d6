package errors

import "net/http"

// Kind classifies a rental error for callers that need to branch on it.
type Kind int

const (
	KindInvalidPeriod Kind = iota + 1
	KindUnavailable
	KindNotFound
	KindNotFoundOrExpired
)

// RentalError is an error with an associated domain kind.
type RentalError struct {
	Kind    Kind
	Message string
}

func (e *RentalError) Error() string {
	return e.Message
}

var (
	ErrInvalidPeriod     = &RentalError{KindInvalidPeriod, "reservation period must start within the last two hours and last more than one day"}
	ErrUnavailable       = &RentalError{KindUnavailable, "no rental car is available for the requested period"}
	ErrNotFound          = &RentalError{KindNotFound, "reservation not found"}
	ErrNotFoundOrExpired = &RentalError{KindNotFoundOrExpired, "reservation not found or already expired"}
)

// HTTPStatus maps a rental error to the status code the API layer responds
// with. Unknown errors map to 500.
func HTTPStatus(err error) int {
	re, ok := err.(*RentalError)
	if !ok {
		return http.StatusInternalServerError
	}
	switch re.Kind {
	case KindInvalidPeriod:
		return http.StatusBadRequest
	case KindUnavailable:
		return http.StatusConflict
	case KindNotFound, KindNotFoundOrExpired:
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
