package weather

import "errors"

var (
	// ErrFetch is the umbrella for every weather failure. All errors returned
	// by a Client match it with errors.Is.
	ErrFetch = errors.New("weather fetch failed")

	// ErrUnavailable indicates the weather API is unreachable.
	ErrUnavailable = fetchError("weather api unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = fetchError("weather request timed out")

	// ErrStatus indicates a non-200 response.
	ErrStatus = fetchError("weather api returned an error status")

	// ErrMalformedResponse indicates the body is not JSON of the expected shape.
	ErrMalformedResponse = fetchError("malformed weather response")
)

type kindError struct {
	msg string
}

func fetchError(msg string) error { return &kindError{msg: msg} }

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Is(target error) bool { return target == ErrFetch }

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrStatus):
		return "STATUS"
	case errors.Is(err, ErrMalformedResponse):
		return "MALFORMED"
	default:
		return "UNKNOWN"
	}
}
