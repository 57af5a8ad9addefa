package weather

import "errors"

var (
	ErrLocationNotFound  = errors.New("Could not find location")
	ErrNetwork           = errors.New("failed to fetch weather")
	ErrMalformedResponse = errors.New("failed to parse weather data")
)

const fallbackSeparator = " | Fallback also failed: "

// BothProvidersFailedError keeps the primary and fallback causes.
type BothProvidersFailedError struct {
	Primary  error
	Fallback error
}

func (e *BothProvidersFailedError) Error() string {
	return e.Primary.Error() + fallbackSeparator + e.Fallback.Error()
}

func (e *BothProvidersFailedError) Unwrap() []error {
	return []error{e.Primary, e.Fallback}
}
