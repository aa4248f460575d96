package exac

import "fmt"

// LookupError is returned when every attempt to fetch a variant failed.
type LookupError struct {
	Key      string // CHROM-POS-REF-ALT
	Attempts int
	Err      error // last attempt's error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("after trying %d times, failed to fetch annotation for %s: %v", e.Attempts, e.Key, e.Err)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

// StatusError is an attempt failure caused by a non-2xx response.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("lookup service error %d: %s", e.StatusCode, e.Body)
}
