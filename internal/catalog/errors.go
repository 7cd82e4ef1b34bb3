package catalog

import (
	"errors"
	"fmt"
)

// ErrLoad matches any *LoadError via errors.Is.
var ErrLoad = errors.New("catalog load failed")

// LoadError reports that the catalog could not be fetched or parsed.
// The application cannot proceed without a catalog, so callers treat it as fatal.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load catalog %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrLoad.
func (e *LoadError) Is(target error) bool {
	return target == ErrLoad
}

// IsLoadError returns true if err is (or wraps) a *LoadError.
func IsLoadError(err error) bool {
	var le *LoadError
	return errors.As(err, &le)
}
