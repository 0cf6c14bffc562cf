package style

import "fmt"

// InvalidOptionValueError reports a request entry whose family.value pair has
// no registered fragment.
type InvalidOptionValueError struct {
	Key   string
	Value any
}

func (e *InvalidOptionValueError) Error() string {
	return fmt.Sprintf("style: %q: %v is an invalid option value", e.Key, e.Value)
}

// InvalidSquareIndexError reports a square-layout meta key whose value is
// neither 0 nor 1.
type InvalidSquareIndexError struct {
	Value any
}

func (e *InvalidSquareIndexError) Error() string {
	return fmt.Sprintf("style: %s must be 0 or 1, got %v", KeySquare, e.Value)
}
