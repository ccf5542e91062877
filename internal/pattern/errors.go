package pattern

import "fmt"

// NotFoundError reports a shortcut that is not in the store.
type NotFoundError struct {
	Shortcut string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("pattern '%s' not found", e.Shortcut)
}

// ValidationError reports invalid input, such as an empty shortcut.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }
