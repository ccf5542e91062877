package todo

import "fmt"

// OutOfRangeError reports a 1-based index outside the current list.
type OutOfRangeError struct {
	Index int
	Len   int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("index out of range: have %d item(s), got %d", e.Len, e.Index)
}

// ValidationError reports invalid input, such as empty item text.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }
