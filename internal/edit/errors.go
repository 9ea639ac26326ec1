package edit

import "fmt"

type NotFoundError struct {
	Kind string
	ID   string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

type BadIndexError struct {
	Kind  string
	Index int
	Len   int
}

func (e BadIndexError) Error() string {
	return fmt.Sprintf("%s index %d out of range (len %d)", e.Kind, e.Index, e.Len)
}
