package Go_Containers

import "fmt"

// KeyNotFoundError is returned by keyed lookups when the key isn't stored in the container.
type KeyNotFoundError struct {
	Key any
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("key %v not found", e.Key)
}

// OutOfRangeError is returned by index checked accesses when Pos isn't a valid index for a
// container holding Size elements.
type OutOfRangeError struct {
	Pos, Size int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range [0,%d)", e.Pos, e.Size)
}

// LengthError is returned when a capacity request can't be honored. Want is the requested
// capacity and Cap the capacity at the time of the request.
type LengthError struct {
	Want, Cap int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("requested capacity %d is not greater than current capacity %d", e.Want, e.Cap)
}

// EmptyContainerError is returned by Op when it needs at least one element.
type EmptyContainerError struct {
	Op string
}

func (e *EmptyContainerError) Error() string {
	return "container is empty: cannot " + e.Op + "."
}
