package buffers

import "fmt"

// AllocationError reports that storage for a buffer could not be allocated.
type AllocationError struct {
	Size  int
	Cause any
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("failed to allocate memory (%v bytes): %v", e.Size, e.Cause)
}

// CapacityExceededError reports that growing a buffer would need more than its
// maximum capacity.
type CapacityExceededError struct {
	Max int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("buffer max capacity of '%v' reached", e.Max)
}
