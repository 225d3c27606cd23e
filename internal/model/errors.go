package model

import "fmt"

// JobNotFoundError is returned when an operation names a job ID that is not in
// the catalog.
type JobNotFoundError struct {
	ID int
}

func (e *JobNotFoundError) Error() string {
	return fmt.Sprintf("job %d not found", e.ID)
}
