package taskgraph

import "errors"

// ErrUnknownTask indicates a TaskID does not refer to a defined group.
var ErrUnknownTask = errors.New("taskgraph: unknown task id")
