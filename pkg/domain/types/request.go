package types

import "github.com/google/uuid"

type RequestID string

func NewRequestID() RequestID {
	return RequestID(uuid.NewString())
}

// RunID identifies one evaluation run. Every record written during the run carries it.
type RunID string

func NewRunID() RunID {
	return RunID(uuid.NewString())
}
