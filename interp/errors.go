package interp

import (
	"errors"
	"fmt"
)

// Protocol violations. They indicate a broken hook ordering in the host,
// never bad data, and are always delivered wrapped in a *ProtocolError.
var (
	ErrUnmatchedAfter    = errors.New("after called with no outstanding before")
	ErrOverlappingBefore = errors.New("before called while a blend is outstanding")
	ErrTickDuringBlend   = errors.New("tick called while a blend is outstanding")
	ErrBindDuringBlend   = errors.New("bind called while a blend is outstanding")
)

// ProtocolError describes a hook call made in the wrong state.
type ProtocolError struct {
	Op    string
	State State
	Tick  uint64
	Err   error
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("interp: %s in state %s at tick %d: %v", e.Op, e.State, e.Tick, e.Err)
}

func (e *ProtocolError) Unwrap() error {
	return e.Err
}
