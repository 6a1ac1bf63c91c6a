// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import (
	"github.com/pkg/errors"
)

// Construction errors. None of them should ever happen in a correctly wired
// circuit. Use errors.Cause (or errors.Is) to test for a specific one.
//
var (
	// ErrFanoutOverflow is returned by Connect when the fan-out list is longer
	// than MaxFanout.
	ErrFanoutOverflow = errors.New("fan-out overflow")
	// ErrInvalidVariant is raised when a gate payload is accessed through the
	// wrong gate kind.
	ErrInvalidVariant = errors.New("invalid variant access")
	// ErrOutOfMemory is raised when a circuit cannot allocate a new wire.
	ErrOutOfMemory = errors.New("out of memory")
)

func isConstructionError(err error) bool {
	switch errors.Cause(err) {
	case ErrFanoutOverflow, ErrInvalidVariant, ErrOutOfMemory:
		return true
	}
	return false
}

// Build calls fn and recovers from construction panics (ErrOutOfMemory,
// ErrFanoutOverflow or ErrInvalidVariant) raised by gate constructors and
// accessors, returning them as an error. Other panics are propagated.
//
// This lets an embedding program decide how to handle a failed
// construction instead of crashing:
//
//	var cnt *logicsim.Gate
//	err := c.Build(func(c *logicsim.Circuit) {
//		cnt = c.Counter("cnt")
//	})
//
func (c *Circuit) Build(fn func(c *Circuit)) (err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok || !isConstructionError(e) {
				panic(r)
			}
			err = e
		}
	}()
	fn(c)
	return nil
}
