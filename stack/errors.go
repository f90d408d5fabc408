// SPDX-License-Identifier: MIT

package stack

import "errors"

var (
	// ErrEmpty is returned by Pop and Peek on an empty stack.
	ErrEmpty = errors.New("stack: empty stack")

	// ErrFull is returned by Bounded.Push when the capacity is exhausted.
	ErrFull = errors.New("stack: stack is full")

	// ErrBadCapacity is returned by NewBounded for a capacity < 1.
	ErrBadCapacity = errors.New("stack: capacity must be > 0")
)
