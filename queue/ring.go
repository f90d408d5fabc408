// SPDX-License-Identifier: MIT
// File: ring.go
// Role: growable circular buffer shared by Queue and Deque.
// Invariant: elements live at buf[(head+i) % len(buf)] for 0 <= i < size.

package queue

import (
	"fmt"
	"strings"
)

const minRingCap = 8

type ring[T any] struct {
	buf  []T
	head int
	size int
}

func (r *ring[T]) grow() {
	if r.size < len(r.buf) {
		return
	}
	nc := len(r.buf) * 2
	if nc < minRingCap {
		nc = minRingCap
	}
	nb := make([]T, nc)
	for i := 0; i < r.size; i++ {
		nb[i] = r.buf[(r.head+i)%len(r.buf)]
	}
	r.buf = nb
	r.head = 0
}

func (r *ring[T]) pushBack(v T) {
	r.grow()
	r.buf[(r.head+r.size)%len(r.buf)] = v
	r.size++
}

func (r *ring[T]) pushFront(v T) {
	r.grow()
	r.head = (r.head - 1 + len(r.buf)) % len(r.buf)
	r.buf[r.head] = v
	r.size++
}

func (r *ring[T]) popFront() (T, error) {
	var zero T
	if r.size == 0 {
		return zero, ErrEmpty
	}
	v := r.buf[r.head]
	r.buf[r.head] = zero
	r.head = (r.head + 1) % len(r.buf)
	r.size--

	return v, nil
}

func (r *ring[T]) popBack() (T, error) {
	var zero T
	if r.size == 0 {
		return zero, ErrEmpty
	}
	idx := (r.head + r.size - 1) % len(r.buf)
	v := r.buf[idx]
	r.buf[idx] = zero
	r.size--

	return v, nil
}

func (r *ring[T]) front() (T, error) {
	if r.size == 0 {
		var zero T
		return zero, ErrEmpty
	}

	return r.buf[r.head], nil
}

func (r *ring[T]) back() (T, error) {
	if r.size == 0 {
		var zero T
		return zero, ErrEmpty
	}

	return r.buf[(r.head+r.size-1)%len(r.buf)], nil
}

// values copies the elements front to back.
func (r *ring[T]) values() []T {
	out := make([]T, r.size)
	for i := range out {
		out[i] = r.buf[(r.head+i)%len(r.buf)]
	}

	return out
}

func (r *ring[T]) clear() {
	r.buf = nil
	r.head = 0
	r.size = 0
}

func (r *ring[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < r.size; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, r.buf[(r.head+i)%len(r.buf)])
	}
	sb.WriteByte(']')

	return sb.String()
}
