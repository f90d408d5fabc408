// Package stack provides LIFO containers.
//
//   - Stack[T] grows without bound. Push appends to the tail of a slice and
//     Pop/Peek read the tail, so every operation is O(1) (Push amortized).
//   - Bounded[T] has a capacity fixed at construction, like a stack laid out
//     in a static array; Push on a full stack returns ErrFull.
//
// Pop and Peek on an empty stack return ErrEmpty. Match sentinels with
// errors.Is. No operation panics on user input.
package stack
