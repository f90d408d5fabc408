// Package queue provides FIFO and double-ended containers over a growable
// ring buffer.
//
//   - Queue[T]: Enqueue at the rear, Dequeue/PeekFront at the front.
//   - Deque[T]: push, pop and peek at both ends.
//
// Every operation is O(1); pushes are amortized O(1) because the ring
// doubles when full. Removing from or peeking into an empty container
// returns ErrEmpty. Neither type is safe for concurrent use.
package queue
