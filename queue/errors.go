// SPDX-License-Identifier: MIT

package queue

import "errors"

// ErrEmpty is returned when removing from or peeking into an empty container.
var ErrEmpty = errors.New("queue: empty queue")
