package input

import (
	"context"
	"errors"
	"sync"
)

// ErrClosed is returned by Pop once a queue closed without an error is drained.
var ErrClosed = errors.New("input: queue closed")

// Queue is an unbounded FIFO of commands for one producer and one consumer.
// Push never blocks; commands come out in the order they went in.
type Queue struct {
	mu     sync.Mutex
	items  []Command
	ready  chan struct{}
	closed bool
	err    error
}

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	return &Queue{ready: make(chan struct{}, 1)}
}

// Push appends c. Pushing to a closed queue drops the command.
func (q *Queue) Push(c Command) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.items = append(q.items, c)
	q.mu.Unlock()
	q.signal()
}

func (q *Queue) signal() {
	select {
	case q.ready <- struct{}{}:
	default:
	}
}

// TryPop removes the oldest command without blocking.
func (q *Queue) TryPop() (Command, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.popLocked()
}

func (q *Queue) popLocked() (Command, bool) {
	if len(q.items) == 0 {
		return Unrecognized, false
	}
	c := q.items[0]
	q.items[0] = Unrecognized
	q.items = q.items[1:]
	if len(q.items) == 0 {
		q.items = nil
	}
	return c, true
}

// Ready receives a value after a Push or Close. A receive does not guarantee
// a command; always follow it with TryPop.
func (q *Queue) Ready() <-chan struct{} {
	return q.ready
}

// Pop blocks until a command is available, the queue is closed and drained,
// or ctx is done. Once closed and drained it returns the close error.
func (q *Queue) Pop(ctx context.Context) (Command, error) {
	for {
		q.mu.Lock()
		c, ok := q.popLocked()
		closed, err := q.closed, q.err
		q.mu.Unlock()

		if ok {
			return c, nil
		}
		if closed {
			if err == nil {
				err = ErrClosed
			}
			return Unrecognized, err
		}
		select {
		case <-q.ready:
		case <-ctx.Done():
			return Unrecognized, ctx.Err()
		}
	}
}

// Len returns the number of queued commands.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Close marks the end of input. Queued commands can still be popped; err is
// reported once they are drained. Only the first Close counts.
func (q *Queue) Close(err error) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	q.err = err
	q.mu.Unlock()
	q.signal()
}

// Closed reports whether Close was called, and with which error.
func (q *Queue) Closed() (bool, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.closed, q.err
}
