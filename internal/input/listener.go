package input

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/ThoseGrapefruits/pacman/internal/core"
)

// Listener reads keys from a terminal, classifies them and pushes the
// commands onto a queue. It never touches game state.
type Listener struct {
	keys   core.KeyReader
	queue  *Queue
	logger *log.Logger
}

// NewListener creates a listener. A nil logger discards output.
func NewListener(keys core.KeyReader, q *Queue, logger *log.Logger) *Listener {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Listener{keys: keys, queue: q, logger: logger}
}

// Queue returns the queue the listener feeds.
func (l *Listener) Queue() *Queue {
	return l.queue
}

// Run reads keys until Quit is pressed, the terminal is closed, a read fails
// or ctx is done. The queue is closed on the way out, carrying the read error
// when there was one. A closed terminal is a normal stop and returns nil.
func (l *Listener) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			l.queue.Close(err)
			return err
		}

		k, err := l.keys.ReadKey()
		if err != nil {
			if errors.Is(err, core.ErrClosed) {
				l.logger.Debug("terminal closed, listener stopping")
				l.queue.Close(nil)
				return nil
			}
			err = fmt.Errorf("input: read key: %w", err)
			l.logger.Error("listener stopped", "err", err)
			l.queue.Close(err)
			return err
		}

		cmd := Classify(k)
		l.logger.Debug("key", "key", k.String(), "command", cmd.String())
		l.queue.Push(cmd)

		if cmd == Quit {
			l.queue.Close(nil)
			return nil
		}
	}
}
