package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/agrocampo/farm-system/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
)

// Dispatcher routes best-effort record touches (last-login stamps) to a fixed
// set of workers using consistent hashing on the user ID, guaranteeing
// per-user write ordering. A failed touch is logged and dropped; the login
// that queued it has already completed.
type Dispatcher struct {
	workers  []chan ports.LoginTouch
	recorder ports.LoginRecorder
	log      zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, recorder ports.LoginRecorder, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers:  make([]chan ports.LoginTouch, numWorkers),
		recorder: recorder,
		log:      log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.LoginTouch, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends a touch to the worker responsible for its user.
// Non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(t ports.LoginTouch) {
	d.workers[d.shardIndex(t.UserID)] <- t
}

// shardIndex maps a user ID deterministically to a worker index.
func (d *Dispatcher) shardIndex(userID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(userID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.LoginTouch) {
	for {
		select {
		case <-ctx.Done():
			return
		case t, ok := <-ch:
			if !ok {
				return
			}
			if err := d.recorder.Record(ctx, t); err != nil {
				d.log.Warn().Err(err).
					Str("user_id", t.UserID).
					Int("worker_id", id).
					Msg("last-login touch failed")
			}
		}
	}
}
