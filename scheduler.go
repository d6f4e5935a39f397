package spheregrid

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrLoopRunning is returned when Start is called on a loop that was already
// started.
var ErrLoopRunning = errors.New("spheregrid: loop already running")

const defaultEventBuffer = 64

// EventSource delivers host input events. Subscribe registers fn once and
// returns a function that deregisters it.
type EventSource interface {
	Subscribe(fn func(InputEvent)) (cancel func())
}

// Loop drives an Engine from a ticker on one goroutine. Ticks and input
// events are serialized through that goroutine, so the engine sees a single
// thread of control. Once started, the engine must only be reached through
// Post or the frame handler.
type Loop struct {
	engine   *Engine
	interval time.Duration
	ticks    <-chan time.Time
	source   EventSource
	onFrame  func(Frame)

	events chan InputEvent
	quit   chan struct{}
	done   chan struct{}

	mu      sync.Mutex
	started bool
	stopped bool
	cancel  context.CancelFunc
}

// LoopOption configures a Loop.
type LoopOption func(*Loop)

// WithTickChannel replaces the internal ticker with ch. The loop never closes
// or drains ch after it stops.
func WithTickChannel(ch <-chan time.Time) LoopOption {
	return func(l *Loop) { l.ticks = ch }
}

// WithEventSource subscribes to src for the lifetime of the loop.
func WithEventSource(src EventSource) LoopOption {
	return func(l *Loop) { l.source = src }
}

// WithFrameHandler receives a fresh Frame after every tick, on the loop
// goroutine.
func WithFrameHandler(fn func(Frame)) LoopOption {
	return func(l *Loop) { l.onFrame = fn }
}

// NewLoop creates a stopped loop ticking every interval.
func NewLoop(e *Engine, interval time.Duration, opts ...LoopOption) *Loop {
	l := &Loop{
		engine:   e,
		interval: interval,
		events:   make(chan InputEvent, defaultEventBuffer),
		quit:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Start mounts the engine, subscribes to the event source and begins
// ticking. A loop runs at most once.
func (l *Loop) Start(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.stopped {
		return ErrDisposed
	}
	if l.started {
		return ErrLoopRunning
	}
	if err := l.engine.Mount(); err != nil {
		return err
	}
	l.started = true

	ctx, l.cancel = context.WithCancel(ctx)

	ticks := l.ticks
	var ticker *time.Ticker
	if ticks == nil {
		ticker = time.NewTicker(l.interval)
		ticks = ticker.C
	}

	var unsubscribe func()
	if l.source != nil {
		unsubscribe = l.source.Subscribe(func(ev InputEvent) { l.Post(ev) })
	}

	go l.run(ctx, ticks, ticker, unsubscribe)
	return nil
}

// Post hands an event to the loop goroutine. It never blocks: events are
// dropped when the buffer is full or the loop has stopped.
func (l *Loop) Post(ev InputEvent) bool {
	select {
	case <-l.quit:
		return false
	default:
	}
	select {
	case l.events <- ev:
		return true
	default:
		Logger().Warn("spheregrid: input buffer full, event dropped", "type", ev.Type.String())
		return false
	}
}

// Stop cancels the loop and waits for its goroutine to exit. After Stop
// returns no further frame is delivered and the engine is disposed. Stop is
// idempotent and safe to call on a loop that never started.
func (l *Loop) Stop() {
	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		<-l.done
		return
	}
	l.stopped = true
	close(l.quit)
	started, cancel := l.started, l.cancel
	l.mu.Unlock()

	if !started {
		l.engine.Dispose()
		close(l.done)
		return
	}
	cancel()
	<-l.done
}

// Done is closed once the loop goroutine has exited.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

func (l *Loop) run(ctx context.Context, ticks <-chan time.Time, ticker *time.Ticker, unsubscribe func()) {
	defer close(l.done)
	defer l.engine.Dispose()
	if ticker != nil {
		defer ticker.Stop()
	}
	if unsubscribe != nil {
		defer unsubscribe()
	}

	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-l.events:
			l.engine.HandleEvent(ev)
		case <-ticks:
			if ctx.Err() != nil {
				return
			}
			l.engine.Tick()
			if l.onFrame != nil {
				l.onFrame(l.engine.Frame())
			}
		}
	}
}
