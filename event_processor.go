package tandem

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/tandem-a2a/tandem/a2a"
)

// ErrEventProcessorClosed is returned when sending to a closed event processor
var ErrEventProcessorClosed = errors.New("event processor is closed")

// subscriberBuffer is the per-subscriber channel capacity. Delivery blocks
// when the buffer is full, preserving emission order per subscriber.
const subscriberBuffer = 8

// EventProcessor is the per-task event bus: an append-only, multi-subscriber
// stream with strict emission order. Task-related events sent through
// SendTaskEvent are also merged into task storage so GetTask reflects the
// latest state even without an active subscriber. Close ends the stream for
// all current and future subscribers; sends after Close deliver to no one.
type EventProcessor struct {
	contextID string
	taskID    string
	store     TaskStore
	logger    *slog.Logger

	mu                    sync.Mutex
	subscribers           map[int]*subscriber
	nextSubscriberID      int
	closed                bool
	sawFirstEvent         bool
	firstEventTaskRelated bool

	done chan struct{}
}

type subscriber struct {
	ch   chan a2a.Event
	gone chan struct{}
	once sync.Once
}

func (s *subscriber) leave() {
	s.once.Do(func() {
		close(s.gone)
	})
}

// NewEventProcessor creates an event processor bound to one context and task.
func NewEventProcessor(contextID, taskID string, store TaskStore, logger *slog.Logger) *EventProcessor {
	if logger == nil {
		logger = slog.Default()
	}
	return &EventProcessor{
		contextID:   contextID,
		taskID:      taskID,
		store:       store,
		logger:      logger,
		subscribers: make(map[int]*subscriber),
		done:        make(chan struct{}),
	}
}

func (p *EventProcessor) ContextID() string {
	return p.contextID
}

func (p *EventProcessor) TaskID() string {
	return p.taskID
}

// Subscribe attaches a new subscriber and returns its event channel. The
// channel is closed when the processor closes or ctx is done. Subscribers see
// only events published after attachment; there is no historical replay.
// Subscribing to a closed processor returns an already-closed channel.
func (p *EventProcessor) Subscribe(ctx context.Context) <-chan a2a.Event {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		ch := make(chan a2a.Event)
		close(ch)
		return ch
	}
	sub := &subscriber{
		ch:   make(chan a2a.Event, subscriberBuffer),
		gone: make(chan struct{}),
	}
	id := p.nextSubscriberID
	p.nextSubscriberID++
	p.subscribers[id] = sub
	p.mu.Unlock()

	go func() {
		select {
		case <-ctx.Done():
			// Signal departure first so a publisher blocked on this
			// subscriber's channel can move on, then detach under the lock.
			sub.leave()
			p.mu.Lock()
			if _, ok := p.subscribers[id]; ok {
				delete(p.subscribers, id)
				close(sub.ch)
			}
			p.mu.Unlock()
		case <-p.done:
		}
	}()

	return sub.ch
}

// SendMessage publishes a conversational message to all subscribers without
// touching task storage.
func (p *EventProcessor) SendMessage(ctx context.Context, msg a2a.Message) error {
	return p.publish(ctx, a2a.NewMessageEvent(&msg))
}

// SendTaskEvent merges a task-related event into task storage and publishes
// it to all subscribers, in that order.
func (p *EventProcessor) SendTaskEvent(ctx context.Context, event a2a.Event) error {
	if !event.IsTaskEvent() {
		return fmt.Errorf("event kind %q is not task-related", event.EventKind())
	}
	if p.Closed() {
		return ErrEventProcessorClosed
	}
	if _, err := p.store.UpdateTask(ctx, event); err != nil {
		return fmt.Errorf("failed to update task %s: %w", p.taskID, err)
	}
	return p.publish(ctx, event)
}

func (p *EventProcessor) publish(ctx context.Context, event a2a.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrEventProcessorClosed
	}
	if !p.sawFirstEvent {
		p.sawFirstEvent = true
		p.firstEventTaskRelated = event.IsTaskEvent()
	}
	for _, sub := range p.subscribers {
		select {
		case sub.ch <- event:
		case <-sub.gone:
			// Subscriber left mid-publish; it is removed from the map by
			// its own watcher goroutine.
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

// FirstEventTaskRelated reports whether the first event ever published was
// task-related. Used after completion to decide whether to push-notify.
func (p *EventProcessor) FirstEventTaskRelated() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.sawFirstEvent && p.firstEventTaskRelated
}

// Closed reports whether the processor has been closed.
func (p *EventProcessor) Closed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closed
}

// Done returns a channel closed when the processor closes.
func (p *EventProcessor) Done() <-chan struct{} {
	return p.done
}

// Close ends the stream for all subscribers. Idempotent; it is a clean
// end-of-stream, not an error.
func (p *EventProcessor) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	for id, sub := range p.subscribers {
		sub.leave()
		close(sub.ch)
		delete(p.subscribers, id)
	}
	close(p.done)
}
