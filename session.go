package tandem

import (
	"context"
	"sync"
)

// sessionState is the explicit lifecycle flag guarding single-shot start.
type sessionState int

const (
	sessionCreated sessionState = iota
	sessionStarted
	sessionFinished
)

// Session binds one task's event processor to one background execution job.
// Created lazily (job allocated but not running), started explicitly exactly
// once, observed to completion via Join, closed idempotently by either the
// session manager's monitor or an explicit cancel.
type Session struct {
	contextID string
	taskID    string
	processor *EventProcessor
	job       func(ctx context.Context) error

	mu     sync.Mutex
	state  sessionState
	cancel context.CancelFunc
	err    error

	done chan struct{}
}

// NewSession creates a session in the Created state. The job is not started.
func NewSession(contextID, taskID string, processor *EventProcessor, job func(ctx context.Context) error) *Session {
	return &Session{
		contextID: contextID,
		taskID:    taskID,
		processor: processor,
		job:       job,
		done:      make(chan struct{}),
	}
}

func (s *Session) ContextID() string {
	return s.contextID
}

func (s *Session) TaskID() string {
	return s.taskID
}

// Processor returns the session's event processor.
func (s *Session) Processor() *EventProcessor {
	return s.processor
}

// Start launches the job in a background goroutine. Calling Start again, or
// after Close, is a no-op: the job runs at most once. The job's context is
// detached from ctx's cancellation so that a departing client does not abort
// the work; only Close cancels it.
func (s *Session) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != sessionCreated {
		return
	}
	jobCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	s.cancel = cancel
	s.state = sessionStarted
	go s.run(jobCtx)
}

func (s *Session) run(ctx context.Context) {
	defer close(s.done)
	err := s.job(ctx)
	s.mu.Lock()
	s.state = sessionFinished
	s.err = err
	s.mu.Unlock()
}

// Join waits for the job to finish and for the event stream to be fully
// closed, so that afterwards no events remain in flight. The job's own
// outcome never surfaces here; use Err for that. Join only fails when ctx is
// done first.
func (s *Session) Join(ctx context.Context) error {
	select {
	case <-s.done:
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case <-s.processor.Done():
	case <-ctx.Done():
		return ctx.Err()
	}
	return nil
}

// Err returns the job's result after it finished, nil before.
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Close cancels the job if it is still running, closes the event processor,
// and waits for the job to wind down. Idempotent; closing a never-started
// session just releases the processor. Cancellation is cooperative: a job
// that ignores its context keeps Close waiting until ctx is done.
func (s *Session) Close(ctx context.Context) error {
	s.mu.Lock()
	switch s.state {
	case sessionCreated:
		s.state = sessionFinished
		close(s.done)
	case sessionStarted:
		s.cancel()
	case sessionFinished:
	}
	s.mu.Unlock()

	s.processor.Close()

	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
