package tandem

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// ErrSessionAlreadyRegistered is returned when registering a session for a
// task that already has one. This is a caller error, not a transient
// condition; the caller must not retry.
var ErrSessionAlreadyRegistered = errors.New("session already registered for task")

// SessionManager owns the registry of active sessions keyed by task id and
// the per-task lock table that serializes finalization of a task between the
// automatic completion monitor and an explicit cancel. The registry invariant
// is that a task id is present iff a session for it is currently running.
type SessionManager struct {
	tasks    TaskStore
	configs  PushConfigStore
	notifier PushNotifier
	logger   *slog.Logger

	mu       sync.RWMutex
	sessions map[string]*Session

	lockMu sync.Mutex
	locks  map[string]*taskLock

	monitorWg sync.WaitGroup
}

// taskLock is one entry of the per-task lock table. refs counts holders plus
// waiters so the entry can be removed once unlocked and unreferenced.
type taskLock struct {
	mu     sync.Mutex
	refs   int
	locked bool
}

// NewSessionManager creates a session manager. configs and notifier may be
// nil, which disables post-completion push notification.
func NewSessionManager(tasks TaskStore, configs PushConfigStore, notifier PushNotifier, logger *slog.Logger) *SessionManager {
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionManager{
		tasks:    tasks,
		configs:  configs,
		notifier: notifier,
		logger:   logger,
		sessions: make(map[string]*Session),
		locks:    make(map[string]*taskLock),
	}
}

// AddSession registers the session under its task id and spawns the
// completion monitor for it. Fails with ErrSessionAlreadyRegistered if a
// session for the task id is already registered; nothing is spawned then.
func (m *SessionManager) AddSession(session *Session) error {
	taskID := session.TaskID()
	m.mu.Lock()
	if _, exists := m.sessions[taskID]; exists {
		m.mu.Unlock()
		return fmt.Errorf("task %s: %w", taskID, ErrSessionAlreadyRegistered)
	}
	m.sessions[taskID] = session
	m.mu.Unlock()

	m.monitorWg.Add(1)
	go m.monitor(session)
	return nil
}

// monitor watches one session to completion: join, then finalize under the
// per-task lock (whichever of monitor and explicit cancel acquires it first
// performs the cleanup; the other observes the cleaned-up state), then
// notify. The monitor never fails, whatever the job's outcome was.
func (m *SessionManager) monitor(session *Session) {
	defer m.monitorWg.Done()
	ctx := context.Background()
	taskID := session.TaskID()

	if err := session.Join(ctx); err != nil {
		m.logger.Error("Failed to join session", "error", err, "taskID", taskID)
	}

	m.WithTaskLock(taskID, func() {
		m.mu.Lock()
		delete(m.sessions, taskID)
		m.mu.Unlock()
		if err := session.Close(ctx); err != nil {
			m.logger.Error("Failed to close session", "error", err, "taskID", taskID)
		}
	})

	if jobErr := session.Err(); jobErr != nil {
		m.logger.Debug("Session job finished with error", "error", jobErr, "taskID", taskID, "contextID", session.ContextID())
	}

	if !session.Processor().FirstEventTaskRelated() {
		return
	}
	m.notifyTaskCompletion(ctx, taskID)
}

// notifyTaskCompletion sends the final task snapshot to every configured push
// target. Delivery failures are logged and skipped (at-least-once intent,
// never crash the monitor).
func (m *SessionManager) notifyTaskCompletion(ctx context.Context, taskID string) {
	if m.notifier == nil || m.configs == nil {
		return
	}
	configs, err := m.configs.ListTaskPushNotificationConfig(ctx, taskID)
	if err != nil {
		m.logger.Error("Failed to list push notification configs", "error", err, "taskID", taskID)
		return
	}
	if len(configs) == 0 {
		return
	}
	task, err := m.tasks.GetTask(ctx, taskID, 0, false)
	if err != nil {
		m.logger.Error("Failed to get task for push notification", "error", err, "taskID", taskID)
		return
	}
	for _, config := range configs {
		if err := m.notifier.Notify(ctx, config.PushNotificationConfig, task); err != nil {
			m.logger.Error("Failed to send push notification",
				"error", err, "taskID", taskID, "url", config.PushNotificationConfig.URL)
			continue
		}
		m.logger.Debug("Push notification sent", "taskID", taskID, "url", config.PushNotificationConfig.URL)
	}
}

// SessionForTask returns the registered session for the task id, or nil.
func (m *SessionManager) SessionForTask(taskID string) *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sessions[taskID]
}

// ActiveSessions returns the number of registered sessions.
func (m *SessionManager) ActiveSessions() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// LockTask acquires the per-task lock for the task id, creating the table
// entry on first use. The lock is not reentrant: acquiring it twice on one
// logical flow deadlocks.
func (m *SessionManager) LockTask(taskID string) {
	m.lockMu.Lock()
	entry, ok := m.locks[taskID]
	if !ok {
		entry = &taskLock{}
		m.locks[taskID] = entry
	}
	entry.refs++
	m.lockMu.Unlock()

	entry.mu.Lock()

	m.lockMu.Lock()
	entry.locked = true
	m.lockMu.Unlock()
}

// UnlockTask releases the per-task lock and removes the table entry once it
// is unreferenced. Unlocking a task id that is not currently locked is a
// fatal programmer error and panics.
func (m *SessionManager) UnlockTask(taskID string) {
	m.lockMu.Lock()
	entry, ok := m.locks[taskID]
	if !ok || !entry.locked {
		m.lockMu.Unlock()
		panic(fmt.Sprintf("tandem: unlock of task %q that is not locked", taskID))
	}
	entry.locked = false
	entry.refs--
	if entry.refs == 0 {
		delete(m.locks, taskID)
	}
	m.lockMu.Unlock()

	entry.mu.Unlock()
}

// IsTaskLocked reports whether the per-task lock for the task id is held.
func (m *SessionManager) IsTaskLocked(taskID string) bool {
	m.lockMu.Lock()
	defer m.lockMu.Unlock()
	entry, ok := m.locks[taskID]
	return ok && entry.locked
}

// WithTaskLock runs fn while holding the per-task lock, releasing it on every
// exit path including panics.
func (m *SessionManager) WithTaskLock(taskID string, fn func()) {
	m.LockTask(taskID)
	defer m.UnlockTask(taskID)
	fn()
}

// Shutdown closes every registered session and waits for all monitors to
// finish their cleanup and notification work.
func (m *SessionManager) Shutdown(ctx context.Context) error {
	m.mu.RLock()
	sessions := make([]*Session, 0, len(m.sessions))
	for _, session := range m.sessions {
		sessions = append(sessions, session)
	}
	m.mu.RUnlock()

	for _, session := range sessions {
		if err := session.Close(ctx); err != nil {
			m.logger.Error("Failed to close session during shutdown", "error", err, "taskID", session.TaskID())
		}
	}

	done := make(chan struct{})
	go func() {
		m.monitorWg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
