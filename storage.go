// Package tandem provides a session-based A2A (Agent-to-Agent) server core:
// it turns each incoming message into a registered, cancelable, exactly-once
// cleaned-up unit of background work, fans its events out to any number of
// subscribers, and serializes finalization between automatic completion and
// explicit cancellation.
package tandem

import (
	"context"
	"errors"

	"github.com/tandem-a2a/tandem/a2a"
)

//go:generate go tool mockgen -source=storage.go -destination=mock_storage_test.go -package=tandem

// HistoryLengthAll asks TaskStore.GetTask for the complete message history.
const HistoryLengthAll = -1

// Storage error variables that implementations should return.
var (
	// ErrTaskNotFound is returned when a requested task does not exist
	ErrTaskNotFound = errors.New("task not found")
	// ErrContextNotFound is returned when a requested context does not exist
	ErrContextNotFound = errors.New("context not found")
	// ErrPushNotificationConfigNotFound is returned when push notification config does not exist
	ErrPushNotificationConfigNotFound = errors.New("push notification config not found")
)

// TaskStore persists task snapshots. The concurrency core only reads and
// merges through this interface; it never owns task state itself.
type TaskStore interface {
	// GetTask returns the task snapshot. historyLength limits the number of
	// trailing history messages (HistoryLengthAll for everything, 0 for none);
	// includeArtifacts controls whether artifacts are populated.
	// Returns ErrTaskNotFound if the task does not exist.
	GetTask(ctx context.Context, taskID string, historyLength int, includeArtifacts bool) (*a2a.Task, error)

	// UpdateTask merges a task-related event into the stored snapshot and
	// returns the updated task. A Task event replaces the snapshot, a status
	// update replaces Status (appending the status message to history when
	// present), and an artifact update upserts by artifact id.
	UpdateTask(ctx context.Context, event a2a.Event) (*a2a.Task, error)
}

// MessageStore persists conversational messages grouped by context id. It is
// exposed to agent executors through context-scoped views; the concurrency
// core does not use it directly.
type MessageStore interface {
	ListMessages(ctx context.Context, contextID string) ([]a2a.Message, error)
	AppendMessage(ctx context.Context, contextID string, msg a2a.Message) error
}

// PushConfigStore persists push notification configurations, multiple per task.
type PushConfigStore interface {
	SaveTaskPushNotificationConfig(ctx context.Context, config a2a.TaskPushNotificationConfig) error
	GetTaskPushNotificationConfig(ctx context.Context, taskID, configID string) (a2a.TaskPushNotificationConfig, error)
	ListTaskPushNotificationConfig(ctx context.Context, taskID string) ([]a2a.TaskPushNotificationConfig, error)
	DeleteTaskPushNotificationConfig(ctx context.Context, taskID, configID string) error
}

// Storage combines the three persistence contracts a full server needs.
// Implementations should return the package sentinel errors above for
// consistent handling.
type Storage interface {
	TaskStore
	MessageStore
	PushConfigStore
}
