package tandem

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tandem-a2a/tandem/a2a"
)

// FileSystemStorage is the default Storage: JSON files under a base
// directory, one per task snapshot, per context message log, and per push
// notification config. A single RWMutex serializes writers; the layout is
// human-readable on purpose so operators can inspect task state directly.
type FileSystemStorage struct {
	basePath string
	mu       sync.RWMutex
}

// NewFileSystemStorage creates the base directory if needed and returns the
// storage rooted there.
func NewFileSystemStorage(basePath string) (*FileSystemStorage, error) {
	if err := os.MkdirAll(basePath, 0750); err != nil {
		return nil, fmt.Errorf("failed to create base directory: %w", err)
	}
	return &FileSystemStorage{basePath: basePath}, nil
}

func (fs *FileSystemStorage) taskPath(taskID string) string {
	return filepath.Join(fs.basePath, "tasks", taskID+".json")
}

func (fs *FileSystemStorage) messagesPath(contextID string) string {
	return filepath.Join(fs.basePath, "messages", contextID+".json")
}

func (fs *FileSystemStorage) pushConfigDir(taskID string) string {
	return filepath.Join(fs.basePath, "push-configs", taskID)
}

func (fs *FileSystemStorage) pushConfigPath(taskID, configID string) string {
	return filepath.Join(fs.pushConfigDir(taskID), configID+".json")
}

// readJSON decodes one file into out, mapping a missing file to notFound.
// Callers hold the appropriate lock.
func readJSON(path string, out any, notFound error) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return notFound
		}
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", path, err)
	}
	return nil
}

// writeJSON writes v as indented JSON, creating the parent directory.
// Callers hold the write lock.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func (fs *FileSystemStorage) GetTask(ctx context.Context, taskID string, historyLength int, includeArtifacts bool) (*a2a.Task, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	var task a2a.Task
	if err := readJSON(fs.taskPath(taskID), &task, ErrTaskNotFound); err != nil {
		return nil, err
	}
	TrimTaskView(&task, historyLength, includeArtifacts)
	return &task, nil
}

func (fs *FileSystemStorage) UpdateTask(ctx context.Context, event a2a.Event) (*a2a.Task, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	var current *a2a.Task
	var stored a2a.Task
	err := readJSON(fs.taskPath(event.TaskID()), &stored, ErrTaskNotFound)
	switch {
	case err == nil:
		current = &stored
	case err == ErrTaskNotFound && event.Task != nil:
		// A full snapshot may create the task.
	default:
		return nil, err
	}

	task, err := MergeTaskEvent(current, event)
	if err != nil {
		return nil, err
	}
	if err := writeJSON(fs.taskPath(task.ID), task); err != nil {
		return nil, err
	}
	return task, nil
}

func (fs *FileSystemStorage) ListMessages(ctx context.Context, contextID string) ([]a2a.Message, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	var messages []a2a.Message
	if err := readJSON(fs.messagesPath(contextID), &messages, ErrContextNotFound); err != nil {
		return nil, err
	}
	return messages, nil
}

func (fs *FileSystemStorage) AppendMessage(ctx context.Context, contextID string, msg a2a.Message) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	var messages []a2a.Message
	err := readJSON(fs.messagesPath(contextID), &messages, ErrContextNotFound)
	if err != nil && err != ErrContextNotFound {
		return err
	}
	messages = append(messages, msg)
	return writeJSON(fs.messagesPath(contextID), messages)
}

func (fs *FileSystemStorage) SaveTaskPushNotificationConfig(ctx context.Context, config a2a.TaskPushNotificationConfig) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	return writeJSON(fs.pushConfigPath(config.TaskID, config.PushNotificationConfig.ID), config)
}

func (fs *FileSystemStorage) GetTaskPushNotificationConfig(ctx context.Context, taskID, configID string) (a2a.TaskPushNotificationConfig, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	return fs.readPushConfig(taskID, configID)
}

func (fs *FileSystemStorage) readPushConfig(taskID, configID string) (a2a.TaskPushNotificationConfig, error) {
	var config a2a.TaskPushNotificationConfig
	err := readJSON(fs.pushConfigPath(taskID, configID), &config, ErrPushNotificationConfigNotFound)
	if err != nil {
		return a2a.TaskPushNotificationConfig{}, err
	}
	return config, nil
}

func (fs *FileSystemStorage) ListTaskPushNotificationConfig(ctx context.Context, taskID string) ([]a2a.TaskPushNotificationConfig, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	entries, err := os.ReadDir(fs.pushConfigDir(taskID))
	if err != nil {
		if os.IsNotExist(err) {
			return []a2a.TaskPushNotificationConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read push notification config directory: %w", err)
	}

	var configs []a2a.TaskPushNotificationConfig
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		configID := strings.TrimSuffix(entry.Name(), ".json")
		if config, err := fs.readPushConfig(taskID, configID); err == nil {
			configs = append(configs, config)
		}
	}
	return configs, nil
}

func (fs *FileSystemStorage) DeleteTaskPushNotificationConfig(ctx context.Context, taskID, configID string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if err := os.Remove(fs.pushConfigPath(taskID, configID)); err != nil {
		if os.IsNotExist(err) {
			return ErrPushNotificationConfigNotFound
		}
		return fmt.Errorf("failed to delete push notification config file: %w", err)
	}
	return nil
}

// TrimTaskView applies the history and artifact visibility options of
// TaskStore.GetTask to a task snapshot in place. Storage implementations
// share it so all backends expose the same view semantics.
func TrimTaskView(task *a2a.Task, historyLength int, includeArtifacts bool) {
	switch {
	case historyLength == 0:
		task.History = nil
	case historyLength > 0 && len(task.History) > historyLength:
		task.History = task.History[len(task.History)-historyLength:]
	}
	if !includeArtifacts {
		task.Artifacts = nil
	}
}

// MergeTaskEvent applies a task-related event to the current snapshot and
// returns the resulting task. current may be nil only for Task events.
func MergeTaskEvent(current *a2a.Task, event a2a.Event) (*a2a.Task, error) {
	switch {
	case event.Task != nil:
		return event.Task, nil
	case event.Status != nil:
		if current == nil {
			return nil, ErrTaskNotFound
		}
		current.Status = event.Status.Status
		if event.Status.Status.Message != nil {
			current.History = append(current.History, *event.Status.Status.Message)
		}
		return current, nil
	case event.Artifact != nil:
		if current == nil {
			return nil, ErrTaskNotFound
		}
		artifact := event.Artifact.Artifact
		for i := range current.Artifacts {
			if current.Artifacts[i].ArtifactID == artifact.ArtifactID {
				if event.Artifact.Append {
					current.Artifacts[i].Parts = append(current.Artifacts[i].Parts, artifact.Parts...)
				} else {
					current.Artifacts[i] = artifact
				}
				return current, nil
			}
		}
		current.Artifacts = append(current.Artifacts, artifact)
		return current, nil
	default:
		return nil, fmt.Errorf("event is not task-related")
	}
}
