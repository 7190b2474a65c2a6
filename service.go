package tandem

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/Songmu/flextime"
	"github.com/tandem-a2a/tandem/a2a"
	"github.com/tandem-a2a/tandem/transport"
)

// AgentService implements the A2A protocol operations on top of the session
// concurrency core: every send-message call becomes a registered session
// whose events are streamed back to the caller, and cancellation, lookup and
// resubscription go through the SessionManager's registry.
type AgentService struct {
	Storage  Storage
	Executor AgentExecutor

	// Logging
	Logger *slog.Logger // Public field for logging configuration

	// PushNotifier for sending push notifications
	PushNotifier PushNotifier // Public field for push notification delivery

	// DisableStreaming disables streaming capabilities when set to true
	DisableStreaming bool

	// DisablePushNotifications disables push notification capabilities when set to true
	DisablePushNotifications bool

	// BaseEndpoint of the agent service
	BaseEndpoint string // Public field for agent base endpoint (defaults to transport.PlaceholderURL)

	// IDGenerator management with lazy initialization
	mu          sync.Mutex
	idGenerator IDGenerator
	sessions    *SessionManager
}

// NewAgentService creates a new AgentService with default collaborators.
func NewAgentService(storage Storage, executor AgentExecutor) *AgentService {
	return &AgentService{
		Storage:      storage,
		Executor:     executor,
		Logger:       slog.Default(),
		PushNotifier: NewDefaultPushNotifier(),
		BaseEndpoint: transport.PlaceholderURL,
		idGenerator:  &DefaultIDGenerator{},
	}
}

// SetIDGenerator sets a custom IDGenerator for the AgentService
// This replaces the default DefaultIDGenerator set in NewAgentService
func (s *AgentService) SetIDGenerator(idGen IDGenerator) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.idGenerator = idGen
}

// getIDGenerator returns the IDGenerator
func (s *AgentService) getIDGenerator() IDGenerator {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.idGenerator == nil {
		s.idGenerator = &DefaultIDGenerator{}
	}
	return s.idGenerator
}

func (s *AgentService) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

func (s *AgentService) pushNotificationsEnabled() bool {
	return !s.DisablePushNotifications && s.PushNotifier != nil
}

// Sessions returns the session manager, creating it on first use so that
// field configuration done after NewAgentService is picked up.
func (s *AgentService) Sessions() *SessionManager {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sessions == nil {
		var notifier PushNotifier
		var configs PushConfigStore
		if !s.DisablePushNotifications && s.PushNotifier != nil {
			notifier = s.PushNotifier
			configs = s.Storage
		}
		s.sessions = NewSessionManager(s.Storage, configs, notifier, s.logger())
	}
	return s.sessions
}

// Close shuts down all running sessions and the push notifier.
func (s *AgentService) Close(ctx context.Context) error {
	if err := s.Sessions().Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down sessions: %w", err)
	}
	if s.PushNotifier != nil {
		if err := s.PushNotifier.Close(); err != nil {
			s.logger().Error("Failed to close push notifier", "error", err)
		}
	}
	return nil
}

// streamHandle is the result of opening a session-backed event stream.
type streamHandle struct {
	taskID    string
	contextID string
	events    <-chan a2a.Event
}

// openStream validates the send-message parameters, persists the task, and
// registers and starts a session for it. All structural validation happens
// before the session is registered so failures leave no partial state.
func (s *AgentService) openStream(ctx context.Context, params a2a.MessageSendParams) (*streamHandle, error) {
	idGen := s.getIDGenerator()
	manager := s.Sessions()

	if params.Message.Role != "" && params.Message.Role != a2a.RoleUser {
		return nil, a2a.NewJSONRPCError(a2a.ErrorCodeInvalidParams, map[string]string{
			"reason": "Message role must be 'user'",
			"role":   params.Message.Role.String(),
		})
	}
	if params.Message.Kind == "" {
		params.Message.Kind = a2a.KindMessage
	}
	if params.Message.MessageID == "" {
		params.Message.MessageID = idGen.GenerateMessageID()
	}

	var seedTask *a2a.Task
	if params.Message.TaskID != "" {
		// Message addressed at an existing task: the task may not receive
		// new input while a session for it is executing.
		taskID := params.Message.TaskID
		if manager.SessionForTask(taskID) != nil {
			return nil, a2a.NewJSONRPCError(a2a.ErrorCodeUnsupportedOperation, map[string]string{
				"reason": "task is currently executing and cannot accept new input",
				"taskId": taskID,
			})
		}
		task, err := s.Storage.GetTask(ctx, taskID, HistoryLengthAll, true)
		if err != nil {
			if errors.Is(err, ErrTaskNotFound) {
				return nil, a2a.NewJSONRPCTaskNotFoundError(taskID)
			}
			return nil, fmt.Errorf("failed to get task %s: %w", taskID, err)
		}
		if params.Message.ContextID != "" && params.Message.ContextID != task.ContextID {
			return nil, a2a.NewJSONRPCError(a2a.ErrorCodeInvalidParams, map[string]string{
				"reason":        "message contextId does not match task contextId",
				"contextId":     params.Message.ContextID,
				"taskContextId": task.ContextID,
			})
		}
		if task.Status.State.IsTerminal() {
			return nil, a2a.NewJSONRPCError(a2a.ErrorCodeInvalidParams, map[string]string{
				"reason":       "Cannot add messages to terminal task. Create new task with same contextId for follow-up.",
				"currentState": task.Status.State.String(),
			})
		}
		params.Message.ContextID = task.ContextID
		task.History = append(task.History, params.Message)
		seedTask = task
	} else {
		contextID := params.Message.ContextID
		if contextID == "" {
			contextID = idGen.GenerateContextID()
		}
		taskID := idGen.GenerateTaskID()
		params.Message.ContextID = contextID
		params.Message.TaskID = taskID
		task := a2a.NewTask(taskID, contextID, a2a.TaskStateSubmitted)
		task.Status.SetTimestamp(flextime.Now())
		task.History = []a2a.Message{params.Message}
		seedTask = task
	}
	taskID := seedTask.ID
	contextID := seedTask.ContextID

	// Persist the snapshot and record the message before any session exists,
	// so GetTask already reflects the submission.
	if _, err := s.Storage.UpdateTask(ctx, a2a.NewTaskEvent(seedTask)); err != nil {
		return nil, fmt.Errorf("failed to persist task %s: %w", taskID, err)
	}
	if err := s.Storage.AppendMessage(ctx, contextID, params.Message); err != nil {
		return nil, fmt.Errorf("failed to append message to context %s: %w", contextID, err)
	}

	if params.Configuration != nil && params.Configuration.PushNotificationConfig != nil && s.pushNotificationsEnabled() {
		config := a2a.TaskPushNotificationConfig{
			TaskID:                 taskID,
			PushNotificationConfig: *params.Configuration.PushNotificationConfig,
		}
		config.PushNotificationConfig.ID = idGen.GeneratePushNotificationConfigID()
		if err := s.Storage.SaveTaskPushNotificationConfig(ctx, config); err != nil {
			return nil, fmt.Errorf("failed to save push notification config: %w", err)
		}
	}

	processor := NewEventProcessor(contextID, taskID, s.Storage, s.logger())
	rc := s.NewRequestContext(RequestContextParams{
		ContextID:   contextID,
		TaskID:      taskID,
		Params:      params,
		HTTPHeaders: transport.GetHTTPHeaders(ctx),
	})
	session := NewSession(contextID, taskID, processor, s.newJob(rc, processor, seedTask))
	if err := manager.AddSession(session); err != nil {
		if errors.Is(err, ErrSessionAlreadyRegistered) {
			return nil, a2a.NewJSONRPCError(a2a.ErrorCodeUnsupportedOperation, map[string]string{
				"reason": "task is currently executing and cannot accept new input",
				"taskId": taskID,
			})
		}
		return nil, fmt.Errorf("failed to register session for task %s: %w", taskID, err)
	}

	// Attach before starting so the seed snapshot is the first observed event.
	events := processor.Subscribe(ctx)
	session.Start(ctx)

	return &streamHandle{
		taskID:    taskID,
		contextID: contextID,
		events:    events,
	}, nil
}

// newJob wraps the executor call in the session's background job: it
// publishes the seed task snapshot, runs the executor, applies the implicit
// final status, and always closes the processor on the way out.
func (s *AgentService) newJob(rc *RequestContext, processor *EventProcessor, seed *a2a.Task) func(ctx context.Context) error {
	snapshot := *seed
	return func(ctx context.Context) error {
		defer processor.Close()

		if err := processor.SendTaskEvent(ctx, a2a.NewTaskEvent(&snapshot)); err != nil {
			return fmt.Errorf("failed to publish task snapshot: %w", err)
		}

		err := s.Executor.Execute(ctx, rc, processor)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				// Explicit cancellation; CancelTask owns the state transition.
				s.logger().Debug("Agent execution canceled", "taskID", processor.TaskID(), "contextID", processor.ContextID())
				return err
			}
			s.logger().Warn("Agent execution failed", "error", err, "taskID", processor.TaskID(), "contextID", processor.ContextID())
			s.applyImplicitStatus(ctx, processor, a2a.TaskStateFailed)
			return err
		}

		s.applyImplicitStatus(ctx, processor, a2a.TaskStateCompleted)
		return nil
	}
}

// applyImplicitStatus publishes a final status when the executor returned
// without settling the task itself. A terminal state set by the executor is
// respected, and a voluntary yield to input-required suppresses the implicit
// Completed.
func (s *AgentService) applyImplicitStatus(ctx context.Context, processor *EventProcessor, state a2a.TaskState) {
	task, err := s.Storage.GetTask(ctx, processor.TaskID(), 0, false)
	if err != nil {
		s.logger().Error("Failed to get task for implicit status", "error", err, "taskID", processor.TaskID())
		return
	}
	if task.Status.State.IsTerminal() {
		return
	}
	if state == a2a.TaskStateCompleted && task.Status.State.IsInterrupted() {
		return
	}
	status := a2a.TaskStatus{State: state}
	status.SetTimestamp(flextime.Now())
	if err := processor.SendTaskEvent(ctx, a2a.NewStatusUpdateEvent(processor.TaskID(), processor.ContextID(), status)); err != nil {
		s.logger().Error("Failed to publish implicit status", "error", err, "taskID", processor.TaskID(), "state", state)
	}
}

// SendMessage implements the core A2A message sending workflow. In blocking
// mode it drives the stream to completion and resolves the last event to a
// full task snapshot; in non-blocking mode it returns the first event.
func (s *AgentService) SendMessage(ctx context.Context, params a2a.MessageSendParams) (*a2a.SendMessageResult, error) {
	blocking := true // Default to blocking (synchronous)
	if params.Configuration != nil {
		blocking = params.Configuration.Blocking
	}

	handle, err := s.openStream(ctx, params)
	if err != nil {
		return nil, err
	}

	if !blocking {
		select {
		case first, ok := <-handle.events:
			if !ok {
				return nil, a2a.NewJSONRPCInternalError("event stream ended before the first event", nil)
			}
			// Leave the stream draining so the publisher is never blocked on
			// a departed reader.
			go func() {
				for range handle.events {
				}
			}()
			switch {
			case first.Task != nil:
				return &a2a.SendMessageResult{Task: first.Task}, nil
			case first.Message != nil:
				return &a2a.SendMessageResult{Message: first.Message}, nil
			default:
				return nil, a2a.NewJSONRPCInternalError("unexpected first event kind", map[string]string{
					"kind": first.EventKind().String(),
				})
			}
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	var last a2a.Event
	var seen bool
	for event := range handle.events {
		last = event
		seen = true
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !seen {
		return nil, a2a.NewJSONRPCInternalError("event stream ended without events", nil)
	}

	if last.IsTaskEvent() {
		historyLength := HistoryLengthAll
		if params.Configuration != nil && params.Configuration.HistoryLength != nil {
			historyLength = *params.Configuration.HistoryLength
		}
		task, err := s.Storage.GetTask(ctx, handle.taskID, historyLength, true)
		if err != nil {
			if errors.Is(err, ErrTaskNotFound) {
				return nil, a2a.NewJSONRPCTaskNotFoundError(handle.taskID)
			}
			return nil, fmt.Errorf("failed to retrieve final task %s: %w", handle.taskID, err)
		}
		return &a2a.SendMessageResult{Task: task}, nil
	}
	return &a2a.SendMessageResult{Message: last.Message}, nil
}

// SendStreamingMessage opens a live event stream for the message. The
// returned channel closes when the session's event stream ends.
func (s *AgentService) SendStreamingMessage(ctx context.Context, params a2a.MessageSendParams) (<-chan a2a.Event, error) {
	if s.DisableStreaming {
		return nil, a2a.NewJSONRPCError(a2a.ErrorCodeUnsupportedOperation, nil)
	}
	if params.Configuration != nil && params.Configuration.Blocking {
		return nil, a2a.NewJSONRPCInvalidParamsError("blocking is not allowed for streaming")
	}

	handle, err := s.openStream(ctx, params)
	if err != nil {
		return nil, err
	}

	if params.Configuration != nil && params.Configuration.HistoryLength != nil {
		return filterTaskHistory(ctx, handle.events, *params.Configuration.HistoryLength), nil
	}
	return handle.events, nil
}

// filterTaskHistory trims the history of task snapshot events on a stream to
// the requested depth. Negative depths keep everything.
func filterTaskHistory(ctx context.Context, in <-chan a2a.Event, historyLength int) <-chan a2a.Event {
	if historyLength < 0 {
		return in
	}
	out := make(chan a2a.Event, subscriberBuffer)
	go func() {
		defer close(out)
		for event := range in {
			if event.Task != nil && len(event.Task.History) > historyLength {
				taskCopy := *event.Task
				if historyLength == 0 {
					taskCopy.History = nil
				} else {
					taskCopy.History = taskCopy.History[len(taskCopy.History)-historyLength:]
				}
				event.Task = &taskCopy
			}
			select {
			case out <- event:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

// GetTask retrieves the current state of a task from the agent
func (s *AgentService) GetTask(ctx context.Context, params a2a.TaskQueryParams) (*a2a.Task, error) {
	historyLength := HistoryLengthAll
	if params.HistoryLength != nil {
		historyLength = *params.HistoryLength
	}
	task, err := s.Storage.GetTask(ctx, params.ID, historyLength, true)
	if err != nil {
		if errors.Is(err, ErrTaskNotFound) {
			return nil, a2a.NewJSONRPCTaskNotFoundError(params.ID)
		}
		return nil, fmt.Errorf("failed to get task %s: %w", params.ID, err)
	}
	return task, nil
}

// CancelTask cancels a task. When no session is registered the stored task
// is transitioned directly; when one is, the executor's cancel hook runs
// first and the session is closed afterwards regardless, so termination is
// guaranteed even if the hook does nothing. Closing the session and writing
// the Canceled status happen under the per-task lock: the monitor acquires
// the same lock for cleanup before it notifies push targets, so the snapshot
// it delivers is already terminal.
func (s *AgentService) CancelTask(ctx context.Context, params a2a.TaskIDParams) (*a2a.Task, error) {
	manager := s.Sessions()
	session := manager.SessionForTask(params.ID)
	if session == nil {
		return s.cancelStoredTask(ctx, params.ID)
	}

	rc := s.NewRequestContext(RequestContextParams{
		ContextID:   session.ContextID(),
		TaskID:      params.ID,
		HTTPHeaders: transport.GetHTTPHeaders(ctx),
	})
	if err := s.Executor.Cancel(ctx, rc, session); err != nil {
		// Cancellation refused; the task keeps its prior running state.
		task, getErr := s.Storage.GetTask(ctx, params.ID, HistoryLengthAll, true)
		if getErr != nil {
			return nil, fmt.Errorf("failed to get task %s after cancel failure: %w", params.ID, getErr)
		}
		return task, err
	}

	var task *a2a.Task
	var finalErr error
	manager.WithTaskLock(params.ID, func() {
		if err := session.Close(ctx); err != nil {
			finalErr = fmt.Errorf("failed to close session for task %s: %w", params.ID, err)
			return
		}
		task, finalErr = s.recordCanceled(ctx, params.ID)
	})
	if finalErr != nil {
		return nil, finalErr
	}
	return task, nil
}

// recordCanceled writes the Canceled terminal status unless the task already
// settled. Callers hold the per-task lock.
func (s *AgentService) recordCanceled(ctx context.Context, taskID string) (*a2a.Task, error) {
	task, err := s.Storage.GetTask(ctx, taskID, HistoryLengthAll, true)
	if err != nil {
		if errors.Is(err, ErrTaskNotFound) {
			return nil, a2a.NewJSONRPCTaskNotFoundError(taskID)
		}
		return nil, fmt.Errorf("failed to get task %s: %w", taskID, err)
	}
	if task.Status.State.IsTerminal() {
		return task, nil
	}
	status := a2a.TaskStatus{State: a2a.TaskStateCanceled}
	status.SetTimestamp(flextime.Now())
	updated, err := s.Storage.UpdateTask(ctx, a2a.NewStatusUpdateEvent(taskID, task.ContextID, status))
	if err != nil {
		return nil, fmt.Errorf("failed to cancel task %s: %w", taskID, err)
	}
	return updated, nil
}

// cancelStoredTask is the no-session path: a pure storage transition.
// Canceling an already-Canceled task is an idempotent success.
func (s *AgentService) cancelStoredTask(ctx context.Context, taskID string) (*a2a.Task, error) {
	task, err := s.Storage.GetTask(ctx, taskID, HistoryLengthAll, true)
	if err != nil {
		if errors.Is(err, ErrTaskNotFound) {
			return nil, a2a.NewJSONRPCTaskNotFoundError(taskID)
		}
		return nil, fmt.Errorf("failed to get task %s: %w", taskID, err)
	}
	if task.Status.State == a2a.TaskStateCanceled {
		return task, nil
	}
	if task.Status.State.IsTerminal() {
		return nil, a2a.NewJSONRPCError(a2a.ErrorCodeTaskNotCancelable, map[string]string{
			"taskId": taskID,
			"state":  task.Status.State.String(),
		})
	}
	status := a2a.TaskStatus{State: a2a.TaskStateCanceled}
	status.SetTimestamp(flextime.Now())
	updated, err := s.Storage.UpdateTask(ctx, a2a.NewStatusUpdateEvent(taskID, task.ContextID, status))
	if err != nil {
		return nil, fmt.Errorf("failed to cancel task %s: %w", taskID, err)
	}
	return updated, nil
}

// TaskResubscription attaches to the live event stream of a running session.
// There is no historical replay; only events from attachment onward.
func (s *AgentService) TaskResubscription(ctx context.Context, params a2a.TaskIDParams) (<-chan a2a.Event, error) {
	if s.DisableStreaming {
		return nil, a2a.NewJSONRPCError(a2a.ErrorCodeUnsupportedOperation, nil)
	}
	session := s.Sessions().SessionForTask(params.ID)
	if session == nil {
		return nil, a2a.NewJSONRPCError(a2a.ErrorCodeUnsupportedOperation, map[string]string{
			"reason": "no running session for task",
			"taskId": params.ID,
		})
	}
	return session.Processor().Subscribe(ctx), nil
}

func (s *AgentService) SetTaskPushNotificationConfig(ctx context.Context, config a2a.TaskPushNotificationConfig) (*a2a.TaskPushNotificationConfig, error) {
	if !s.pushNotificationsEnabled() {
		return nil, a2a.NewJSONRPCError(a2a.ErrorCodePushNotificationNotSupported, nil)
	}

	// Server always generates the config ID, ignoring any client-provided one
	idGen := s.getIDGenerator()
	config.PushNotificationConfig.ID = idGen.GeneratePushNotificationConfigID()

	if err := s.PushNotifier.ValidateEndpoint(ctx, config.PushNotificationConfig); err != nil {
		return nil, a2a.NewJSONRPCError(a2a.ErrorCodeInvalidParams, map[string]string{"validation_error": err.Error()})
	}

	if err := s.Storage.SaveTaskPushNotificationConfig(ctx, config); err != nil {
		return nil, fmt.Errorf("failed to save push notification config: %w", err)
	}

	return &config, nil
}

func (s *AgentService) GetTaskPushNotificationConfig(ctx context.Context, params a2a.GetTaskPushNotificationConfigParams) (*a2a.TaskPushNotificationConfig, error) {
	if !s.pushNotificationsEnabled() {
		return nil, a2a.NewJSONRPCError(a2a.ErrorCodePushNotificationNotSupported, nil)
	}

	config, err := s.Storage.GetTaskPushNotificationConfig(ctx, params.ID, params.PushNotificationConfigID)
	if err != nil {
		if errors.Is(err, ErrPushNotificationConfigNotFound) {
			return nil, a2a.NewJSONRPCError(a2a.ErrorCodeInvalidParams, map[string]string{"error": "push notification config not found"})
		}
		return nil, fmt.Errorf("failed to get push notification config for task %s: %w", params.ID, err)
	}

	return &config, nil
}

func (s *AgentService) ListTaskPushNotificationConfig(ctx context.Context, params a2a.TaskIDParams) ([]a2a.TaskPushNotificationConfig, error) {
	if !s.pushNotificationsEnabled() {
		return nil, a2a.NewJSONRPCError(a2a.ErrorCodePushNotificationNotSupported, nil)
	}

	configs, err := s.Storage.ListTaskPushNotificationConfig(ctx, params.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list push notification configs for task %s: %w", params.ID, err)
	}

	return configs, nil
}

func (s *AgentService) DeleteTaskPushNotificationConfig(ctx context.Context, params a2a.DeleteTaskPushNotificationConfigParams) error {
	if !s.pushNotificationsEnabled() {
		return a2a.NewJSONRPCError(a2a.ErrorCodePushNotificationNotSupported, nil)
	}

	if err := s.Storage.DeleteTaskPushNotificationConfig(ctx, params.ID, params.PushNotificationConfigID); err != nil {
		if errors.Is(err, ErrPushNotificationConfigNotFound) {
			return a2a.NewJSONRPCError(a2a.ErrorCodeInvalidParams, map[string]string{"error": "push notification config not found"})
		}
		return fmt.Errorf("failed to delete push notification config for task %s: %w", params.ID, err)
	}

	return nil
}

// SupportedOutputModes returns the union of the executor's default output
// modes and its skills' output modes, for content negotiation.
func (s *AgentService) SupportedOutputModes(ctx context.Context) ([]string, error) {
	if s.Executor == nil {
		return nil, a2a.NewJSONRPCError(a2a.ErrorCodeUnsupportedOperation, nil)
	}

	meta, err := s.Executor.GetMetadata(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get agent metadata: %w", err)
	}
	outputModes := make([]string, 0, len(meta.DefaultOutputModes))
	outputModes = append(outputModes, meta.DefaultOutputModes...)
	for _, skill := range meta.Skills {
		if skill.OutputModes != nil {
			outputModes = append(outputModes, skill.OutputModes...)
		}
	}
	slices.Sort(outputModes)
	return slices.Compact(outputModes), nil
}

func (s *AgentService) GetAgentCard(ctx context.Context) (*a2a.AgentCard, error) {
	meta, err := s.Executor.GetMetadata(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get agent metadata: %w", err)
	}
	card := &a2a.AgentCard{
		Name:               meta.Name,
		Version:            meta.Version,
		Description:        meta.Description,
		URL:                s.BaseEndpoint,
		ProtocolVersion:    a2a.ProtocolVersion,
		Skills:             meta.Skills,
		DefaultInputModes:  meta.DefaultInputModes,
		DefaultOutputModes: meta.DefaultOutputModes,
		Provider:           meta.Provider,
	}
	if card.Version == "" {
		card.Version = "v0.0.0"
	}
	card.Capabilities.Streaming = !s.DisableStreaming
	card.Capabilities.PushNotifications = s.pushNotificationsEnabled()
	return card, nil
}
