package a2a

// Event is the tagged union carried on task streams: exactly one of the
// fields is non-nil. Message events are conversational turns; the other three
// variants are task-related and are mirrored into task storage when they pass
// through an event processor.
type Event struct {
	Task     *Task                    `json:"task,omitempty"`
	Message  *Message                 `json:"message,omitempty"`
	Status   *TaskStatusUpdateEvent   `json:"status,omitempty"`
	Artifact *TaskArtifactUpdateEvent `json:"artifact,omitempty"`
}

// NewTaskEvent wraps a task snapshot as a stream event.
func NewTaskEvent(task *Task) Event {
	return Event{Task: task}
}

// NewMessageEvent wraps a message as a stream event.
func NewMessageEvent(msg *Message) Event {
	return Event{Message: msg}
}

// NewStatusUpdateEvent builds a status-update event for the given task. Final
// is derived from the state's terminality.
func NewStatusUpdateEvent(taskID, contextID string, status TaskStatus) Event {
	return Event{Status: &TaskStatusUpdateEvent{
		Kind:      KindStatusUpdate,
		TaskID:    taskID,
		ContextID: contextID,
		Status:    status,
		Final:     status.State.IsTerminal(),
	}}
}

// NewArtifactUpdateEvent builds an artifact-update event for the given task.
func NewArtifactUpdateEvent(taskID, contextID string, artifact Artifact) Event {
	return Event{Artifact: &TaskArtifactUpdateEvent{
		Kind:      KindArtifactUpdate,
		TaskID:    taskID,
		ContextID: contextID,
		Artifact:  artifact,
		LastChunk: true,
	}}
}

// EventKind returns the kind tag of the populated variant, or "" for a zero
// Event.
func (e Event) EventKind() Kind {
	switch {
	case e.Task != nil:
		return KindTask
	case e.Message != nil:
		return KindMessage
	case e.Status != nil:
		return KindStatusUpdate
	case e.Artifact != nil:
		return KindArtifactUpdate
	default:
		return ""
	}
}

// IsTaskEvent returns true if the event is task-related (a task snapshot, a
// status update, or an artifact update) rather than a bare message.
func (e Event) IsTaskEvent() bool {
	return e.Task != nil || e.Status != nil || e.Artifact != nil
}

// TaskID returns the task id the event refers to, or "" for events not tied
// to a task.
func (e Event) TaskID() string {
	switch {
	case e.Task != nil:
		return e.Task.ID
	case e.Status != nil:
		return e.Status.TaskID
	case e.Artifact != nil:
		return e.Artifact.TaskID
	case e.Message != nil:
		return e.Message.TaskID
	default:
		return ""
	}
}

// Final reports whether the event marks the end of a task's stream: either a
// terminal status update or a task snapshot already in a terminal state.
func (e Event) Final() bool {
	switch {
	case e.Status != nil:
		return e.Status.Final
	case e.Task != nil:
		return e.Task.Status.State.IsTerminal()
	default:
		return false
	}
}
