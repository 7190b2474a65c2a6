package a2a

import (
	"fmt"
	"strings"
	"time"
)

// Message is a single conversational turn between user and agent. A message
// may be tied to a task via TaskID, or stand alone within a context.
type Message struct {
	Kind             Kind           `json:"kind"`
	MessageID        string         `json:"messageId"`
	ContextID        string         `json:"contextId,omitempty"`
	TaskID           string         `json:"taskId,omitempty"`
	Role             Role           `json:"role"`
	Parts            []Part         `json:"parts"`
	ReferenceTaskIDs []string       `json:"referenceTaskIds,omitempty"`
	Metadata         map[string]any `json:"metadata,omitempty"`
}

// Part is one segment of a message: text, a file reference, or structured data.
type Part struct {
	Kind     Kind           `json:"kind"`
	Text     string         `json:"text,omitempty"`
	File     *FilePart      `json:"file,omitempty"`
	Data     map[string]any `json:"data,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// FilePart carries a file either by URI or as base64 bytes, never both.
type FilePart struct {
	URI      string `json:"uri,omitempty"`
	Bytes    string `json:"bytes,omitempty"`
	Name     string `json:"name,omitempty"`
	MimeType string `json:"mimeType,omitempty"`
}

// Task is the persisted, versioned record of one unit of work.
type Task struct {
	Kind      Kind           `json:"kind"`
	ID        string         `json:"id"`
	ContextID string         `json:"contextId"`
	Status    TaskStatus     `json:"status"`
	History   []Message      `json:"history,omitempty"`
	Artifacts []Artifact     `json:"artifacts,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// TaskStatus is the current state of a task with an optional accompanying
// message and RFC 3339 timestamp.
type TaskStatus struct {
	State     TaskState `json:"state"`
	Message   *Message  `json:"message,omitempty"`
	Timestamp *string   `json:"timestamp,omitempty"`
}

// SetTimestamp records t as the status timestamp.
func (ts *TaskStatus) SetTimestamp(t time.Time) {
	timestamp := t.Format(time.RFC3339)
	ts.Timestamp = &timestamp
}

// GetTimestamp parses and returns the status timestamp, or nil if unset.
func (ts *TaskStatus) GetTimestamp() (*time.Time, error) {
	if ts.Timestamp == nil {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, *ts.Timestamp)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Artifact is an output produced for a task.
type Artifact struct {
	ArtifactID  string         `json:"artifactId"`
	Name        string         `json:"name,omitempty"`
	Description string         `json:"description,omitempty"`
	Parts       []Part         `json:"parts"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// TaskStatusUpdateEvent announces a task state transition on a stream.
type TaskStatusUpdateEvent struct {
	Kind      Kind           `json:"kind"`
	TaskID    string         `json:"taskId"`
	ContextID string         `json:"contextId"`
	Status    TaskStatus     `json:"status"`
	Final     bool           `json:"final"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// TaskArtifactUpdateEvent announces a new or updated artifact on a stream.
type TaskArtifactUpdateEvent struct {
	Kind      Kind           `json:"kind"`
	TaskID    string         `json:"taskId"`
	ContextID string         `json:"contextId"`
	Artifact  Artifact       `json:"artifact"`
	Append    bool           `json:"append,omitempty"`
	LastChunk bool           `json:"lastChunk,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// AgentCard conveys key information about an agent.
type AgentCard struct {
	Name               string                    `json:"name"`
	Version            string                    `json:"version"`
	Description        string                    `json:"description"`
	URL                string                    `json:"url"`
	ProtocolVersion    string                    `json:"protocolVersion"`
	IconURL            string                    `json:"iconUrl,omitempty"`
	DocumentationURL   string                    `json:"documentationUrl,omitempty"`
	DefaultInputModes  []string                  `json:"defaultInputModes"`
	DefaultOutputModes []string                  `json:"defaultOutputModes"`
	Skills             []AgentSkill              `json:"skills"`
	Capabilities       AgentCapabilities         `json:"capabilities"`
	Provider           *AgentProvider            `json:"provider,omitempty"`
	Security           []map[string][]string     `json:"security,omitempty"`
	SecuritySchemes    map[string]SecurityScheme `json:"securitySchemes,omitempty"`
}

// AgentSkill is one unit of capability an agent advertises.
type AgentSkill struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Examples    []string `json:"examples,omitempty"`
	InputModes  []string `json:"inputModes,omitempty"`
	OutputModes []string `json:"outputModes,omitempty"`
	Tags        []string `json:"tags"`
}

// AgentCapabilities declares optional protocol features an agent supports.
type AgentCapabilities struct {
	Streaming         bool `json:"streaming,omitempty"`
	PushNotifications bool `json:"pushNotifications,omitempty"`
}

// AgentProvider identifies the organization running an agent.
type AgentProvider struct {
	Organization string `json:"organization"`
	URL          string `json:"url"`
}

// SecurityScheme describes one way clients may authenticate.
type SecurityScheme struct {
	Type             SecurityType `json:"type"`
	Description      string       `json:"description,omitempty"`
	Name             string       `json:"name,omitempty"`
	In               string       `json:"in,omitempty"`
	Scheme           string       `json:"scheme,omitempty"`
	BearerFormat     string       `json:"bearerFormat,omitempty"`
	OpenIDConnectURL string       `json:"openIdConnectUrl,omitempty"`
}

// PushNotificationConfig is one webhook target registered for a task.
type PushNotificationConfig struct {
	URL            string                              `json:"url"`
	ID             string                              `json:"id,omitempty"`
	Token          string                              `json:"token,omitempty"`
	Authentication *PushNotificationAuthenticationInfo `json:"authentication,omitempty"`
}

// PushNotificationAuthenticationInfo defines credentials for push delivery.
type PushNotificationAuthenticationInfo struct {
	Schemes     []string `json:"schemes"`
	Credentials string   `json:"credentials,omitempty"`
}

// TaskPushNotificationConfig associates a push config with a task.
type TaskPushNotificationConfig struct {
	TaskID                 string                 `json:"taskId"`
	PushNotificationConfig PushNotificationConfig `json:"pushNotificationConfig"`
}

// MessageSendParams are the parameters of message/send and message/stream.
type MessageSendParams struct {
	Message       Message                   `json:"message"`
	Configuration *MessageSendConfiguration `json:"configuration,omitempty"`
	Metadata      map[string]any            `json:"metadata,omitempty"`
}

// MessageSendConfiguration tunes a single send request.
type MessageSendConfiguration struct {
	AcceptedOutputModes    []string                `json:"acceptedOutputModes"`
	Blocking               bool                    `json:"blocking,omitempty"`
	HistoryLength          *int                    `json:"historyLength,omitempty"` // pointer distinguishes unset from 0
	PushNotificationConfig *PushNotificationConfig `json:"pushNotificationConfig,omitempty"`
}

// TaskQueryParams are the parameters of tasks/get.
type TaskQueryParams struct {
	ID            string         `json:"id"`
	HistoryLength *int           `json:"historyLength,omitempty"`
	Metadata      map[string]any `json:"metadata,omitempty"`
}

// TaskIDParams carry only a task id.
type TaskIDParams struct {
	ID       string         `json:"id"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// GetTaskPushNotificationConfigParams are the parameters of
// tasks/pushNotificationConfig/get.
type GetTaskPushNotificationConfigParams struct {
	ID                       string `json:"id"`
	PushNotificationConfigID string `json:"pushNotificationConfigId,omitempty"`
}

// DeleteTaskPushNotificationConfigParams are the parameters of
// tasks/pushNotificationConfig/delete.
type DeleteTaskPushNotificationConfigParams struct {
	ID                       string `json:"id"`
	PushNotificationConfigID string `json:"pushNotificationConfigId"`
}

// SendMessageResult is the result of message/send: either a full task
// snapshot or a bare message, never both.
type SendMessageResult struct {
	Task    *Task    `json:"task,omitempty"`
	Message *Message `json:"message,omitempty"`
}

// Validate validates a Message structure according to the A2A specification.
func (m *Message) Validate() error {
	if m.Kind != KindMessage {
		return fmt.Errorf("message kind must be %q, got %q", KindMessage, m.Kind)
	}
	if m.MessageID == "" {
		return fmt.Errorf("messageId is required")
	}
	if m.Role == "" {
		return fmt.Errorf("role is required")
	}
	if !m.Role.IsValid() {
		return fmt.Errorf("invalid role %q, must be one of: %s, %s", m.Role, RoleUser, RoleAgent)
	}
	if len(m.Parts) == 0 {
		return fmt.Errorf("parts is required and must not be empty")
	}
	for i, part := range m.Parts {
		if err := part.Validate(); err != nil {
			return fmt.Errorf("parts[%d]: %w", i, err)
		}
	}
	return nil
}

// Validate validates a Part structure according to the A2A specification.
func (p *Part) Validate() error {
	switch p.Kind {
	case KindTextPart:
		if p.Text == "" {
			return fmt.Errorf("text is required for text part")
		}
		if p.File != nil || p.Data != nil {
			return fmt.Errorf("text part cannot have file or data fields")
		}
	case KindFilePart:
		if p.File == nil {
			return fmt.Errorf("file is required for file part")
		}
		if err := p.File.Validate(); err != nil {
			return fmt.Errorf("file: %w", err)
		}
		if p.Text != "" || p.Data != nil {
			return fmt.Errorf("file part cannot have text or data fields")
		}
	case KindDataPart:
		if p.Data == nil {
			return fmt.Errorf("data is required for data part")
		}
		if p.Text != "" || p.File != nil {
			return fmt.Errorf("data part cannot have text or file fields")
		}
	case "":
		return fmt.Errorf("kind is required")
	default:
		return fmt.Errorf("invalid part kind %q, must be one of: %s, %s, %s",
			p.Kind, KindTextPart, KindFilePart, KindDataPart)
	}
	return nil
}

// Validate validates a FilePart structure according to the A2A specification.
func (f *FilePart) Validate() error {
	hasURI := f.URI != ""
	hasBytes := f.Bytes != ""
	if hasURI && hasBytes {
		return fmt.Errorf("file part cannot have both uri and bytes")
	}
	if !hasURI && !hasBytes {
		return fmt.Errorf("file part must have either uri or bytes")
	}
	return nil
}

// Validate validates a Task structure according to the A2A specification.
func (t *Task) Validate() error {
	if t.Kind != KindTask {
		return fmt.Errorf("task kind must be %q, got %q", KindTask, t.Kind)
	}
	if t.ID == "" {
		return fmt.Errorf("id is required")
	}
	if t.ContextID == "" {
		return fmt.Errorf("contextId is required")
	}
	if err := t.Status.Validate(); err != nil {
		return fmt.Errorf("status: %w", err)
	}
	for i, message := range t.History {
		if err := message.Validate(); err != nil {
			return fmt.Errorf("history[%d]: %w", i, err)
		}
	}
	for i, artifact := range t.Artifacts {
		if err := artifact.Validate(); err != nil {
			return fmt.Errorf("artifacts[%d]: %w", i, err)
		}
	}
	return nil
}

// Validate validates a TaskStatus structure according to the A2A specification.
func (ts *TaskStatus) Validate() error {
	if ts.State == "" {
		return fmt.Errorf("state is required")
	}
	if !ts.State.IsValid() {
		var states []string
		for _, s := range []TaskState{
			TaskStateSubmitted, TaskStateWorking, TaskStateInputRequired,
			TaskStateCompleted, TaskStateFailed, TaskStateCanceled,
		} {
			states = append(states, s.String())
		}
		return fmt.Errorf("invalid task state %q, must be one of: %s", ts.State, strings.Join(states, ", "))
	}
	if ts.Message != nil {
		if err := ts.Message.Validate(); err != nil {
			return fmt.Errorf("message: %w", err)
		}
	}
	return nil
}

// Validate validates an Artifact structure according to the A2A specification.
func (a *Artifact) Validate() error {
	if a.ArtifactID == "" {
		return fmt.Errorf("artifactId is required")
	}
	if len(a.Parts) == 0 {
		return fmt.Errorf("parts is required and must not be empty")
	}
	for i, part := range a.Parts {
		if err := part.Validate(); err != nil {
			return fmt.Errorf("parts[%d]: %w", i, err)
		}
	}
	return nil
}
