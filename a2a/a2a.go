// Package a2a implements the A2A (Agent-to-Agent) protocol data model used by
// tandem: tasks, messages, streaming events, agent cards, and the JSON-RPC 2.0
// envelope the protocol is carried in.
package a2a

// Kind discriminates the A2A object unions.
type Kind string

const (
	KindMessage        Kind = "message"
	KindTask           Kind = "task"
	KindTextPart       Kind = "text"
	KindFilePart       Kind = "file"
	KindDataPart       Kind = "data"
	KindStatusUpdate   Kind = "status-update"
	KindArtifactUpdate Kind = "artifact-update"
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	return string(k)
}

// Role identifies the sender of a message.
type Role string

const (
	RoleUser  Role = "user"
	RoleAgent Role = "agent"
)

// IsValid returns true if the role is valid.
func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAgent
}

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// TaskState represents a task's position in its lifecycle. Submitted, Working
// and InputRequired are live states; Completed, Failed and Canceled are
// terminal and never change again.
type TaskState string

const (
	TaskStateSubmitted     TaskState = "submitted"
	TaskStateWorking       TaskState = "working"
	TaskStateInputRequired TaskState = "input-required"
	TaskStateCompleted     TaskState = "completed"
	TaskStateFailed        TaskState = "failed"
	TaskStateCanceled      TaskState = "canceled"
)

// IsValid returns true if the task state is one of the defined states.
func (state TaskState) IsValid() bool {
	switch state {
	case TaskStateSubmitted, TaskStateWorking, TaskStateInputRequired,
		TaskStateCompleted, TaskStateFailed, TaskStateCanceled:
		return true
	default:
		return false
	}
}

// IsTerminal returns true if no further state transitions are possible.
func (state TaskState) IsTerminal() bool {
	switch state {
	case TaskStateCompleted, TaskStateFailed, TaskStateCanceled:
		return true
	default:
		return false
	}
}

// IsInterrupted returns true if the task yielded waiting for more input.
func (state TaskState) IsInterrupted() bool {
	return state == TaskStateInputRequired
}

// CanCancel returns true if the task may still transition to Canceled.
func (state TaskState) CanCancel() bool {
	return !state.IsTerminal()
}

// String returns the string representation of the task state.
func (state TaskState) String() string {
	return string(state)
}

// SecurityType represents security scheme types advertised in the agent card.
type SecurityType string

const (
	SecurityTypeAPIKey        SecurityType = "apiKey"
	SecurityTypeHTTP          SecurityType = "http"
	SecurityTypeOAuth2        SecurityType = "oauth2"
	SecurityTypeOpenIDConnect SecurityType = "openIdConnect"
)

// ProtocolVersion is the A2A protocol revision this package implements.
const ProtocolVersion = "0.2.5"

// A2A method names.
const (
	MethodSendMessage                      = "message/send"
	MethodSendStreamingMessage             = "message/stream"
	MethodGetTask                          = "tasks/get"
	MethodCancelTask                       = "tasks/cancel"
	MethodTaskResubscription               = "tasks/resubscribe"
	MethodSetTaskPushNotificationConfig    = "tasks/pushNotificationConfig/set"
	MethodGetTaskPushNotificationConfig    = "tasks/pushNotificationConfig/get"
	MethodListTaskPushNotificationConfig   = "tasks/pushNotificationConfig/list"
	MethodDeleteTaskPushNotificationConfig = "tasks/pushNotificationConfig/delete"
)

// JSON-RPC error codes, standard and A2A-specific.
const (
	ErrorCodeParseError     = -32700
	ErrorCodeInvalidRequest = -32600
	ErrorCodeMethodNotFound = -32601
	ErrorCodeInvalidParams  = -32602
	ErrorCodeInternalError  = -32603

	ErrorCodeTaskNotFound                 = -32001
	ErrorCodeTaskNotCancelable            = -32002
	ErrorCodePushNotificationNotSupported = -32003
	ErrorCodeUnsupportedOperation         = -32004
	ErrorCodeContentTypeNotSupported      = -32005
	ErrorCodeInvalidAgentResponse         = -32006
	ErrorCodeUnauthorized                 = -32007
)

// ErrorCodeText returns the canonical message for an error code.
func ErrorCodeText(code int) string {
	switch code {
	case ErrorCodeParseError:
		return "Invalid JSON payload"
	case ErrorCodeInvalidRequest:
		return "Request payload validation error"
	case ErrorCodeMethodNotFound:
		return "Method not found"
	case ErrorCodeInvalidParams:
		return "Invalid parameters"
	case ErrorCodeInternalError:
		return "Internal error"
	case ErrorCodeTaskNotFound:
		return "Task not found"
	case ErrorCodeTaskNotCancelable:
		return "Task cannot be canceled"
	case ErrorCodePushNotificationNotSupported:
		return "Push Notification is not supported"
	case ErrorCodeUnsupportedOperation:
		return "This operation is not supported"
	case ErrorCodeContentTypeNotSupported:
		return "Incompatible content types"
	case ErrorCodeInvalidAgentResponse:
		return "Invalid agent response"
	case ErrorCodeUnauthorized:
		return "Authentication required"
	default:
		return "Unknown error"
	}
}
