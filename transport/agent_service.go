package transport

import (
	"context"

	"github.com/tandem-a2a/tandem/a2a"
)

// PlaceholderURL marks an agent card URL the transport layer should rewrite
// from the incoming request before serving the card.
const PlaceholderURL = "http://0.0.0.0"

//go:generate go tool mockgen -source=agent_service.go -destination=./mock_agent_service_test.go -package transport

// AgentService is the surface the JSON-RPC handler dispatches into, one
// method per A2A operation. Implementations speak a2a types directly; the
// handler owns the JSON-RPC envelope, SSE framing, and HTTP concerns.
//
// The two streaming methods return a channel that carries events from the
// moment of attachment onward (no historical replay) and is closed when the
// stream ends or the caller's context is canceled.
type AgentService interface {
	// SendMessage handles message/send. Blocking behavior follows
	// params.Configuration; the default is to wait for the outcome.
	SendMessage(ctx context.Context, params a2a.MessageSendParams) (*a2a.SendMessageResult, error)

	// SendStreamingMessage handles message/stream.
	SendStreamingMessage(ctx context.Context, params a2a.MessageSendParams) (<-chan a2a.Event, error)

	// GetTask handles tasks/get.
	GetTask(ctx context.Context, params a2a.TaskQueryParams) (*a2a.Task, error)

	// CancelTask handles tasks/cancel and returns the post-cancel snapshot.
	CancelTask(ctx context.Context, params a2a.TaskIDParams) (*a2a.Task, error)

	// TaskResubscription handles tasks/resubscribe by attaching to the live
	// stream of a task whose session is still running.
	TaskResubscription(ctx context.Context, params a2a.TaskIDParams) (<-chan a2a.Event, error)

	// Push notification config CRUD (tasks/pushNotificationConfig/*).
	SetTaskPushNotificationConfig(ctx context.Context, params a2a.TaskPushNotificationConfig) (*a2a.TaskPushNotificationConfig, error)
	GetTaskPushNotificationConfig(ctx context.Context, params a2a.GetTaskPushNotificationConfigParams) (*a2a.TaskPushNotificationConfig, error)
	ListTaskPushNotificationConfig(ctx context.Context, params a2a.TaskIDParams) ([]a2a.TaskPushNotificationConfig, error)
	DeleteTaskPushNotificationConfig(ctx context.Context, params a2a.DeleteTaskPushNotificationConfigParams) error

	// GetAgentCard returns the card served at the well-known endpoint.
	GetAgentCard(ctx context.Context) (*a2a.AgentCard, error)

	// SupportedOutputModes feeds output-mode content negotiation.
	SupportedOutputModes(ctx context.Context) ([]string, error)
}
