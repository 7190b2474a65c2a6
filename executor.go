package tandem

import (
	"context"

	"github.com/tandem-a2a/tandem/a2a"
)

//go:generate go tool mockgen -source=executor.go -destination=mock_executor_test.go -package=tandem

// AgentMetadata represents Agent-specific metadata.
// AgentService is responsible for server-side settings like URLs, version, etc.
type AgentMetadata struct {
	Name               string             `json:"name"`
	Description        string             `json:"description"`
	Skills             []a2a.AgentSkill   `json:"skills"`
	DefaultInputModes  []string           `json:"default_input_modes,omitempty"`
	DefaultOutputModes []string           `json:"default_output_modes,omitempty"`
	Version            string             `json:"version"`
	Provider           *a2a.AgentProvider `json:"provider,omitempty"` // Optional provider information
}

// AgentExecutor is the unit that performs the actual work of a task. Execute
// runs until the agent completes, fails, or voluntarily yields (for example
// after moving the task to input-required); it publishes progress by sending
// events to the processor. Cancel is invoked when a client cancels a task
// whose session is still registered; it may close the session itself, and the
// caller closes the session afterward regardless.
type AgentExecutor interface {
	GetMetadata(ctx context.Context) (*AgentMetadata, error)
	Execute(ctx context.Context, rc *RequestContext, processor *EventProcessor) error
	Cancel(ctx context.Context, rc *RequestContext, session *Session) error
}

type executorFunc struct {
	metadata *AgentMetadata
	f        func(ctx context.Context, rc *RequestContext, processor *EventProcessor) error
}

// NewAgentExecutor builds an AgentExecutor from a function. Cancel is a no-op
// so cancellation always succeeds and the service closes the session.
func NewAgentExecutor(metadata *AgentMetadata, f func(ctx context.Context, rc *RequestContext, processor *EventProcessor) error) AgentExecutor {
	if metadata == nil {
		metadata = &AgentMetadata{}
	}
	if metadata.Name == "" {
		metadata.Name = "Unnamed Agent"
	}
	if metadata.Version == "" {
		metadata.Version = "1.0.0"
	}
	return &executorFunc{
		metadata: metadata,
		f:        f,
	}
}

func (e *executorFunc) GetMetadata(_ context.Context) (*AgentMetadata, error) {
	return e.metadata, nil
}

func (e *executorFunc) Execute(ctx context.Context, rc *RequestContext, processor *EventProcessor) error {
	return e.f(ctx, rc, processor)
}

func (e *executorFunc) Cancel(_ context.Context, _ *RequestContext, _ *Session) error {
	return nil
}
