package tandem

import (
	"context"
	"fmt"
	"sync"

	"github.com/tandem-a2a/tandem/a2a"
	"github.com/tandem-a2a/tandem/transport"
)

// RemoteExecutor implements AgentExecutor by proxying execution to another
// A2A agent over HTTP via transport.Client. Local tasks map one-to-one onto
// remote tasks so that cancellation can be relayed.
type RemoteExecutor struct {
	client *transport.Client

	// Cached metadata from GetAgentCard
	cachedMetadata *AgentMetadata
	metadataMu     sync.RWMutex

	// Local task id -> remote task id, for relaying cancellation
	remoteTasks   map[string]string
	remoteTasksMu sync.Mutex
}

// NewRemoteExecutor creates a RemoteExecutor that forwards work to the agent
// at baseURL.
func NewRemoteExecutor(baseURL string, opts ...transport.ClientOption) *RemoteExecutor {
	return &RemoteExecutor{
		client:      transport.NewClient(baseURL, opts...),
		remoteTasks: make(map[string]string),
	}
}

// GetMetadata retrieves and caches agent metadata from the remote agent
func (r *RemoteExecutor) GetMetadata(ctx context.Context) (*AgentMetadata, error) {
	r.metadataMu.RLock()
	if r.cachedMetadata != nil {
		cached := r.cachedMetadata
		r.metadataMu.RUnlock()
		return cached, nil
	}
	r.metadataMu.RUnlock()

	agentCard, err := r.client.GetAgentCard(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get agent card from remote agent: %w", err)
	}

	metadata := agentCardToMetadata(agentCard)

	r.metadataMu.Lock()
	r.cachedMetadata = metadata
	r.metadataMu.Unlock()

	return metadata, nil
}

// Execute forwards the incoming message to the remote agent and republishes
// the outcome on the local event stream.
func (r *RemoteExecutor) Execute(ctx context.Context, rc *RequestContext, processor *EventProcessor) error {
	// The mapping is only needed while the session can still be canceled;
	// drop it on the way out so the table does not grow with finished tasks.
	defer r.forgetRemoteTask(rc.TaskID())

	msg := rc.Params().Message
	// The remote agent owns its own task and context identifiers
	msg.TaskID = ""
	msg.ContextID = ""

	result, err := r.client.SendMessage(ctx, a2a.MessageSendParams{
		Message: msg,
		Configuration: &a2a.MessageSendConfiguration{
			Blocking: true,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to send message to remote agent: %w", err)
	}

	if result.Task != nil {
		r.remoteTasksMu.Lock()
		r.remoteTasks[rc.TaskID()] = result.Task.ID
		r.remoteTasksMu.Unlock()
	}

	reply := extractRemoteReply(result)
	reply.TaskID = rc.TaskID()
	reply.ContextID = rc.ContextID()
	if err := rc.AppendMessage(ctx, *reply); err != nil {
		return fmt.Errorf("failed to append remote reply: %w", err)
	}
	if err := processor.SendMessage(ctx, *reply); err != nil {
		return err
	}

	if result.Task != nil && result.Task.Status.State == a2a.TaskStateFailed {
		return fmt.Errorf("remote agent reported failure for task %s", result.Task.ID)
	}
	return nil
}

// Cancel relays cancellation to the remote agent when a remote task is known.
func (r *RemoteExecutor) Cancel(ctx context.Context, rc *RequestContext, session *Session) error {
	r.remoteTasksMu.Lock()
	remoteTaskID, ok := r.remoteTasks[rc.TaskID()]
	r.remoteTasksMu.Unlock()
	if !ok {
		// Remote side never produced a task; nothing to relay
		return nil
	}

	if _, err := r.client.CancelTask(ctx, a2a.TaskIDParams{ID: remoteTaskID}); err != nil {
		return fmt.Errorf("failed to cancel remote task %s: %w", remoteTaskID, err)
	}
	r.forgetRemoteTask(rc.TaskID())
	return nil
}

func (r *RemoteExecutor) forgetRemoteTask(localTaskID string) {
	r.remoteTasksMu.Lock()
	delete(r.remoteTasks, localTaskID)
	r.remoteTasksMu.Unlock()
}

// agentCardToMetadata converts a2a.AgentCard to AgentMetadata
func agentCardToMetadata(card *a2a.AgentCard) *AgentMetadata {
	if card == nil {
		return &AgentMetadata{
			Name:               "Unknown Remote Agent",
			Version:            "1.0.0",
			DefaultInputModes:  []string{"text/plain"},
			DefaultOutputModes: []string{"text/plain"},
		}
	}

	return &AgentMetadata{
		Name:               card.Name,
		Description:        card.Description,
		Version:            card.Version,
		Provider:           card.Provider,
		Skills:             card.Skills,
		DefaultInputModes:  card.DefaultInputModes,
		DefaultOutputModes: card.DefaultOutputModes,
	}
}

// extractRemoteReply converts a2a.SendMessageResult to the agent's reply message
func extractRemoteReply(result *a2a.SendMessageResult) *a2a.Message {
	if result == nil {
		return &a2a.Message{
			Kind:      a2a.KindMessage,
			MessageID: "remote-error",
			Role:      a2a.RoleAgent,
			Parts:     []a2a.Part{a2a.NewTextPart("No response from remote agent")},
		}
	}

	// If result has a Message, return it directly
	if result.Message != nil {
		return result.Message
	}

	// If result has a Task, extract the agent's response
	if result.Task != nil {
		if result.Task.Status.Message != nil {
			return result.Task.Status.Message
		}

		// Find the most recent agent message in history
		for i := len(result.Task.History) - 1; i >= 0; i-- {
			if result.Task.History[i].Role == a2a.RoleAgent {
				return &result.Task.History[i]
			}
		}
	}

	// Fallback: create a basic response message
	return &a2a.Message{
		Kind:      a2a.KindMessage,
		MessageID: "remote-fallback",
		Role:      a2a.RoleAgent,
		Parts:     []a2a.Part{a2a.NewTextPart("Task completed on remote agent")},
	}
}
