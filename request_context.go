package tandem

import (
	"context"
	"fmt"
	"net/http"

	"github.com/tandem-a2a/tandem/a2a"
)

// RequestContext is the immutable per-request bundle handed to an
// AgentExecutor: the context and task the request is scoped to, the original
// request parameters, the HTTP headers of the triggering call, and
// context-scoped views of task and message storage.
type RequestContext struct {
	contextID string
	taskID    string
	params    a2a.MessageSendParams
	headers   http.Header
	tasks     TaskStore
	messages  MessageStore
}

// RequestContextParams configures NewRequestContext.
type RequestContextParams struct {
	ContextID   string
	TaskID      string
	Params      a2a.MessageSendParams
	HTTPHeaders http.Header
}

func (s *AgentService) NewRequestContext(params RequestContextParams) *RequestContext {
	return &RequestContext{
		contextID: params.ContextID,
		taskID:    params.TaskID,
		params:    params.Params,
		headers:   params.HTTPHeaders,
		tasks:     s.Storage,
		messages:  s.Storage,
	}
}

func (rc *RequestContext) ContextID() string {
	return rc.contextID
}

func (rc *RequestContext) TaskID() string {
	return rc.taskID
}

// Params returns the message-send parameters that triggered this request.
func (rc *RequestContext) Params() a2a.MessageSendParams {
	return rc.params
}

// HTTPHeaders returns a copy of the HTTP headers of the triggering call, or
// nil when the request did not arrive over HTTP.
func (rc *RequestContext) HTTPHeaders() http.Header {
	if rc.headers == nil {
		return nil
	}
	return rc.headers.Clone()
}

// Task returns the current snapshot of the task this request is scoped to.
func (rc *RequestContext) Task(ctx context.Context, historyLength int) (*a2a.Task, error) {
	task, err := rc.tasks.GetTask(ctx, rc.taskID, historyLength, true)
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return task, nil
}

// Messages lists the conversational messages of this request's context.
func (rc *RequestContext) Messages(ctx context.Context) ([]a2a.Message, error) {
	return rc.messages.ListMessages(ctx, rc.contextID)
}

// AppendMessage appends a message to this request's context. The message's
// ContextID is forced to the request's context id.
func (rc *RequestContext) AppendMessage(ctx context.Context, msg a2a.Message) error {
	msg.ContextID = rc.contextID
	return rc.messages.AppendMessage(ctx, rc.contextID, msg)
}
