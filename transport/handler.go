// Package transport carries the A2A protocol over HTTP: JSON-RPC 2.0 request
// handling, Server-Sent Events streaming, agent card discovery, and client
// helpers for driving remote agents.
package transport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/tandem-a2a/tandem/a2a"
)

// Default endpoint paths for the A2A handler.
const (
	DefaultRPCPath       = "/"
	DefaultAgentCardPath = "/.well-known/agent.json"
)

const mediaTypeEventStream = "text/event-stream"

// JSONRPCMethodHandler handles one JSON-RPC method: raw params in, result or
// error out. Returned *a2a.JSONRPCError values pass through to the wire
// unchanged; any other error becomes an internal error (-32603).
type JSONRPCMethodHandler func(ctx context.Context, params json.RawMessage) (interface{}, error)

// streamMethodHandler handles a streaming method. The SSE headers are already
// written when it runs; errors it returns are delivered as SSE data events.
type streamMethodHandler func(ctx context.Context, params json.RawMessage, w http.ResponseWriter, id any) error

// HandlerOption configures a Handler.
type HandlerOption func(*handlerConfig)

type handlerConfig struct {
	rpcPath              string
	agentCardPath        string
	agentCardCacheMaxAge int
	logger               *slog.Logger
	authenticator        Authenticator
}

// WithRPCPath sets the JSON-RPC endpoint path.
func WithRPCPath(path string) HandlerOption {
	return func(c *handlerConfig) { c.rpcPath = path }
}

// WithAgentCardPath sets the agent card endpoint path.
func WithAgentCardPath(path string) HandlerOption {
	return func(c *handlerConfig) { c.agentCardPath = path }
}

// WithAgentCardCacheMaxAge sets the Cache-Control max-age for the agent card
// in seconds. Zero disables the header.
func WithAgentCardCacheMaxAge(seconds int) HandlerOption {
	return func(c *handlerConfig) { c.agentCardCacheMaxAge = seconds }
}

// WithAuthenticator guards the JSON-RPC endpoint. The agent card stays
// readable without credentials so clients can discover the schemes.
func WithAuthenticator(auth Authenticator) HandlerOption {
	return func(c *handlerConfig) { c.authenticator = auth }
}

// WithLogger sets the handler's logger.
func WithLogger(logger *slog.Logger) HandlerOption {
	return func(c *handlerConfig) { c.logger = logger }
}

// Handler serves an AgentService over JSON-RPC 2.0 with SSE streaming for
// the two streaming methods. It also serves the agent card.
type Handler struct {
	service AgentService
	config  handlerConfig

	mu            sync.RWMutex
	jsonMethods   map[string]JSONRPCMethodHandler
	streamMethods map[string]streamMethodHandler
}

// NewHandler builds a Handler with all nine A2A methods registered.
func NewHandler(service AgentService, options ...HandlerOption) *Handler {
	config := handlerConfig{
		rpcPath:              DefaultRPCPath,
		agentCardPath:        DefaultAgentCardPath,
		agentCardCacheMaxAge: 3600,
		logger:               slog.Default(),
	}
	for _, option := range options {
		option(&config)
	}

	h := &Handler{
		service: service,
		config:  config,
		jsonMethods: map[string]JSONRPCMethodHandler{
			a2a.MethodGetTask:                        service2json(service.GetTask, "task query parameters"),
			a2a.MethodCancelTask:                     service2json(service.CancelTask, "task ID parameters"),
			a2a.MethodSetTaskPushNotificationConfig:  service2json(service.SetTaskPushNotificationConfig, "push notification config parameters"),
			a2a.MethodGetTaskPushNotificationConfig:  service2json(service.GetTaskPushNotificationConfig, "push notification config query parameters"),
			a2a.MethodListTaskPushNotificationConfig: service2json(service.ListTaskPushNotificationConfig, "task ID parameters"),
		},
	}
	// These two need more than the generic adapter: content negotiation and
	// an empty-object delete result.
	h.jsonMethods[a2a.MethodSendMessage] = h.handleSendMessage
	h.jsonMethods[a2a.MethodDeleteTaskPushNotificationConfig] = h.handleDeletePushConfig
	h.streamMethods = map[string]streamMethodHandler{
		a2a.MethodSendStreamingMessage: h.handleStreamingMessage,
		a2a.MethodTaskResubscription:   h.handleResubscribe,
	}
	return h
}

// service2json adapts a typed service method into a JSONRPCMethodHandler.
func service2json[P, R any](call func(context.Context, P) (R, error), what string) JSONRPCMethodHandler {
	return func(ctx context.Context, params json.RawMessage) (interface{}, error) {
		var p P
		if err := json.Unmarshal(params, &p); err != nil {
			return nil, a2a.NewJSONRPCInvalidParamsError("Failed to parse " + what)
		}
		return call(ctx, p)
	}
}

// RegisterMethod adds a custom JSON-RPC method. It panics when the method
// name is already taken, including the built-in A2A methods.
func (h *Handler) RegisterMethod(method string, handler JSONRPCMethodHandler) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, taken := h.jsonMethods[method]; taken {
		panic(fmt.Sprintf("method %s already registered", method))
	}
	if _, taken := h.streamMethods[method]; taken {
		panic(fmt.Sprintf("method %s already registered", method))
	}
	h.jsonMethods[method] = handler
}

func (h *Handler) lookupMethod(method string) (jsonHandler JSONRPCMethodHandler, streamHandler streamMethodHandler, found bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if sh, ok := h.streamMethods[method]; ok {
		return nil, sh, true
	}
	if jh, ok := h.jsonMethods[method]; ok {
		return jh, nil, true
	}
	return nil, nil, false
}

// ServeHTTP routes agent card GETs and JSON-RPC POSTs; everything else is a
// plain HTTP error.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet && r.URL.Path == h.config.agentCardPath {
		h.serveAgentCard(w, r)
		return
	}
	if r.URL.Path != h.config.rpcPath {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if h.config.authenticator != nil {
		authedReq, err := h.config.authenticator.Authenticate(r.Context(), r)
		if err != nil {
			h.replyUnauthorized(w, err)
			return
		}
		r = authedReq
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.replyError(w, nil, a2a.NewJSONRPCError(a2a.ErrorCodeParseError, nil))
		return
	}
	var req a2a.JSONRPCRequest
	if err := json.Unmarshal(body, &req); err != nil {
		h.replyError(w, nil, a2a.NewJSONRPCError(a2a.ErrorCodeParseError, err.Error()))
		return
	}
	if req.JSONRpc != "2.0" {
		h.replyError(w, req.ID, a2a.NewJSONRPCError(a2a.ErrorCodeInvalidRequest, nil))
		return
	}

	// Executors read these through RequestContext.HTTPHeaders.
	ctx := WithHTTPHeaders(r.Context(), r.Header)
	h.dispatch(ctx, req, w, r.Header.Get("Accept"))
}

func (h *Handler) dispatch(ctx context.Context, req a2a.JSONRPCRequest, w http.ResponseWriter, acceptHeader string) {
	jsonHandler, streamHandler, found := h.lookupMethod(req.Method)
	if !found {
		notFound := a2a.NewJSONRPCError(a2a.ErrorCodeMethodNotFound, nil)
		// Only speak SSE to a client that asked for it by name.
		if acceptsEventStream(acceptHeader, false) {
			h.writeSSEHeaders(w)
			h.replySSEError(w, req.ID, notFound)
		} else {
			h.replyError(w, req.ID, notFound)
		}
		return
	}

	streaming := streamHandler != nil
	if streaming && !acceptsEventStream(acceptHeader, true) {
		h.replyError(w, req.ID, a2a.NewJSONRPCError(a2a.ErrorCodeMethodNotFound, nil))
		return
	}
	if streaming {
		h.writeSSEHeaders(w)
	}

	paramsRaw, err := json.Marshal(req.Params)
	if err != nil {
		h.replyFailure(w, req.ID, streaming, a2a.NewJSONRPCError(a2a.ErrorCodeInvalidParams, err.Error()))
		return
	}

	if streaming {
		if err := streamHandler(ctx, paramsRaw, w, req.ID); err != nil {
			h.replyFailure(w, req.ID, true, asJSONRPCError(err))
		}
		return
	}

	result, err := jsonHandler(ctx, paramsRaw)
	if err != nil {
		h.replyFailure(w, req.ID, false, asJSONRPCError(err))
		return
	}
	h.replyResult(w, req.ID, result)
}

// asJSONRPCError passes protocol errors through and wraps everything else as
// an internal error carrying the original text.
func asJSONRPCError(err error) *a2a.JSONRPCError {
	var rpcErr *a2a.JSONRPCError
	if errors.As(err, &rpcErr) {
		return rpcErr
	}
	return a2a.NewJSONRPCError(a2a.ErrorCodeInternalError, err.Error())
}

// acceptsEventStream reports whether the Accept header admits SSE. Streaming
// methods also honor the text/* and */* ranges; error paths require the
// client to have named text/event-stream explicitly.
func acceptsEventStream(acceptHeader string, allowRanges bool) bool {
	if strings.Contains(acceptHeader, mediaTypeEventStream) {
		return true
	}
	if allowRanges {
		return strings.Contains(acceptHeader, "text/*") || strings.Contains(acceptHeader, "*/*")
	}
	return false
}

// negotiateOutputModes rejects requests whose accepted output modes share
// nothing with what the agent produces.
func (h *Handler) negotiateOutputModes(ctx context.Context, config *a2a.MessageSendConfiguration) error {
	if config == nil || len(config.AcceptedOutputModes) == 0 {
		return nil
	}
	supported, err := h.service.SupportedOutputModes(ctx)
	if err != nil {
		return err
	}
	_, err = FindCompatibleOutputModes(config.AcceptedOutputModes, supported)
	return err
}

func (h *Handler) handleSendMessage(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var req a2a.MessageSendParams
	if err := json.Unmarshal(params, &req); err != nil {
		return nil, a2a.NewJSONRPCInvalidParamsError("Failed to parse message send parameters")
	}
	if err := h.negotiateOutputModes(ctx, req.Configuration); err != nil {
		return nil, err
	}
	return h.service.SendMessage(ctx, req)
}

func (h *Handler) handleDeletePushConfig(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var req a2a.DeleteTaskPushNotificationConfigParams
	if err := json.Unmarshal(params, &req); err != nil {
		return nil, a2a.NewJSONRPCInvalidParamsError("Failed to parse delete task push notification config parameters")
	}
	if err := h.service.DeleteTaskPushNotificationConfig(ctx, req); err != nil {
		return nil, err
	}
	// The delete result is an empty object, not null.
	return map[string]any{}, nil
}

func (h *Handler) handleStreamingMessage(ctx context.Context, params json.RawMessage, w http.ResponseWriter, id any) error {
	var req a2a.MessageSendParams
	if err := json.Unmarshal(params, &req); err != nil {
		return a2a.NewJSONRPCInvalidParamsError("Failed to parse message send parameters")
	}
	if err := h.negotiateOutputModes(ctx, req.Configuration); err != nil {
		return err
	}
	events, err := h.service.SendStreamingMessage(ctx, req)
	if err != nil {
		return err
	}
	return writeSSEStream(w, id, events)
}

func (h *Handler) handleResubscribe(ctx context.Context, params json.RawMessage, w http.ResponseWriter, id any) error {
	var req a2a.TaskIDParams
	if err := json.Unmarshal(params, &req); err != nil {
		return a2a.NewJSONRPCInvalidParamsError("Failed to parse task ID parameters")
	}
	events, err := h.service.TaskResubscription(ctx, req)
	if err != nil {
		return err
	}
	return writeSSEStream(w, id, events)
}

func (h *Handler) serveAgentCard(w http.ResponseWriter, r *http.Request) {
	card, err := h.service.GetAgentCard(r.Context())
	if err != nil {
		h.config.logger.Error("Failed to get agent card", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.finalizeAgentCard(card, r)

	w.Header().Set("Content-Type", "application/json")
	if h.config.agentCardCacheMaxAge > 0 {
		w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", h.config.agentCardCacheMaxAge))
	}
	if err := json.NewEncoder(w).Encode(card); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// finalizeAgentCard fills in the request-dependent card fields: the protocol
// version, the endpoint URL (resolving PlaceholderURL against the incoming
// request, honoring reverse-proxy forwarding headers), and the security
// schemes of the configured authenticator.
func (h *Handler) finalizeAgentCard(card *a2a.AgentCard, r *http.Request) {
	card.ProtocolVersion = a2a.ProtocolVersion

	if card.URL == PlaceholderURL {
		scheme := "http"
		if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
			scheme = proto
		} else if r.TLS != nil {
			scheme = "https"
		}
		host := r.Host
		if forwarded := r.Header.Get("X-Forwarded-Host"); forwarded != "" {
			host = forwarded
		}
		card.URL = fmt.Sprintf("%s://%s/", scheme, host)
	}
	if finalURL, err := url.JoinPath(card.URL, h.config.rpcPath); err == nil {
		card.URL = finalURL
	}

	if h.config.authenticator != nil {
		card.SecuritySchemes = h.config.authenticator.GetSecuritySchemes()
		card.Security = h.config.authenticator.GetSecurityRequirements()
	}
}

func (h *Handler) replyResult(w http.ResponseWriter, id any, result any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(a2a.NewJSONRPCResponse(result, id)); err != nil {
		h.config.logger.Error("failed to write response", "error", err)
	}
}

// replyError writes a JSON-RPC error. Protocol errors ride on HTTP 200.
func (h *Handler) replyError(w http.ResponseWriter, id any, rpcErr *a2a.JSONRPCError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	resp := a2a.NewJSONRPCErrorResponse(rpcErr.Code, rpcErr.Message, rpcErr.Data, id)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.config.logger.Error("failed to write response", "error", err)
	}
}

// replySSEError delivers a JSON-RPC error as an SSE data event. Headers must
// already be written.
func (h *Handler) replySSEError(w http.ResponseWriter, id any, rpcErr *a2a.JSONRPCError) {
	resp := a2a.NewJSONRPCErrorResponse(rpcErr.Code, rpcErr.Message, rpcErr.Data, id)
	payload, err := json.Marshal(resp)
	if err != nil {
		h.config.logger.Error("failed to marshal SSE error response", "error", err)
		return
	}
	fmt.Fprintf(w, "data: %s\n\n", payload)
	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}

// replyFailure picks the JSON or SSE error path depending on what the
// response has committed to.
func (h *Handler) replyFailure(w http.ResponseWriter, id any, streaming bool, rpcErr *a2a.JSONRPCError) {
	if streaming {
		h.replySSEError(w, id, rpcErr)
	} else {
		h.replyError(w, id, rpcErr)
	}
}

func (h *Handler) writeSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", mediaTypeEventStream)
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

// replyUnauthorized maps an authentication failure to HTTP 401 with the A2A
// Unauthorized JSON-RPC error. AuthError details travel in the error data.
func (h *Handler) replyUnauthorized(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)

	var resp a2a.JSONRPCResponse
	var authErr *AuthError
	if errors.As(err, &authErr) {
		resp = a2a.NewJSONRPCErrorResponse(a2a.ErrorCodeUnauthorized, authErr.Message, map[string]interface{}{
			"code":   authErr.Code,
			"scheme": authErr.Scheme,
		}, nil)
	} else {
		resp = a2a.NewJSONRPCErrorResponse(a2a.ErrorCodeUnauthorized, a2a.ErrorCodeText(a2a.ErrorCodeUnauthorized), nil, nil)
	}
	payload, _ := json.Marshal(resp)
	w.Write(payload)
}

// writeSSEStream drains the event channel into the response, one JSON-RPC
// response per SSE data event, flushing after each.
func writeSSEStream(w http.ResponseWriter, id any, events <-chan a2a.Event) error {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return fmt.Errorf("streaming unsupported")
	}

	for event := range events {
		payload, err := json.Marshal(a2a.NewJSONRPCResponse(event, id))
		if err != nil {
			errResp := a2a.NewJSONRPCErrorResponse(a2a.ErrorCodeInternalError, a2a.ErrorCodeText(a2a.ErrorCodeInternalError), err.Error(), id)
			payload, err = json.Marshal(errResp)
			if err != nil {
				return err
			}
		}
		fmt.Fprintf(w, "data: %s\n\n", payload)
		flusher.Flush()
	}
	return nil
}

// WriteSSEError writes a standalone JSON-RPC error as an SSE data event. It
// is exported for custom streaming handlers built on RegisterMethod-style
// integrations.
func WriteSSEError(w http.ResponseWriter, id any, code int, message string, data any) error {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return fmt.Errorf("streaming unsupported")
	}
	payload, err := json.Marshal(a2a.NewJSONRPCErrorResponse(code, message, data, id))
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "data: %s\n\n", payload)
	flusher.Flush()
	return nil
}

// A2AMiddleware serves A2A endpoints and defers every other path to next, so
// an application can mount health checks or custom routes beside the agent.
func A2AMiddleware(service AgentService, options ...HandlerOption) func(http.Handler) http.Handler {
	a2aHandler := NewHandler(service, options...)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			isCard := r.Method == http.MethodGet && r.URL.Path == a2aHandler.config.agentCardPath
			isRPC := r.Method == http.MethodPost && r.URL.Path == a2aHandler.config.rpcPath
			if isCard || isRPC {
				a2aHandler.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
