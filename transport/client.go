package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/tandem-a2a/tandem/a2a"
)

// Client drives a remote A2A agent over JSON-RPC. It covers the non-streaming
// methods plus agent card discovery; request ids are generated per call.
type Client struct {
	baseURL string
	config  clientConfig
}

type clientConfig struct {
	httpClient            *http.Client
	rpcPath               string
	agentCardPath         string
	logger                *slog.Logger
	userAgent             string
	defaultRequestTimeout time.Duration
}

// ClientOption configures a Client.
type ClientOption func(*clientConfig)

// WithHTTPClient swaps the underlying *http.Client, for custom transports or
// test header injection.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *clientConfig) { c.httpClient = client }
}

// WithClientRPCPath sets the JSON-RPC endpoint path on the remote.
func WithClientRPCPath(path string) ClientOption {
	return func(c *clientConfig) { c.rpcPath = path }
}

// WithClientAgentCardPath sets the agent card path on the remote.
func WithClientAgentCardPath(path string) ClientOption {
	return func(c *clientConfig) { c.agentCardPath = path }
}

// WithClientLogger sets the client's logger.
func WithClientLogger(logger *slog.Logger) ClientOption {
	return func(c *clientConfig) { c.logger = logger }
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(userAgent string) ClientOption {
	return func(c *clientConfig) { c.userAgent = userAgent }
}

// WithDefaultRequestTimeout sets the per-request timeout.
func WithDefaultRequestTimeout(timeout time.Duration) ClientOption {
	return func(c *clientConfig) { c.defaultRequestTimeout = timeout }
}

// NewClient builds a client for the agent at baseURL.
func NewClient(baseURL string, options ...ClientOption) *Client {
	config := clientConfig{
		httpClient:            &http.Client{Timeout: 30 * time.Second},
		rpcPath:               DefaultRPCPath,
		agentCardPath:         DefaultAgentCardPath,
		logger:                slog.Default(),
		userAgent:             "Tandem-Client/1.0",
		defaultRequestTimeout: 30 * time.Second,
	}
	for _, option := range options {
		option(&config)
	}
	return &Client{baseURL: baseURL, config: config}
}

func (c *Client) endpoint(p string) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base URL: %w", err)
	}
	u.Path = path.Join(u.Path, p)
	return u.String(), nil
}

// call posts one JSON-RPC request and hands back the raw response. A JSON-RPC
// level error in the response is returned as a *a2a.JSONRPCError.
func (c *Client) call(ctx context.Context, method string, params any) (*a2a.JSONRPCResponse, error) {
	reqURL, err := c.endpoint(c.config.rpcPath)
	if err != nil {
		return nil, err
	}

	rpcReq := a2a.NewJSONRPCRequest(method, params, fmt.Sprintf("req-%d", time.Now().UnixNano()))
	body, err := json.Marshal(rpcReq)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON-RPC request: %w", err)
	}

	c.config.logger.Debug("Sending JSON-RPC request", "method", method, "url", reqURL, "id", rpcReq.ID)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if c.config.userAgent != "" {
		httpReq.Header.Set("User-Agent", c.config.userAgent)
	}

	httpResp, err := c.config.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	c.config.logger.Debug("Received JSON-RPC response",
		"status", httpResp.StatusCode,
		"contentType", httpResp.Header.Get("Content-Type"),
		"bodySize", len(respBody))

	var rpcResp a2a.JSONRPCResponse
	if err := json.Unmarshal(respBody, &rpcResp); err != nil {
		return nil, fmt.Errorf("failed to parse JSON-RPC response: %w", err)
	}
	if rpcResp.Error != nil {
		return nil, rpcResp.Error
	}
	return &rpcResp, nil
}

// decodeResult reshapes the untyped result into the expected type.
func decodeResult[T any](resp *a2a.JSONRPCResponse) (*T, error) {
	raw, err := json.Marshal(resp.Result)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	var result T
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("failed to parse response result: %w", err)
	}
	return &result, nil
}

// SendMessage invokes message/send.
func (c *Client) SendMessage(ctx context.Context, params a2a.MessageSendParams) (*a2a.SendMessageResult, error) {
	resp, err := c.call(ctx, a2a.MethodSendMessage, params)
	if err != nil {
		return nil, err
	}
	return decodeResult[a2a.SendMessageResult](resp)
}

// GetTask invokes tasks/get.
func (c *Client) GetTask(ctx context.Context, params a2a.TaskQueryParams) (*a2a.Task, error) {
	resp, err := c.call(ctx, a2a.MethodGetTask, params)
	if err != nil {
		return nil, err
	}
	return decodeResult[a2a.Task](resp)
}

// CancelTask invokes tasks/cancel.
func (c *Client) CancelTask(ctx context.Context, params a2a.TaskIDParams) (*a2a.Task, error) {
	resp, err := c.call(ctx, a2a.MethodCancelTask, params)
	if err != nil {
		return nil, err
	}
	return decodeResult[a2a.Task](resp)
}

// GetAgentCard fetches the agent card from the well-known endpoint.
func (c *Client) GetAgentCard(ctx context.Context) (*a2a.AgentCard, error) {
	cardURL, err := c.endpoint(c.config.agentCardPath)
	if err != nil {
		return nil, err
	}

	c.config.logger.Debug("Fetching agent card", "url", cardURL)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, cardURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if c.config.userAgent != "" {
		httpReq.Header.Set("User-Agent", c.config.userAgent)
	}

	httpResp, err := c.config.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("agent card request failed with status %d", httpResp.StatusCode)
	}

	var card a2a.AgentCard
	if err := json.NewDecoder(httpResp.Body).Decode(&card); err != nil {
		return nil, fmt.Errorf("failed to parse agent card: %w", err)
	}
	return &card, nil
}

// SetTaskPushNotificationConfig invokes tasks/pushNotificationConfig/set.
func (c *Client) SetTaskPushNotificationConfig(ctx context.Context, params a2a.TaskPushNotificationConfig) (*a2a.TaskPushNotificationConfig, error) {
	resp, err := c.call(ctx, a2a.MethodSetTaskPushNotificationConfig, params)
	if err != nil {
		return nil, err
	}
	return decodeResult[a2a.TaskPushNotificationConfig](resp)
}

// GetTaskPushNotificationConfig invokes tasks/pushNotificationConfig/get.
func (c *Client) GetTaskPushNotificationConfig(ctx context.Context, params a2a.GetTaskPushNotificationConfigParams) (*a2a.TaskPushNotificationConfig, error) {
	resp, err := c.call(ctx, a2a.MethodGetTaskPushNotificationConfig, params)
	if err != nil {
		return nil, err
	}
	return decodeResult[a2a.TaskPushNotificationConfig](resp)
}

// ListTaskPushNotificationConfig invokes tasks/pushNotificationConfig/list.
func (c *Client) ListTaskPushNotificationConfig(ctx context.Context, params a2a.TaskIDParams) ([]a2a.TaskPushNotificationConfig, error) {
	resp, err := c.call(ctx, a2a.MethodListTaskPushNotificationConfig, params)
	if err != nil {
		return nil, err
	}
	configs, err := decodeResult[[]a2a.TaskPushNotificationConfig](resp)
	if err != nil {
		return nil, err
	}
	return *configs, nil
}

// DeleteTaskPushNotificationConfig invokes tasks/pushNotificationConfig/delete.
func (c *Client) DeleteTaskPushNotificationConfig(ctx context.Context, params a2a.DeleteTaskPushNotificationConfigParams) error {
	_, err := c.call(ctx, a2a.MethodDeleteTaskPushNotificationConfig, params)
	return err
}
