package a2a

import (
	"fmt"
	"strings"
)

// JSONRPCRequest represents a JSON-RPC 2.0 Request object.
type JSONRPCRequest struct {
	JSONRpc string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  any    `json:"params,omitempty"`
	ID      any    `json:"id"`
}

// JSONRPCResponse represents a JSON-RPC 2.0 Response object.
type JSONRPCResponse struct {
	JSONRpc string        `json:"jsonrpc"`
	Result  any           `json:"result,omitempty"`
	Error   *JSONRPCError `json:"error,omitempty"`
	ID      any           `json:"id"`
}

// JSONRPCError represents a JSON-RPC 2.0 Error object. It doubles as the
// protocol-visible error type throughout tandem.
type JSONRPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// Error implements the error interface.
func (e *JSONRPCError) Error() string {
	if e.Data != nil {
		return fmt.Sprintf("JSON-RPC error %d: %s (data: %v)", e.Code, e.Message, e.Data)
	}
	return fmt.Sprintf("JSON-RPC error %d: %s", e.Code, e.Message)
}

// Validate validates a JSON-RPC request according to the A2A specification.
func (r *JSONRPCRequest) Validate() error {
	if r.JSONRpc != "2.0" {
		return fmt.Errorf("jsonrpc must be \"2.0\", got %q", r.JSONRpc)
	}
	if r.Method == "" {
		return fmt.Errorf("method is required")
	}
	if !isValidMethod(r.Method) {
		return fmt.Errorf("invalid A2A method %q, must be one of: %s", r.Method, strings.Join(validMethods(), ", "))
	}
	if r.ID == nil {
		return fmt.Errorf("id is required")
	}
	return nil
}

func isValidMethod(method string) bool {
	for _, m := range validMethods() {
		if m == method {
			return true
		}
	}
	return false
}

func validMethods() []string {
	return []string{
		MethodSendMessage, MethodSendStreamingMessage, MethodGetTask,
		MethodCancelTask, MethodTaskResubscription,
		MethodSetTaskPushNotificationConfig, MethodGetTaskPushNotificationConfig,
		MethodListTaskPushNotificationConfig, MethodDeleteTaskPushNotificationConfig,
	}
}

// NewJSONRPCError creates a new JSON-RPC error with the canonical message for
// the code and optional data.
func NewJSONRPCError(code int, data any) *JSONRPCError {
	return &JSONRPCError{
		Code:    code,
		Message: ErrorCodeText(code),
		Data:    data,
	}
}

// NewJSONRPCErrorWithMessage creates a new JSON-RPC error with a custom message.
func NewJSONRPCErrorWithMessage(code int, message string, data any) *JSONRPCError {
	return &JSONRPCError{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// NewJSONRPCInternalError creates an internal error with a custom message.
func NewJSONRPCInternalError(message string, data any) *JSONRPCError {
	return NewJSONRPCErrorWithMessage(ErrorCodeInternalError, message, data)
}

// NewJSONRPCInvalidParamsError creates an invalid-params error with a custom message.
func NewJSONRPCInvalidParamsError(message string) *JSONRPCError {
	return NewJSONRPCErrorWithMessage(ErrorCodeInvalidParams, message, nil)
}

// NewJSONRPCTaskNotFoundError creates a task-not-found error carrying the task id.
func NewJSONRPCTaskNotFoundError(taskID string) *JSONRPCError {
	return NewJSONRPCError(ErrorCodeTaskNotFound, map[string]string{"taskId": taskID})
}

// NewJSONRPCMethodNotFoundError creates a method-not-found error carrying the method name.
func NewJSONRPCMethodNotFoundError(method string) *JSONRPCError {
	return NewJSONRPCError(ErrorCodeMethodNotFound, map[string]string{"method": method})
}

// NewJSONRPCRequest creates a new JSON-RPC request.
func NewJSONRPCRequest(method string, params any, id any) JSONRPCRequest {
	return JSONRPCRequest{
		JSONRpc: "2.0",
		Method:  method,
		Params:  params,
		ID:      id,
	}
}

// NewJSONRPCResponse creates a new JSON-RPC success response.
func NewJSONRPCResponse(result any, id any) JSONRPCResponse {
	return JSONRPCResponse{
		JSONRpc: "2.0",
		Result:  result,
		ID:      id,
	}
}

// NewJSONRPCErrorResponse creates a new JSON-RPC error response.
func NewJSONRPCErrorResponse(code int, message string, data any, id any) JSONRPCResponse {
	return JSONRPCResponse{
		JSONRpc: "2.0",
		Error: &JSONRPCError{
			Code:    code,
			Message: message,
			Data:    data,
		},
		ID: id,
	}
}
