package tandem

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/fujiwara/ridge"
	"github.com/tandem-a2a/tandem/transport"
)

type contextKey string

// agentServiceContextKey is the key for storing AgentService in context
const agentServiceContextKey contextKey = "tandem:agent-service"

// GetAgentServiceFromContext retrieves the AgentService injected by Server
// middleware. Returns nil when the request was not served through a Server.
func GetAgentServiceFromContext(ctx context.Context) *AgentService {
	service, _ := ctx.Value(agentServiceContextKey).(*AgentService)
	return service
}

// Server provides a high-level interface for running an A2A agent service
// with sensible defaults and easy configuration, similar to http.Server
type Server struct {
	// Addr specifies the TCP address for the server to listen on,
	// in the form "host:port". If empty, ":80" is used.
	Addr string

	// RPCPath specifies the base path for the JSON-RPC API.
	RPCPath string

	// AgentCardPath specifies the path for the agent card endpoint.
	AgentCardPath string

	// Storage specifies the storage backend for tasks, messages and
	// push notification configs.
	// If nil, a FileSystemStorage with default location is used.
	Storage Storage

	// Executor specifies the agent implementation.
	// This field is required and cannot be nil.
	Executor AgentExecutor

	// Authenticator specifies the authentication provider for the server.
	// If nil, no authentication is required.
	Authenticator transport.Authenticator

	// PushNotifier delivers push notifications for completed tasks.
	// If nil, the default HTTP webhook notifier is used.
	PushNotifier PushNotifier

	// Logger for server and service logging. If nil, slog.Default() is used.
	Logger *slog.Logger

	// DisableStreaming disables streaming capabilities when set to true
	DisableStreaming bool

	// DisablePushNotifications disables push notification features when set to true
	DisablePushNotifications bool

	LambdaOptions []lambda.Option // Options for AWS Lambda integration

	// Internal fields
	agentService   *AgentService
	httpServer     *http.Server
	mux            *http.ServeMux                    // HTTP request multiplexer
	customHandlers map[string]http.Handler           // Custom handlers stored before initialization
	middlewares    []func(http.Handler) http.Handler // HTTP middlewares applied to all requests
	mu             sync.Mutex
}

// Use adds HTTP middlewares to the server.
// Middlewares are applied to all HTTP requests in the order they are added.
func (s *Server) Use(middlewares ...func(http.Handler) http.Handler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.middlewares = append(s.middlewares, middlewares...)
}

// Run starts the server and blocks until the server shuts down.
func (s *Server) Run() error {
	return s.RunWithContext(context.Background())
}

// RunWithContext starts the server with the given context and blocks until
// the server shuts down or the context is cancelled.
func (s *Server) RunWithContext(ctx context.Context) error {
	if err := s.initialize(); err != nil {
		return err
	}

	if ridge.OnLambdaRuntime() {
		// If running on AWS Lambda, use the Lambda handler
		return s.runOnLambdaRuntime(ctx)
	}

	// Start HTTP server in goroutine
	errChan := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	// Wait for context cancellation or server error
	select {
	case <-ctx.Done():
		// Context cancelled, shutdown gracefully
		return s.Shutdown(context.Background())
	case err := <-errChan:
		// Server error
		return err
	}
}

func (s *Server) runOnLambdaRuntime(ctx context.Context) error {
	card, err := s.agentService.GetAgentCard(ctx) // Ensure agent card is initialized
	if err != nil {
		return fmt.Errorf("failed to get agent card: %w", err)
	}
	opts := append([]lambda.Option{
		lambda.WithContext(ctx),
	}, s.LambdaOptions...)
	lambda.StartWithOptions(
		func(ctx context.Context, event json.RawMessage) (interface{}, error) {
			req, err := ridge.NewRequest(event)
			if err != nil || req.Method == "" || req.URL.Path == "" {
				slog.DebugContext(ctx, "Ignoring non-HTTP event", "payload", string(event))
				return json.RawMessage(`"skipped"`), nil
			}
			if card.Capabilities.Streaming {
				w := ridge.NewStreamingResponseWriter()
				go func() {
					defer func() {
						if r := recover(); r != nil {
							slog.ErrorContext(ctx, "Panic in streaming handler", "panic", r)
						}
						w.Close()
					}()
					s.mux.ServeHTTP(w, req.WithContext(ctx))
				}()
				w.Wait()
				return w.Response(), nil
			}
			w := ridge.NewResponseWriter()
			s.mux.ServeHTTP(w, req.WithContext(ctx))
			return w.Response(), nil
		},
		opts...,
	)
	return nil
}

// Shutdown gracefully shuts down the server without interrupting any
// active connections.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var errs []error

	// Shutdown HTTP server
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("HTTP server shutdown error: %w", err))
		}
	}

	// Close agent service
	if s.agentService != nil {
		if err := s.agentService.Close(ctx); err != nil {
			errs = append(errs, fmt.Errorf("agent service close error: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("shutdown errors: %v", errs)
	}

	return nil
}

// initialize sets up the server with default values if not configured
func (s *Server) initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Executor is required
	if s.Executor == nil {
		return errors.New("Executor field is required and cannot be nil")
	}

	// Set default address
	if s.Addr == "" {
		s.Addr = ":80"
	}

	// Set default storage if not provided
	if s.Storage == nil {
		storageDir := "/tmp/a2a"
		if envDir := os.Getenv("A2A_STORAGE_DIR"); envDir != "" {
			storageDir = envDir
		}

		var err error
		s.Storage, err = NewFileSystemStorage(storageDir)
		if err != nil {
			return fmt.Errorf("failed to create default storage: %w", err)
		}
	}

	// Create agent service if not already initialized
	if s.agentService == nil {
		s.agentService = NewAgentService(s.Storage, s.Executor)
		if s.Logger != nil {
			s.agentService.Logger = s.Logger
		}
		if s.PushNotifier != nil {
			s.agentService.PushNotifier = s.PushNotifier
		}
		s.agentService.DisableStreaming = s.DisableStreaming
		s.agentService.DisablePushNotifications = s.DisablePushNotifications
	}

	// Automatically inject AgentService into request context for custom handlers
	// This middleware is prepended to ensure it runs before any user-defined middlewares
	s.middlewares = append([]func(http.Handler) http.Handler{
		s.injectAgentServiceMiddleware,
	}, s.middlewares...)
	if s.RPCPath == "" {
		s.RPCPath = transport.DefaultRPCPath
	}
	if s.AgentCardPath == "" {
		s.AgentCardPath = transport.DefaultAgentCardPath
	}
	if s.mux == nil {
		handlerOptions := []transport.HandlerOption{
			transport.WithRPCPath(s.RPCPath),
			transport.WithAgentCardPath(s.AgentCardPath),
		}
		if s.Authenticator != nil {
			handlerOptions = append(handlerOptions, transport.WithAuthenticator(s.Authenticator))
		}
		if s.Logger != nil {
			handlerOptions = append(handlerOptions, transport.WithLogger(s.Logger))
		}
		handler := transport.NewHandler(s.agentService, handlerOptions...)
		s.mux = http.NewServeMux()
		s.mux.Handle(s.RPCPath, handler)
		s.mux.Handle(s.AgentCardPath, handler)

		// Register custom handlers
		for pattern, customHandler := range s.customHandlers {
			s.mux.Handle(pattern, customHandler)
		}
		s.customHandlers = nil // Clear to free memory
	}

	// Create HTTP server if not already initialized
	if s.httpServer == nil {
		// Apply middleware chain to the mux
		handler := s.applyMiddleware(s.mux)

		s.httpServer = &http.Server{
			Addr:              s.Addr,
			Handler:           handler,
			ReadHeaderTimeout: 30 * time.Second,
		}
	}

	return nil
}

// isProtectedPattern checks if the pattern conflicts with A2A endpoints
func (s *Server) isProtectedPattern(pattern string) bool {
	// Check against current RPC and AgentCard paths
	rpcPath := s.RPCPath
	if rpcPath == "" {
		rpcPath = transport.DefaultRPCPath
	}

	agentCardPath := s.AgentCardPath
	if agentCardPath == "" {
		agentCardPath = transport.DefaultAgentCardPath
	}

	return pattern == rpcPath || pattern == agentCardPath
}

// Handle registers a handler for the given pattern.
// It panics if the pattern is already registered or conflicts with A2A endpoints.
func (s *Server) Handle(pattern string, handler http.Handler) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Check for A2A endpoint conflicts
	if s.isProtectedPattern(pattern) {
		panic(fmt.Sprintf("pattern %s conflicts with A2A endpoints", pattern))
	}

	// If mux is already initialized, register directly
	if s.mux != nil {
		s.mux.Handle(pattern, handler)
		return
	}

	// Store for later registration during initialization
	if s.customHandlers == nil {
		s.customHandlers = make(map[string]http.Handler)
	}

	// Check for duplicate patterns in custom handlers
	if _, exists := s.customHandlers[pattern]; exists {
		panic(fmt.Sprintf("http: multiple registrations for %s", pattern))
	}

	s.customHandlers[pattern] = handler
}

// HandleFunc registers a handler function for the given pattern.
// It panics if the pattern is already registered or conflicts with A2A endpoints.
func (s *Server) HandleFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.Handle(pattern, http.HandlerFunc(handler))
}

// Handler returns the HTTP handler for the server.
func (s *Server) Handler(r *http.Request) (http.Handler, string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Ensure server is initialized
	if s.mux == nil {
		if err := s.initialize(); err != nil {
			panic(fmt.Sprintf("failed to initialize server: %v", err))
		}
	}

	return s.mux.Handler(r)
}

// injectAgentServiceMiddleware injects the AgentService into the request context
// so custom handlers can reach it via GetAgentServiceFromContext()
func (s *Server) injectAgentServiceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), agentServiceContextKey, s.agentService)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// applyMiddleware applies all registered middlewares to the given handler
func (s *Server) applyMiddleware(handler http.Handler) http.Handler {
	// Apply middlewares in registration order (first registered wraps outermost)
	result := handler
	for i := len(s.middlewares) - 1; i >= 0; i-- {
		result = s.middlewares[i](result)
	}
	return result
}
