// Package tandemtest provides httptest-style helpers for exercising A2A
// agents end to end: a real AgentService on temporary storage behind a real
// HTTP handler, plus preconfigured clients.
package tandemtest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/tandem-a2a/tandem"
	"github.com/tandem-a2a/tandem/transport"
)

// TestServer runs an agent executor behind a live HTTP endpoint for the
// duration of a test.
type TestServer struct {
	*httptest.Server

	// AgentService handles the A2A requests.
	AgentService *tandem.AgentService

	// Executor is the agent under test.
	Executor tandem.AgentExecutor
}

// NewServer starts a test server for the executor, backed by a
// FileSystemStorage under tb.TempDir(). The server and service are torn down
// via tb.Cleanup.
//
//	executor := tandem.NewAgentExecutor(metadata, executeFunc)
//	server := tandemtest.NewServer(t, executor)
//	result, err := server.Client().SendMessage(ctx, params)
func NewServer(tb testing.TB, executor tandem.AgentExecutor) *TestServer {
	storageDir := filepath.Join(tb.TempDir(), "tandemtest-storage")
	if err := os.MkdirAll(storageDir, 0750); err != nil {
		panic("failed to create storage directory: " + err.Error())
	}
	storage, err := tandem.NewFileSystemStorage(storageDir)
	if err != nil {
		panic("failed to create FileSystemStorage: " + err.Error())
	}

	agentService := tandem.NewAgentService(storage, executor)
	httpServer := httptest.NewServer(transport.NewHandler(agentService))

	server := &TestServer{
		Server:       httpServer,
		AgentService: agentService,
		Executor:     executor,
	}
	tb.Cleanup(func() {
		server.Server.Close()
		if err := agentService.Close(context.Background()); err != nil {
			tb.Logf("failed to close agent service: %v", err)
		}
	})
	return server
}

// URL returns the server's base URL.
func (s *TestServer) URL() string {
	return s.Server.URL
}

// Close shuts the server down early; tests that rely on tb.Cleanup need not
// call it.
func (s *TestServer) Close() {
	s.Server.Close()
}

// Client returns a transport.Client pointed at this server.
func (s *TestServer) Client(opts ...transport.ClientOption) *transport.Client {
	return transport.NewClient(s.URL(), opts...)
}

// ClientWithHeaders returns a client that stamps the given headers onto
// every request, for tests asserting that headers reach the executor through
// RequestContext.HTTPHeaders.
func (s *TestServer) ClientWithHeaders(headers http.Header, opts ...transport.ClientOption) *transport.Client {
	httpClient := &http.Client{
		Transport: &headerAddingTransport{
			base:    http.DefaultTransport,
			headers: headers,
		},
	}
	opts = append(opts, transport.WithHTTPClient(httpClient))
	return transport.NewClient(s.URL(), opts...)
}

type headerAddingTransport struct {
	base    http.RoundTripper
	headers http.Header
}

func (t *headerAddingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// RoundTrippers must not mutate the original request.
	newReq := req.Clone(req.Context())
	for key, values := range t.headers {
		newReq.Header.Del(key)
		for _, value := range values {
			newReq.Header.Add(key, value)
		}
	}
	return t.base.RoundTrip(newReq)
}
