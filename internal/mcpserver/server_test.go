package mcpserver

import (
	"context"
	"encoding/json"
	"testing"

	"clientctl/internal/api/tools"
	"clientctl/internal/clients"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct{}

func (stubService) List(context.Context) ([]clients.Client, error) {
	return []clients.Client{{ID: 1, Name: "Ann Lee", Email: "ann@x.com", IsActive: true}}, nil
}

func (stubService) Create(_ context.Context, p clients.Payload) (clients.Client, error) {
	return clients.Client{ID: 2, Name: p.Name, Email: p.Email}, nil
}

func (stubService) Update(_ context.Context, id int64, p clients.Payload) (clients.Client, error) {
	return clients.Client{ID: id, Name: p.Name, Email: p.Email}, nil
}

func (stubService) Delete(context.Context, int64) error { return nil }

func newTestServer(t *testing.T) *Server {
	t.Helper()
	s, err := New(Config{Version: "1.2.3"}, tools.NewClientTools(stubService{}, 0).ServerTools())
	require.NoError(t, err)
	return s
}

func handle(t *testing.T, s *Server, message string) string {
	t.Helper()
	resp := s.MCP().HandleMessage(context.Background(), json.RawMessage(message))
	require.NotNil(t, resp)
	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	return string(raw)
}

func TestNew_Defaults(t *testing.T) {
	s := newTestServer(t)
	assert.Equal(t, TransportStdio, s.config.Transport)
	assert.Equal(t, "http://localhost:8090/sse", s.Endpoint())
}

func TestNew_RejectsUnknownTransport(t *testing.T) {
	_, err := New(Config{Transport: "grpc"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported transport")
}

func TestServer_ListsClientTools(t *testing.T) {
	s := newTestServer(t)

	handle(t, s, `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2024-11-05","capabilities":{},"clientInfo":{"name":"test","version":"0"}}}`)
	out := handle(t, s, `{"jsonrpc":"2.0","id":2,"method":"tools/list"}`)

	for _, name := range []string{"client_list", "client_get", "client_create", "client_update", "client_toggle", "client_delete"} {
		assert.Contains(t, out, name)
	}
}

func TestServer_CallsClientTool(t *testing.T) {
	s := newTestServer(t)

	handle(t, s, `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2024-11-05","capabilities":{},"clientInfo":{"name":"test","version":"0"}}}`)
	out := handle(t, s, `{"jsonrpc":"2.0","id":2,"method":"tools/call","params":{"name":"client_list","arguments":{"search":"ann"}}}`)

	assert.Contains(t, out, "ann@x.com")
}

func TestServer_StopWithoutStartIsNoop(t *testing.T) {
	s := newTestServer(t)
	assert.NoError(t, s.Stop(context.Background()))
}
