package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"clientctl/internal/api"
	"clientctl/internal/clients"
	"clientctl/pkg/logging"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const toolsSubsystem = "MCPTools"

// ClientTools provides MCP tools backed by a ClientService.
type ClientTools struct {
	service api.ClientService
	timeout time.Duration
}

// NewClientTools creates the tool set. timeout bounds each backend call; zero
// leaves the caller's context untouched.
func NewClientTools(service api.ClientService, timeout time.Duration) *ClientTools {
	return &ClientTools{service: service, timeout: timeout}
}

// GetClientTools returns all tool definitions.
func (ct *ClientTools) GetClientTools() []mcp.Tool {
	return []mcp.Tool{
		mcp.NewTool("client_list",
			mcp.WithDescription("List client records, optionally filtered by a case-insensitive search over name, email and job"),
			mcp.WithString("search",
				mcp.Description("Search term; empty lists everything"),
			),
		),
		mcp.NewTool("client_get",
			mcp.WithDescription("Get a single client record by id"),
			mcp.WithNumber("id",
				mcp.Required(),
				mcp.Description("Client id"),
			),
		),
		mcp.NewTool("client_create",
			withRecordFields(
				mcp.WithDescription("Create a client record"),
			)...,
		),
		mcp.NewTool("client_update",
			withRecordFields(
				mcp.WithDescription("Replace the fields of an existing client record"),
				mcp.WithNumber("id",
					mcp.Required(),
					mcp.Description("Client id"),
				),
			)...,
		),
		mcp.NewTool("client_toggle",
			mcp.WithDescription("Flip a client between Active and Inactive"),
			mcp.WithNumber("id",
				mcp.Required(),
				mcp.Description("Client id"),
			),
		),
		mcp.NewTool("client_delete",
			mcp.WithDescription("Delete a client record. Irreversible; confirm must be true"),
			mcp.WithNumber("id",
				mcp.Required(),
				mcp.Description("Client id"),
			),
			mcp.WithBoolean("confirm",
				mcp.Required(),
				mcp.Description("Must be true to delete"),
			),
		),
	}
}

func withRecordFields(opts ...mcp.ToolOption) []mcp.ToolOption {
	return append(opts,
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Client name"),
		),
		mcp.WithString("email",
			mcp.Required(),
			mcp.Description("Client email address"),
		),
		mcp.WithString("job",
			mcp.Description("Job title"),
		),
		mcp.WithString("rate",
			mcp.Description("Hourly rate, e.g. \"45.50\"; empty for none"),
		),
		mcp.WithString("status",
			mcp.Description("Client status"),
			mcp.Enum(string(clients.StatusActive), string(clients.StatusInactive)),
		),
	)
}

// ServerTools pairs each definition with its handler for server.AddTools.
func (ct *ClientTools) ServerTools() []server.ServerTool {
	handlers := map[string]server.ToolHandlerFunc{
		"client_list":   ct.HandleList,
		"client_get":    ct.HandleGet,
		"client_create": ct.HandleCreate,
		"client_update": ct.HandleUpdate,
		"client_toggle": ct.HandleToggle,
		"client_delete": ct.HandleDelete,
	}

	defs := ct.GetClientTools()
	out := make([]server.ServerTool, 0, len(defs))
	for _, tool := range defs {
		out = append(out, server.ServerTool{Tool: tool, Handler: handlers[tool.Name]})
	}
	return out
}

// HandleList handles the client_list tool call
func (ct *ClientTools) HandleList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ctx, cancel := ct.withTimeout(ctx)
	defer cancel()

	all, err := ct.service.List(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list clients: %v", err)), nil
	}

	visible := clients.Filter(all, req.GetString("search", ""))
	return jsonResult(map[string]interface{}{
		"clients": visible,
		"total":   len(visible),
	})
}

// HandleGet handles the client_get tool call
func (ct *ClientTools) HandleGet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := idArgument(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	c, res := ct.find(ctx, id)
	if res != nil {
		return res, nil
	}
	return jsonResult(c)
}

// HandleCreate handles the client_create tool call
func (ct *ClientTools) HandleCreate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	payload, err := payloadArguments(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	ctx, cancel := ct.withTimeout(ctx)
	defer cancel()

	created, err := ct.service.Create(ctx, payload)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to create client: %v", err)), nil
	}
	logging.Info(toolsSubsystem, "Created client %d (%s)", created.ID, created.Name)
	return jsonResult(created)
}

// HandleUpdate handles the client_update tool call
func (ct *ClientTools) HandleUpdate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := idArgument(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	payload, err := payloadArguments(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	ctx, cancel := ct.withTimeout(ctx)
	defer cancel()

	updated, err := ct.service.Update(ctx, id, payload)
	if err != nil {
		return backendFailure("update client", id, err), nil
	}
	logging.Info(toolsSubsystem, "Updated client %d", id)
	return jsonResult(updated)
}

// HandleToggle handles the client_toggle tool call
func (ct *ClientTools) HandleToggle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := idArgument(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	c, res := ct.find(ctx, id)
	if res != nil {
		return res, nil
	}

	ctx, cancel := ct.withTimeout(ctx)
	defer cancel()

	p := c.Payload()
	p.IsActive = !c.IsActive
	updated, err := ct.service.Update(ctx, id, p)
	if err != nil {
		return backendFailure("toggle status", id, err), nil
	}
	logging.Info(toolsSubsystem, "Client %d is now %s", id, updated.Status())
	return jsonResult(updated)
}

// HandleDelete handles the client_delete tool call
func (ct *ClientTools) HandleDelete(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := idArgument(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if !req.GetBool("confirm", false) {
		return mcp.NewToolResultError(fmt.Sprintf("Refusing to delete client %d without confirm=true", id)), nil
	}

	ctx, cancel := ct.withTimeout(ctx)
	defer cancel()

	if err := ct.service.Delete(ctx, id); err != nil {
		return backendFailure("delete client", id, err), nil
	}
	logging.Info(toolsSubsystem, "Deleted client %d", id)
	return mcp.NewToolResultText(fmt.Sprintf("Successfully deleted client %d", id)), nil
}

// find looks a record up through List; the backend has no single-record read.
func (ct *ClientTools) find(ctx context.Context, id int64) (clients.Client, *mcp.CallToolResult) {
	ctx, cancel := ct.withTimeout(ctx)
	defer cancel()

	all, err := ct.service.List(ctx)
	if err != nil {
		return clients.Client{}, mcp.NewToolResultError(fmt.Sprintf("Failed to list clients: %v", err))
	}
	c, ok := clients.FindByID(all, id)
	if !ok {
		return clients.Client{}, mcp.NewToolResultError(fmt.Sprintf("Client %d not found", id))
	}
	return c, nil
}

// backendFailure turns a write error into a tool error the assistant can act on.
func backendFailure(action string, id int64, err error) *mcp.CallToolResult {
	switch {
	case api.IsNotFound(err):
		return mcp.NewToolResultError(fmt.Sprintf("Client %d not found", id))
	case api.IsUnauthorized(err):
		return mcp.NewToolResultError(fmt.Sprintf("Failed to %s: %v (session rejected, run 'clientctl login')", action, err))
	default:
		return mcp.NewToolResultError(fmt.Sprintf("Failed to %s: %v", action, err))
	}
}

func (ct *ClientTools) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if ct.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, ct.timeout)
}

// idArgument accepts the id as a JSON number or a numeric string.
func idArgument(req mcp.CallToolRequest) (int64, error) {
	raw, ok := req.GetArguments()["id"]
	if !ok || raw == nil {
		return 0, fmt.Errorf("id is required")
	}

	var id int64
	switch v := raw.(type) {
	case float64:
		if v != float64(int64(v)) {
			return 0, fmt.Errorf("id must be a whole number")
		}
		id = int64(v)
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, fmt.Errorf("id must be a whole number")
		}
		id = n
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("id must be a whole number")
		}
		id = n
	default:
		return 0, fmt.Errorf("id must be a number")
	}
	if id <= 0 {
		return 0, fmt.Errorf("id must be positive")
	}
	return id, nil
}

// payloadArguments runs the tool arguments through form validation.
func payloadArguments(req mcp.CallToolRequest) (clients.Payload, error) {
	form := clients.Form{
		Name:   req.GetString("name", ""),
		Email:  req.GetString("email", ""),
		Job:    req.GetString("job", ""),
		Rate:   req.GetString("rate", ""),
		Status: clients.Status(req.GetString("status", string(clients.StatusInactive))),
	}
	if err := form.Validate(); err != nil {
		return clients.Payload{}, err
	}
	return form.Payload()
}

func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	resultJSON, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to format result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(resultJSON)), nil
}
