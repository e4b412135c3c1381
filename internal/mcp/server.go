// Package mcp exposes attribute association as Model Context Protocol tools.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"

	"github.com/helixml/catalog/domain/attribute"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Associator reads and writes attribute assignments by identifier.
type Associator interface {
	Associate(ctx context.Context, kind attribute.Kind, entityID, attributeID int64, valueIDs []int64) (attribute.Assignment, error)
	Assigned(ctx context.Context, kind attribute.Kind, entityID, attributeID int64) (attribute.Assignment, error)
}

// Server wraps the MCP server with the catalog tools.
type Server struct {
	mcpServer  *server.MCPServer
	associator Associator
	logger     *slog.Logger
}

// NewServer creates a new MCP server.
func NewServer(associator Associator, version string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		associator: associator,
		logger:     logger,
	}

	mcpServer := server.NewMCPServer(
		"catalog",
		version,
		server.WithToolCapabilities(true),
	)
	s.registerTools(mcpServer)

	s.mcpServer = mcpServer
	return s
}

func (s *Server) registerTools(mcpServer *server.MCPServer) {
	associate := mcp.NewTool("associate_attribute_values",
		mcp.WithDescription("Replace the values of an attribute on a catalog entity. "+
			"The values are displayed in the order given; an empty list clears the attribute."),
		kindArg(),
		mcp.WithNumber("entity_id", mcp.Required(), mcp.Description("Identifier of the product, variant, page, category or collection")),
		mcp.WithNumber("attribute_id", mcp.Required(), mcp.Description("Identifier of the attribute")),
		mcp.WithArray("value_ids",
			mcp.Required(),
			mcp.Description("Identifiers of the attribute's values in display order"),
			mcp.Items(map[string]any{"type": "integer"}),
		),
	)
	mcpServer.AddTool(associate, s.handleAssociate)

	assigned := mcp.NewTool("get_assigned_values",
		mcp.WithDescription("List the values of an attribute on a catalog entity in display order"),
		kindArg(),
		mcp.WithNumber("entity_id", mcp.Required(), mcp.Description("Identifier of the entity")),
		mcp.WithNumber("attribute_id", mcp.Required(), mcp.Description("Identifier of the attribute")),
	)
	mcpServer.AddTool(assigned, s.handleAssigned)
}

func kindArg() mcp.ToolOption {
	kinds := attribute.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return mcp.WithString("kind",
		mcp.Required(),
		mcp.Description("Entity kind"),
		mcp.Enum(names...),
	)
}

type target struct {
	kind        attribute.Kind
	entityID    int64
	attributeID int64
}

func parseTarget(request mcp.CallToolRequest) (target, error) {
	kindName, err := request.RequireString("kind")
	if err != nil {
		return target{}, err
	}
	kind, err := attribute.ParseKind(kindName)
	if err != nil {
		return target{}, err
	}
	entityID, err := request.RequireInt("entity_id")
	if err != nil {
		return target{}, err
	}
	attributeID, err := request.RequireInt("attribute_id")
	if err != nil {
		return target{}, err
	}
	return target{kind: kind, entityID: int64(entityID), attributeID: int64(attributeID)}, nil
}

func (s *Server) handleAssociate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	t, err := parseTarget(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	valueIDs, err := int64Slice(request.GetArguments()["value_ids"])
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("value_ids: %v", err)), nil
	}

	assignment, err := s.associator.Associate(ctx, t.kind, t.entityID, t.attributeID, valueIDs)
	if err != nil {
		s.logger.ErrorContext(ctx, "associate attribute values failed",
			slog.String("kind", t.kind.String()),
			slog.Int64("entity_id", t.entityID),
			slog.Int64("attribute_id", t.attributeID),
			slog.Any("error", err),
		)
		return mcp.NewToolResultError(fmt.Sprintf("associate failed: %v", err)), nil
	}
	return assignmentResult(assignment)
}

func (s *Server) handleAssigned(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	t, err := parseTarget(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	assignment, err := s.associator.Assigned(ctx, t.kind, t.entityID, t.attributeID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("lookup failed: %v", err)), nil
	}
	return assignmentResult(assignment)
}

type assignedValue struct {
	ValueID   int64 `json:"value_id"`
	SortOrder int   `json:"sort_order"`
}

type assignmentPayload struct {
	AssignmentID int64           `json:"assignment_id"`
	Kind         string          `json:"kind"`
	EntityID     int64           `json:"entity_id"`
	Values       []assignedValue `json:"values"`
}

func assignmentResult(a attribute.Assignment) (*mcp.CallToolResult, error) {
	payload := assignmentPayload{
		AssignmentID: a.ID(),
		Kind:         a.Kind().String(),
		EntityID:     a.EntityID(),
		Values:       make([]assignedValue, 0, len(a.Values())),
	}
	for _, v := range a.Values() {
		payload.Values = append(payload.Values, assignedValue{ValueID: v.ValueID(), SortOrder: v.SortOrder()})
	}

	b, err := json.Marshal(payload)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}

// int64Slice converts a decoded JSON array of whole numbers.
func int64Slice(raw any) ([]int64, error) {
	if raw == nil {
		return nil, fmt.Errorf("required")
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("expected an array, got %T", raw)
	}
	ids := make([]int64, 0, len(items))
	for i, item := range items {
		n, ok := item.(float64)
		if !ok || n != math.Trunc(n) {
			return nil, fmt.Errorf("item %d is not an integer", i)
		}
		ids = append(ids, int64(n))
	}
	return ids, nil
}

// MCPServer returns the underlying MCP server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio runs the MCP server on stdio.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}
