package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/inonetecx/concierge/internal/knowledge"
)

// MCPDeps holds dependencies for the MCP server.
type MCPDeps struct {
	Engine  Dialogue
	KB      *knowledge.Base
	Version string
}

// NewMCPServer creates an MCP server exposing the concierge to agent
// clients: an ask tool for dialogue turns and the knowledge base as a
// resource.
func NewMCPServer(deps MCPDeps) *server.MCPServer {
	s := server.NewMCPServer(
		"concierge",
		deps.Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithInstructions("concierge — company dialogue agent for Inonetecx services, pricing, and contact information."),
		server.WithRecovery(),
	)

	s.AddTool(
		mcp.NewTool("ask",
			mcp.WithDescription("Ask the concierge a question about the company; returns the reply with the classified intent and extracted entities."),
			mcp.WithString("message", mcp.Description("The utterance to interpret"), mcp.Required()),
		),
		mcpAsk(deps),
	)

	s.AddResource(
		mcp.NewResource(
			"company://knowledge",
			"Company Knowledge Base",
			mcp.WithResourceDescription("The static company knowledge base as JSON"),
			mcp.WithMIMEType("application/json"),
		),
		mcpResourceKnowledge(deps),
	)

	s.AddResource(
		mcp.NewResource(
			"company://transcript",
			"Session Transcript",
			mcp.WithResourceDescription("The conversation history of the current session"),
			mcp.WithMIMEType("application/json"),
		),
		mcpResourceTranscript(deps),
	)

	return s
}

func mcpAsk(deps MCPDeps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		message, err := req.RequireString("message")
		if err != nil {
			return mcpError("message is required"), nil
		}

		reply, err := deps.Engine.Respond(message)
		if err != nil {
			return mcpError("the assistant hit a technical issue, please try again"), nil
		}

		out := map[string]any{
			"reply":  reply.Text,
			"intent": reply.Intent,
		}
		if reply.Entities.HasService() {
			out["entities"] = map[string]string{"service": reply.Entities.Service}
		}
		b, err := json.Marshal(out)
		if err != nil {
			return mcpError(fmt.Sprintf("failed to marshal reply: %v", err)), nil
		}
		return mcpText(string(b)), nil
	}
}

func mcpResourceKnowledge(deps MCPDeps) server.ResourceHandlerFunc {
	return func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		b, err := json.MarshalIndent(deps.KB, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling knowledge base: %w", err)
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     string(b),
			},
		}, nil
	}
}

func mcpResourceTranscript(deps MCPDeps) server.ResourceHandlerFunc {
	return func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		b, err := json.Marshal(deps.Engine.History())
		if err != nil {
			return nil, fmt.Errorf("marshaling transcript: %w", err)
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     string(b),
			},
		}, nil
	}
}

func mcpText(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: text}},
	}
}

func mcpError(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: msg}},
	}
}
