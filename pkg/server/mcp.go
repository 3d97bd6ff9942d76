package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/wordhive/wordhive/pkg/match"
)

// FindWordsToolName is the tool identifier advertised to MCP clients.
const FindWordsToolName = "find_words"

// MCPHandler builds the Protocol A handler: an MCP server with the single
// find_words tool, served over streamable HTTP at /mcp. Start mounts it on
// the tool listener; it can also be mounted on an existing server.
func (f *Frontend) MCPHandler() http.Handler {
	s := mcpserver.NewMCPServer(
		"wordhive",
		f.version,
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithRecovery(),
	)

	tool := mcp.NewTool(FindWordsToolName,
		mcp.WithDescription("Find all dictionary words that can be formed from the given letters. "+
			"Letters may be reused any number of times; words shorter than 4 characters are excluded."),
		mcp.WithArray("letters",
			mcp.Required(),
			mcp.Description("Available letters, one single-character string per entry"),
			mcp.Items(map[string]any{"type": "string"}),
		),
	)
	s.AddTool(tool, f.handleFindWordsTool)

	return mcpserver.NewStreamableHTTPServer(s, mcpserver.WithEndpointPath("/mcp"))
}

// handleFindWordsTool answers one find_words call. Malformed input comes
// back as a structured tool error, never a transport failure: the listener
// and other in-flight calls are unaffected.
func (f *Frontend) handleFindWordsTool(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, ok := req.GetArguments()["letters"]
	if !ok {
		return mcp.NewToolResultError("missing required parameter: letters"), nil
	}
	items, ok := raw.([]any)
	if !ok {
		return mcp.NewToolResultError("letters must be an array of single-character strings"), nil
	}

	letters := make([]string, 0, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("letters[%d] is not a string", i)), nil
		}
		letters = append(letters, s)
	}

	f.logger.Debugf("tool call %s: letters=%v", FindWordsToolName, letters)
	words := f.lookup(match.NewAlphabet(letters))

	data, err := json.Marshal(words)
	if err != nil {
		return nil, fmt.Errorf("encoding find_words result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}
