package noteserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/reallygood83/yt-trend-sub000/internal/engine/notes"
)

type listMethodsInput struct{}

type listMethodsOutput struct {
	Methods []notes.MethodInfo `json:"methods"`
}

func registerListMethods(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_methods",
		Description: "List all available explanation methods with their labels, descriptions, and expected segment-count ranges. Use the 'tag' field as the method parameter of generate_note.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input listMethodsInput) (*mcp.CallToolResult, listMethodsOutput, error) {
		return nil, listMethodsOutput{Methods: notes.Catalog()}, nil
	})
}
