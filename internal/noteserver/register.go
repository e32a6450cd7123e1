// Package noteserver exposes the note-generation engine as MCP tools.
package noteserver

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RegisterTools registers all note tools on the given MCP server:
// generate_note, fetch_transcript, resolve_video, list_methods,
// video_thumbnail.
func RegisterTools(server *mcp.Server) {
	registerGenerateNote(server)
	registerFetchTranscript(server)
	registerResolveVideo(server)
	registerListMethods(server)
	registerVideoThumbnail(server)
}
