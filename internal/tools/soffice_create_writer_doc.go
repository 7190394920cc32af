package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/rafaelhlima/soffice-mcp-server/internal/macro"
	"github.com/rafaelhlima/soffice-mcp-server/internal/uno"
)

func AddSofficeCreateWriterDocTool(server *server.MCPServer) {
	server.AddTool(mcp.NewTool("soffice_create_writer_doc",
		mcp.WithDescription("Create a new blank Writer document and set its body text to \"Hello World\" (Windows only). The document is not saved"),
	), WithRecovery(handleCreateWriterDoc))
}

func handleCreateWriterDoc(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return createWriterDoc()
}

func createWriterDoc() (*mcp.CallToolResult, error) {
	session, err := uno.Connect()
	if err != nil {
		return nil, err
	}
	defer session.Release()

	if err := macro.CreateWriterFile(session.UI()); err != nil {
		return nil, err
	}

	result := "# Notice\n"
	result += "New Writer document created with body text \"Hello World\"\n"
	return mcp.NewToolResultText(result), nil
}
