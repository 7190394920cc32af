package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/rafaelhlima/soffice-mcp-server/internal/macro"
	"github.com/rafaelhlima/soffice-mcp-server/internal/uno"
)

func AddSofficeCopyPasteTool(server *server.MCPServer) {
	server.AddTool(mcp.NewTool("soffice_copy_paste",
		mcp.WithDescription("Copy the contents of cell A1 into cell C1 of the active Calc document via the clipboard (Windows only)"),
	), WithRecovery(handleCopyPaste))
}

func handleCopyPaste(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return copyPaste()
}

func copyPaste() (*mcp.CallToolResult, error) {
	session, err := uno.Connect()
	if err != nil {
		return nil, err
	}
	defer session.Release()

	doc, err := session.CurrentSpreadsheet()
	if err != nil {
		return nil, err
	}
	frame, err := doc.CurrentFrame()
	if err != nil {
		return nil, err
	}
	dispatcher, err := session.Dispatcher()
	if err != nil {
		return nil, err
	}
	if err := macro.CopyPaste(dispatcher, frame); err != nil {
		return nil, err
	}

	result := "# Notice\n"
	result += "Contents of cell A1 copied into cell C1\n"
	return mcp.NewToolResultText(result), nil
}
