package tools

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/rafaelhlima/soffice-mcp-server/internal/macro"
	"github.com/rafaelhlima/soffice-mcp-server/internal/uno"
)

func AddSofficeShowDateTool(server *server.MCPServer) {
	server.AddTool(mcp.NewTool("soffice_show_date",
		mcp.WithDescription("Show a modal message box with today's date in the LibreOffice window (Windows only). Blocks until the dialog is dismissed"),
	), WithRecovery(handleShowDate))
}

func handleShowDate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return showDate()
}

func showDate() (*mcp.CallToolResult, error) {
	session, err := uno.Connect()
	if err != nil {
		return nil, err
	}
	defer session.Release()

	if err := macro.ShowDate(session.Basic(), time.Now()); err != nil {
		return nil, err
	}

	result := "# Notice\n"
	result += "Date dialog shown and dismissed\n"
	return mcp.NewToolResultText(result), nil
}
