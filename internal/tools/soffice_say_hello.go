package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/rafaelhlima/soffice-mcp-server/internal/macro"
	"github.com/rafaelhlima/soffice-mcp-server/internal/uno"
)

func AddSofficeSayHelloTool(server *server.MCPServer) {
	server.AddTool(mcp.NewTool("soffice_say_hello",
		mcp.WithDescription("Write \"Hello World\" into cell A1 of the active Calc document through its data model (Windows only)"),
	), WithRecovery(handleSayHello))
}

func handleSayHello(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return sayHello()
}

func sayHello() (*mcp.CallToolResult, error) {
	session, err := uno.Connect()
	if err != nil {
		return nil, err
	}
	defer session.Release()

	doc, err := session.CurrentSpreadsheet()
	if err != nil {
		return nil, err
	}
	if err := macro.SayHello(doc); err != nil {
		return nil, err
	}

	// Read the cell back so the result reflects what the office holds
	sheet, err := doc.ActiveSheet()
	if err != nil {
		return nil, err
	}
	cell, err := sheet.CellRangeByName(macro.HelloCell)
	if err != nil {
		return nil, err
	}
	contents, err := cell.GetString()
	if err != nil {
		return nil, err
	}

	result := "# Notice\n"
	result += fmt.Sprintf("Cell %s now contains %q\n", macro.HelloCell, contents)
	return mcp.NewToolResultText(result), nil
}
