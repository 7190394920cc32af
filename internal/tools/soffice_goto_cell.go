package tools

import (
	"context"
	"fmt"

	z "github.com/Oudwins/zog"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/rafaelhlima/soffice-mcp-server/internal/macro"
	imcp "github.com/rafaelhlima/soffice-mcp-server/internal/mcp"
	"github.com/rafaelhlima/soffice-mcp-server/internal/uno"
)

type SofficeGotoCellArguments struct {
	CellAddress string `zog:"cellAddress"`
}

var sofficeGotoCellArgumentsSchema = z.Struct(z.Shape{
	"cellAddress": z.String().Test(CellAddressTest()).Required(),
})

func AddSofficeGotoCellTool(server *server.MCPServer) {
	server.AddTool(mcp.NewTool("soffice_goto_cell",
		mcp.WithDescription("Move the cell cursor of the active Calc document to the given cell (Windows only)"),
		mcp.WithString("cellAddress",
			mcp.Required(),
			mcp.Description("Target cell address (e.g. \"A1\")"),
		),
	), WithRecovery(handleGotoCell))
}

func handleGotoCell(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := SofficeGotoCellArguments{}
	if issues := sofficeGotoCellArgumentsSchema.Parse(request.Params.Arguments, &args); len(issues) != 0 {
		return imcp.NewToolResultZogIssueMap(issues), nil
	}
	return gotoCell(args.CellAddress)
}

func gotoCell(cellAddress string) (*mcp.CallToolResult, error) {
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
	if err := macro.MoveToCell(dispatcher, frame, cellAddress); err != nil {
		return nil, err
	}

	result := "# Notice\n"
	result += fmt.Sprintf("Cell cursor moved to %s\n", cellAddress)
	return mcp.NewToolResultText(result), nil
}
