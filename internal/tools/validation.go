package tools

import (
	"fmt"

	z "github.com/Oudwins/zog"

	"github.com/rafaelhlima/soffice-mcp-server/internal/uno"
)

// CellAddressTest validates that a string argument is a well-formed
// single cell address (e.g. "A1").
func CellAddressTest() z.Test[*string] {
	return z.Test[*string]{
		Func: func(val *string, ctx z.Ctx) {
			if err := uno.CheckCellAddress(*val); err != nil {
				ctx.AddIssue(ctx.Issue().SetMessage(fmt.Sprintf("must be a cell address like A1: %v", err)))
			}
		},
	}
}
