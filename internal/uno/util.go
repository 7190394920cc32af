package uno

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ParseCellAddress parses a single cell address (e.g. A1) into
// 1-based column and row coordinates.
func ParseCellAddress(address string) (int, int, error) {
	col, row, err := excelize.CellNameToCoordinates(address)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid cell address %q: %w", address, err)
	}
	return col, row, nil
}

// CheckCellAddress reports whether address is a well-formed single
// cell address. The macros themselves never validate addresses; this
// is for callers that want to reject bad input before dispatching.
func CheckCellAddress(address string) error {
	_, _, err := ParseCellAddress(address)
	return err
}
