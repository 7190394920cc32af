// Package macro contains the tutorial macros: each function performs
// one isolated action against a live office session supplied by the
// caller. The functions hold no state of their own, and any failure of
// a host call propagates to the caller unmodified.
package macro

import (
	"fmt"
	"time"

	"github.com/rafaelhlima/soffice-mcp-server/internal/uno"
)

const (
	// HelloCell and HelloText are the fixed target and contents of the
	// direct write demo.
	HelloCell = "A1"
	HelloText = "Hello World"

	copySourceCell      = "A1"
	copyDestinationCell = "C1"

	dateGreeting = "Have a nice day!"

	toPointParam = "ToPoint"
)

// MoveToCell moves the cell cursor of frame to the given address by
// dispatching a single go-to-cell command. The address is passed to
// the office unmodified; a malformed address is the office's failure
// to report.
func MoveToCell(dispatcher uno.Dispatcher, frame uno.Frame, cellAddress string) error {
	// The dispatch protocol takes a list of arguments, even if it is
	// just one
	args := []uno.PropertyValue{{Name: toPointParam, Value: cellAddress}}
	return dispatcher.ExecuteDispatch(frame, uno.CommandGoToCell, args)
}

// CopyPaste copies the contents of cell A1 into cell C1 through the
// clipboard: navigate to A1, copy, navigate to C1, paste.
func CopyPaste(dispatcher uno.Dispatcher, frame uno.Frame) error {
	if err := MoveToCell(dispatcher, frame, copySourceCell); err != nil {
		return err
	}
	if err := dispatcher.ExecuteDispatch(frame, uno.CommandCopy, nil); err != nil {
		return err
	}
	if err := MoveToCell(dispatcher, frame, copyDestinationCell); err != nil {
		return err
	}
	return dispatcher.ExecuteDispatch(frame, uno.CommandPaste, nil)
}

// SayHello writes "Hello World" into cell A1 of the active sheet
// through the document's data model, without going through dispatch.
func SayHello(doc uno.SpreadsheetDocument) error {
	sheet, err := doc.ActiveSheet()
	if err != nil {
		return err
	}
	cell, err := sheet.CellRangeByName(HelloCell)
	if err != nil {
		return err
	}
	return cell.SetString(HelloText)
}

// ShowDate shows a modal message box greeting the user with the given
// day formatted as day/month/year.
func ShowDate(basic uno.BasicService, today time.Time) error {
	message := fmt.Sprintf("Today is %s\n%s", today.Format("02/01/2006"), dateGreeting)
	return basic.MsgBox(message)
}

// CreateWriterFile creates a new blank Writer document and sets its
// entire text body to "Hello World". The document is not saved.
func CreateWriterFile(ui uno.UIService) error {
	doc, err := ui.CreateDocument(uno.DocumentKindWriter)
	if err != nil {
		return err
	}
	return doc.SetText(HelloText)
}
