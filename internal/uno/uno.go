package uno

// Session represents a connection to a running LibreOffice instance,
// as opposed to a document file on disk. Every handle obtained from a
// Session stays owned by the office process; this package only borrows
// them for the duration of a call.
type Session interface {
	// CurrentSpreadsheet returns the spreadsheet document that currently
	// has focus in the office instance.
	CurrentSpreadsheet() (SpreadsheetDocument, error)
	// Dispatcher returns a Dispatcher bound to this session.
	Dispatcher() (Dispatcher, error)
	// Basic returns the scripting-helper service for simple UI
	// interactions such as message boxes.
	Basic() BasicService
	// UI returns the service used to create new documents.
	UI() UIService
	// Release releases the COM resources associated with this Session.
	Release()
}

// Dispatcher executes UNO dispatch commands against a frame. The wire
// protocol to the office is string based; the Command type keeps call
// sites inside this module type checked.
type Dispatcher interface {
	// ExecuteDispatch sends cmd to the given frame with the supplied
	// named arguments. The return value of the dispatch is discarded.
	ExecuteDispatch(frame Frame, cmd Command, args []PropertyValue) error
}

// Frame is an opaque handle to an open document window. It carries no
// operations of its own and is only meaningful as the target of a
// Dispatcher call.
type Frame interface{}

// PropertyValue is a single named dispatch argument. Dispatch commands
// always take a list of these, even when there is just one.
type PropertyValue struct {
	Name  string
	Value any
}

// SpreadsheetDocument is a live Calc document.
type SpreadsheetDocument interface {
	// CurrentFrame returns the frame of the document's current
	// controller, the target for dispatch commands against it.
	CurrentFrame() (Frame, error)
	// ActiveSheet returns the sheet currently selected in the UI.
	ActiveSheet() (Spreadsheet, error)
}

// Spreadsheet is a single sheet of a Calc document.
type Spreadsheet interface {
	// CellRangeByName resolves a cell range by its address string
	// (e.g. "A1"). The address is passed to the office unmodified.
	CellRangeByName(name string) (CellRange, error)
}

// CellRange is a live handle to one or more cells of a sheet.
type CellRange interface {
	// SetString sets the textual contents of the range.
	SetString(value string) error
	// GetString returns the textual contents of the range.
	GetString() (string, error)
}

// TextDocument is a live Writer document.
type TextDocument interface {
	// SetText replaces the entire text body of the document.
	SetText(value string) error
}

// BasicService offers the conveniences of the ScriptForge Basic
// service over the raw object model.
type BasicService interface {
	// MsgBox displays message in a modal dialog and blocks until the
	// dialog is dismissed.
	MsgBox(message string) error
}

// UIService creates new documents in the office instance.
type UIService interface {
	// CreateDocument opens a new, blank document of the given kind and
	// returns a handle to its underlying component.
	CreateDocument(kind DocumentKind) (TextDocument, error)
}

// Connect connects to a running LibreOffice instance, launching one
// through the COM bridge when none is running. On non-Windows
// platforms, this will return an error.
func Connect() (Session, error) {
	return newSessionPlatform()
}
