package macro

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafaelhlima/soffice-mcp-server/internal/uno"
)

type dispatchCall struct {
	frame uno.Frame
	cmd   uno.Command
	args  []uno.PropertyValue
}

// fakeDispatcher records every dispatch in order.
type fakeDispatcher struct {
	calls []dispatchCall
	err   error
}

func (d *fakeDispatcher) ExecuteDispatch(frame uno.Frame, cmd uno.Command, args []uno.PropertyValue) error {
	d.calls = append(d.calls, dispatchCall{frame: frame, cmd: cmd, args: args})
	return d.err
}

type fakeFrame struct {
	name string
}

type fakeCellRange struct {
	value string
	sets  int
}

func (r *fakeCellRange) SetString(value string) error {
	r.value = value
	r.sets++
	return nil
}

func (r *fakeCellRange) GetString() (string, error) {
	return r.value, nil
}

// fakeSheet hands out cell ranges on demand and remembers which
// addresses were requested.
type fakeSheet struct {
	cells map[string]*fakeCellRange
}

func (s *fakeSheet) CellRangeByName(name string) (uno.CellRange, error) {
	if s.cells == nil {
		s.cells = make(map[string]*fakeCellRange)
	}
	if cell, ok := s.cells[name]; ok {
		return cell, nil
	}
	cell := &fakeCellRange{}
	s.cells[name] = cell
	return cell, nil
}

type fakeSpreadsheetDocument struct {
	frame uno.Frame
	sheet *fakeSheet
}

func (d *fakeSpreadsheetDocument) CurrentFrame() (uno.Frame, error) {
	return d.frame, nil
}

func (d *fakeSpreadsheetDocument) ActiveSheet() (uno.Spreadsheet, error) {
	return d.sheet, nil
}

type fakeBasicService struct {
	messages []string
}

func (b *fakeBasicService) MsgBox(message string) error {
	b.messages = append(b.messages, message)
	return nil
}

type fakeTextDocument struct {
	text string
	sets int
}

func (d *fakeTextDocument) SetText(value string) error {
	d.text = value
	d.sets++
	return nil
}

type fakeUIService struct {
	created []uno.DocumentKind
	doc     *fakeTextDocument
}

func (u *fakeUIService) CreateDocument(kind uno.DocumentKind) (uno.TextDocument, error) {
	u.created = append(u.created, kind)
	return u.doc, nil
}

func TestMoveToCell(t *testing.T) {
	dispatcher := &fakeDispatcher{}
	frame := &fakeFrame{name: "sheet window"}

	require.NoError(t, MoveToCell(dispatcher, frame, "B2"))

	require.Len(t, dispatcher.calls, 1)
	call := dispatcher.calls[0]
	assert.Same(t, frame, call.frame)
	assert.Equal(t, uno.CommandGoToCell, call.cmd)
	assert.Equal(t, []uno.PropertyValue{{Name: "ToPoint", Value: "B2"}}, call.args)
}

func TestMoveToCellPassesAddressThrough(t *testing.T) {
	// Malformed addresses are the office's problem, not ours
	dispatcher := &fakeDispatcher{}
	frame := &fakeFrame{}

	require.NoError(t, MoveToCell(dispatcher, frame, "not-a-cell"))

	require.Len(t, dispatcher.calls, 1)
	assert.Equal(t, "not-a-cell", dispatcher.calls[0].args[0].Value)
}

func TestMoveToCellPropagatesDispatchError(t *testing.T) {
	dispatchErr := errors.New("no active frame")
	dispatcher := &fakeDispatcher{err: dispatchErr}

	err := MoveToCell(dispatcher, &fakeFrame{}, "A1")

	assert.ErrorIs(t, err, dispatchErr)
}

func TestCopyPaste(t *testing.T) {
	dispatcher := &fakeDispatcher{}
	frame := &fakeFrame{name: "sheet window"}

	require.NoError(t, CopyPaste(dispatcher, frame))

	require.Len(t, dispatcher.calls, 4)
	assert.Equal(t, uno.CommandGoToCell, dispatcher.calls[0].cmd)
	assert.Equal(t, []uno.PropertyValue{{Name: "ToPoint", Value: "A1"}}, dispatcher.calls[0].args)
	assert.Equal(t, uno.CommandCopy, dispatcher.calls[1].cmd)
	assert.Empty(t, dispatcher.calls[1].args)
	assert.Equal(t, uno.CommandGoToCell, dispatcher.calls[2].cmd)
	assert.Equal(t, []uno.PropertyValue{{Name: "ToPoint", Value: "C1"}}, dispatcher.calls[2].args)
	assert.Equal(t, uno.CommandPaste, dispatcher.calls[3].cmd)
	assert.Empty(t, dispatcher.calls[3].args)

	for _, call := range dispatcher.calls {
		assert.Same(t, frame, call.frame)
	}
}

func TestCopyPastePropagatesDispatchError(t *testing.T) {
	dispatchErr := errors.New("no active frame")
	dispatcher := &fakeDispatcher{err: dispatchErr}

	err := CopyPaste(dispatcher, &fakeFrame{})

	assert.ErrorIs(t, err, dispatchErr)
	assert.Len(t, dispatcher.calls, 1)
}

func TestSayHello(t *testing.T) {
	sheet := &fakeSheet{}
	doc := &fakeSpreadsheetDocument{sheet: sheet}

	require.NoError(t, SayHello(doc))

	require.Contains(t, sheet.cells, "A1")
	assert.Equal(t, "Hello World", sheet.cells["A1"].value)
	assert.Equal(t, 1, sheet.cells["A1"].sets)
	// No other range is touched
	assert.Len(t, sheet.cells, 1)
}

func TestShowDate(t *testing.T) {
	basic := &fakeBasicService{}
	today := time.Date(2026, time.March, 7, 15, 4, 5, 0, time.UTC)

	require.NoError(t, ShowDate(basic, today))

	require.Len(t, basic.messages, 1)
	assert.Equal(t, "Today is 07/03/2026\nHave a nice day!", basic.messages[0])
}

func TestShowDateVariesOnlyTheDate(t *testing.T) {
	basic := &fakeBasicService{}

	require.NoError(t, ShowDate(basic, time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, ShowDate(basic, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)))

	require.Len(t, basic.messages, 2)
	assert.Equal(t, "Today is 31/12/2025\nHave a nice day!", basic.messages[0])
	assert.Equal(t, "Today is 01/01/2026\nHave a nice day!", basic.messages[1])
}

func TestCreateWriterFile(t *testing.T) {
	doc := &fakeTextDocument{}
	ui := &fakeUIService{doc: doc}

	require.NoError(t, CreateWriterFile(ui))

	assert.Equal(t, []uno.DocumentKind{uno.DocumentKindWriter}, ui.created)
	assert.Equal(t, "Hello World", doc.text)
	assert.Equal(t, 1, doc.sets)
}

func TestCreateWriterFilePropagatesCreateError(t *testing.T) {
	createErr := errors.New("ui service unavailable")
	ui := &failingUIService{err: createErr}

	err := CreateWriterFile(ui)

	assert.ErrorIs(t, err, createErr)
}

type failingUIService struct {
	err error
}

func (u *failingUIService) CreateDocument(kind uno.DocumentKind) (uno.TextDocument, error) {
	return nil, u.err
}
