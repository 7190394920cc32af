package uno

import (
	"fmt"
	"runtime"

	"github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"
)

// OleSession drives LibreOffice through its COM automation bridge,
// registered under the "com.sun.star.ServiceManager" ProgID.
type OleSession struct {
	manager *ole.IDispatch
	desktop *ole.IDispatch
}

func newSessionPlatform() (Session, error) {
	runtime.LockOSThread()
	ole.CoInitializeEx(0, ole.COINIT_APARTMENTTHREADED)

	// Reuse an already-running office instance when possible
	unknown, err := oleutil.GetActiveObject("com.sun.star.ServiceManager")
	if err != nil {
		// Not running — the bridge launches soffice on creation
		unknown, err = oleutil.CreateObject("com.sun.star.ServiceManager")
		if err != nil {
			ole.CoUninitialize()
			runtime.UnlockOSThread()
			return nil, fmt.Errorf("failed to connect to LibreOffice: %w", err)
		}
	}
	manager, err := unknown.QueryInterface(ole.IID_IDispatch)
	if err != nil {
		ole.CoUninitialize()
		runtime.UnlockOSThread()
		return nil, fmt.Errorf("failed to query service manager interface: %w", err)
	}
	desktopResult, err := oleutil.CallMethod(manager, "createInstance", "com.sun.star.frame.Desktop")
	if err != nil {
		manager.Release()
		ole.CoUninitialize()
		runtime.UnlockOSThread()
		return nil, fmt.Errorf("failed to create desktop service: %w", err)
	}
	return &OleSession{manager: manager, desktop: desktopResult.ToIDispatch()}, nil
}

func (s *OleSession) Release() {
	if s.desktop != nil {
		s.desktop.Release()
	}
	if s.manager != nil {
		s.manager.Release()
	}
	ole.CoUninitialize()
	runtime.UnlockOSThread()
}

func (s *OleSession) CurrentSpreadsheet() (SpreadsheetDocument, error) {
	componentResult, err := oleutil.CallMethod(s.desktop, "getCurrentComponent")
	if err != nil {
		return nil, fmt.Errorf("failed to get current component: %w", err)
	}
	component := componentResult.ToIDispatch()
	if component == nil {
		return nil, fmt.Errorf("no document is open in LibreOffice")
	}
	return &oleSpreadsheetDocument{component: component}, nil
}

func (s *OleSession) Dispatcher() (Dispatcher, error) {
	helperResult, err := oleutil.CallMethod(s.manager, "createInstance", "com.sun.star.frame.DispatchHelper")
	if err != nil {
		return nil, fmt.Errorf("failed to create dispatch helper: %w", err)
	}
	return &oleDispatcher{manager: s.manager, helper: helperResult.ToIDispatch()}, nil
}

func (s *OleSession) Basic() BasicService {
	return &oleBasicService{session: s}
}

func (s *OleSession) UI() UIService {
	return &oleUIService{session: s}
}

// newStruct instantiates a UNO struct by type name through the bridge.
func (s *OleSession) newStruct(typeName string) (*ole.IDispatch, error) {
	result, err := oleutil.CallMethod(s.manager, "Bridge_GetStruct", typeName)
	if err != nil {
		return nil, fmt.Errorf("failed to create struct %s: %w", typeName, err)
	}
	return result.ToIDispatch(), nil
}

type oleDispatcher struct {
	manager *ole.IDispatch
	helper  *ole.IDispatch
}

func (d *oleDispatcher) ExecuteDispatch(frame Frame, cmd Command, args []PropertyValue) error {
	target, ok := frame.(*oleFrame)
	if !ok {
		return fmt.Errorf("frame is not an OLE frame handle")
	}
	url := cmd.URL()
	if url == "" {
		return fmt.Errorf("unsupported dispatch command: %s", cmd)
	}

	props := make([]*ole.IDispatch, 0, len(args))
	defer func() {
		for _, pv := range props {
			pv.Release()
		}
	}()
	for _, arg := range args {
		pv, err := d.newPropertyValue(arg)
		if err != nil {
			return err
		}
		props = append(props, pv)
	}

	// The bridge converts a safearray of variants to the sequence of
	// PropertyValue structs the dispatch expects
	sequence, destroySequence, err := newVariantSequence(props)
	if err != nil {
		return err
	}
	defer destroySequence()

	_, err = oleutil.CallMethod(d.helper, "executeDispatch", target.frame, url, "", int32(0), sequence)
	if err != nil {
		return fmt.Errorf("failed to dispatch %s: %w", url, err)
	}
	return nil
}

func (d *oleDispatcher) newPropertyValue(arg PropertyValue) (*ole.IDispatch, error) {
	result, err := oleutil.CallMethod(d.manager, "Bridge_GetStruct", "com.sun.star.beans.PropertyValue")
	if err != nil {
		return nil, fmt.Errorf("failed to create PropertyValue struct: %w", err)
	}
	pv := result.ToIDispatch()
	if _, err := oleutil.PutProperty(pv, "Name", arg.Name); err != nil {
		pv.Release()
		return nil, fmt.Errorf("failed to set PropertyValue.Name: %w", err)
	}
	if _, err := oleutil.PutProperty(pv, "Value", arg.Value); err != nil {
		pv.Release()
		return nil, fmt.Errorf("failed to set PropertyValue.Value: %w", err)
	}
	return pv, nil
}

type oleFrame struct {
	frame *ole.IDispatch
}

type oleSpreadsheetDocument struct {
	component *ole.IDispatch
}

func (d *oleSpreadsheetDocument) CurrentFrame() (Frame, error) {
	controllerProp, err := oleutil.GetProperty(d.component, "CurrentController")
	if err != nil {
		return nil, fmt.Errorf("failed to get CurrentController: %w", err)
	}
	controller := controllerProp.ToIDispatch()
	defer controller.Release()

	frameProp, err := oleutil.GetProperty(controller, "Frame")
	if err != nil {
		return nil, fmt.Errorf("failed to get Frame: %w", err)
	}
	return &oleFrame{frame: frameProp.ToIDispatch()}, nil
}

func (d *oleSpreadsheetDocument) ActiveSheet() (Spreadsheet, error) {
	controllerProp, err := oleutil.GetProperty(d.component, "CurrentController")
	if err != nil {
		return nil, fmt.Errorf("failed to get CurrentController: %w", err)
	}
	controller := controllerProp.ToIDispatch()
	defer controller.Release()

	sheetProp, err := oleutil.GetProperty(controller, "ActiveSheet")
	if err != nil {
		return nil, fmt.Errorf("failed to get ActiveSheet: %w", err)
	}
	return &oleSpreadsheet{sheet: sheetProp.ToIDispatch()}, nil
}

type oleSpreadsheet struct {
	sheet *ole.IDispatch
}

func (s *oleSpreadsheet) CellRangeByName(name string) (CellRange, error) {
	rangeResult, err := oleutil.CallMethod(s.sheet, "getCellRangeByName", name)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve cell range %s: %w", name, err)
	}
	return &oleCellRange{cells: rangeResult.ToIDispatch()}, nil
}

type oleCellRange struct {
	cells *ole.IDispatch
}

func (r *oleCellRange) SetString(value string) error {
	if _, err := oleutil.CallMethod(r.cells, "setString", value); err != nil {
		return fmt.Errorf("failed to set cell contents: %w", err)
	}
	return nil
}

func (r *oleCellRange) GetString() (string, error) {
	result, err := oleutil.CallMethod(r.cells, "getString")
	if err != nil {
		return "", fmt.Errorf("failed to get cell contents: %w", err)
	}
	return result.ToString(), nil
}

type oleBasicService struct {
	session *OleSession
}

func (b *oleBasicService) MsgBox(message string) error {
	toolkitResult, err := oleutil.CallMethod(b.session.manager, "createInstance", "com.sun.star.awt.Toolkit")
	if err != nil {
		return fmt.Errorf("failed to create toolkit service: %w", err)
	}
	toolkit := toolkitResult.ToIDispatch()
	defer toolkit.Release()

	frameProp, err := oleutil.CallMethod(b.session.desktop, "getCurrentFrame")
	if err != nil {
		return fmt.Errorf("failed to get current frame: %w", err)
	}
	frame := frameProp.ToIDispatch()
	defer frame.Release()

	windowProp, err := oleutil.GetProperty(frame, "ContainerWindow")
	if err != nil {
		return fmt.Errorf("failed to get container window: %w", err)
	}
	window := windowProp.ToIDispatch()
	defer window.Release()

	// MessageBoxType INFOBOX, MessageBoxButtons BUTTONS_OK
	boxResult, err := oleutil.CallMethod(toolkit, "createMessageBox", window, int32(1), int32(1), "LibreOffice", message)
	if err != nil {
		return fmt.Errorf("failed to create message box: %w", err)
	}
	box := boxResult.ToIDispatch()
	defer box.Release()

	if _, err := oleutil.CallMethod(box, "execute"); err != nil {
		return fmt.Errorf("failed to show message box: %w", err)
	}
	return nil
}

type oleUIService struct {
	session *OleSession
}

func (u *oleUIService) CreateDocument(kind DocumentKind) (TextDocument, error) {
	url := kind.FactoryURL()
	if url == "" {
		return nil, fmt.Errorf("unsupported document kind: %s", kind)
	}
	// loadComponentFromURL takes a sequence of load arguments, empty here
	loadArgs, destroyLoadArgs, err := newVariantSequence(nil)
	if err != nil {
		return nil, err
	}
	defer destroyLoadArgs()

	componentResult, err := oleutil.CallMethod(u.session.desktop, "loadComponentFromURL", url, "_blank", int32(0), loadArgs)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s document: %w", kind, err)
	}
	return &oleTextDocument{component: componentResult.ToIDispatch()}, nil
}

type oleTextDocument struct {
	component *ole.IDispatch
}

func (d *oleTextDocument) SetText(value string) error {
	textProp, err := oleutil.GetProperty(d.component, "Text")
	if err != nil {
		return fmt.Errorf("failed to get document text: %w", err)
	}
	text := textProp.ToIDispatch()
	defer text.Release()

	if _, err := oleutil.CallMethod(text, "setString", value); err != nil {
		return fmt.Errorf("failed to set document text: %w", err)
	}
	return nil
}
