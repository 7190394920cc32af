//go:build windows

package uno

import (
	"fmt"
	"syscall"
	"unsafe"

	"github.com/go-ole/go-ole"
)

var (
	modoleaut32               = syscall.NewLazyDLL("oleaut32.dll")
	procSafeArrayCreateVector = modoleaut32.NewProc("SafeArrayCreateVector")
	procSafeArrayPutElement   = modoleaut32.NewProc("SafeArrayPutElement")
	procSafeArrayDestroy      = modoleaut32.NewProc("SafeArrayDestroy")
)

// newVariantSequence packs the given struct handles into a variant
// holding a VT_ARRAY|VT_VARIANT SAFEARRAY, the only layout the office
// bridge converts to a UNO sequence. go-ole does not expose safearray
// construction, so this goes to oleaut32 directly. The returned
// destroy func frees the array together with the variant copies it
// holds; the caller keeps ownership of the handles themselves.
func newVariantSequence(items []*ole.IDispatch) (*ole.VARIANT, func(), error) {
	psa, _, _ := procSafeArrayCreateVector.Call(uintptr(ole.VT_VARIANT), 0, uintptr(len(items)))
	if psa == 0 {
		return nil, nil, fmt.Errorf("failed to create safearray of %d elements", len(items))
	}
	for i, item := range items {
		index := int32(i)
		element := ole.NewVariant(ole.VT_DISPATCH, int64(uintptr(unsafe.Pointer(item))))
		// SafeArrayPutElement copies the variant, AddRef-ing the
		// dispatch pointer inside it
		hr, _, _ := procSafeArrayPutElement.Call(psa, uintptr(unsafe.Pointer(&index)), uintptr(unsafe.Pointer(&element)))
		if hr != 0 {
			procSafeArrayDestroy.Call(psa)
			return nil, nil, fmt.Errorf("failed to store sequence element %d: %#x", i, hr)
		}
	}
	sequence := ole.NewVariant(ole.VT_ARRAY|ole.VT_VARIANT, int64(psa))
	destroy := func() {
		procSafeArrayDestroy.Call(psa)
	}
	return &sequence, destroy, nil
}
