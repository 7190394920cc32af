//go:build !windows

package uno

import (
	"fmt"

	"github.com/go-ole/go-ole"
)

func newVariantSequence(items []*ole.IDispatch) (*ole.VARIANT, func(), error) {
	return nil, nil, fmt.Errorf("variant sequences are not supported on this platform")
}
