package httputil

import "errors"

var (
	ErrVendorTypeInvalid = errors.New("the vendor type must be one of supplier, courier, vendor")
	ErrViewerInvalid     = errors.New("the viewer must be one of global, branch")
	ErrViewerBranchID    = errors.New("a branch viewer requires a branch ID")
	ErrVendorKeyMissing  = errors.New("the vendor identity is incomplete for its type")
)
