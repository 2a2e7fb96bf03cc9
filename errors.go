package grating

import "errors"

// ErrInvalidParameter is returned, wrapped, for inputs that cannot produce a
// mask or a grating. Test for it with errors.Is.
var ErrInvalidParameter = errors.New("grating: invalid parameter")
