package geomgo

import "errors"

// ErrDegenerateAxes is returned by the Axes builders when the up and
// forward inputs are too small or nearly parallel to span a basis.
var ErrDegenerateAxes = errors.New("geomgo: up/forward vectors are degenerate or parallel")
