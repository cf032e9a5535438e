package nblist

import (
	"github.com/phil-mansfield/nblist/geom"
)

// foldPositions folds every coordinate that drifted out of the primary box
// back inside along the box's periodic axes. It runs only immediately
// after a rebuild: folding mid-interval would shift coordinates out from
// under the reference snapshot and corrupt the drift metric, and the
// single-width fold in geom.Box.Fold is only valid while drift since the
// last rebuild stays below one box width.
func foldPositions(xs []geom.Vec, box *geom.Box) {
	for i := range xs {
		box.Fold(&xs[i])
	}
}
