// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package renderlist

import (
	"fmt"
)

// ErrRenderFailed is returned when the render command exits with a non-zero status.
type ErrRenderFailed struct {
	Zoom     int
	ExitCode int
}

func (e *ErrRenderFailed) Error() string {
	return fmt.Sprintf("render of zoom level %d failed with exit code %d", e.Zoom, e.ExitCode)
}
