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

type ErrInvalidZoomRange struct {
	Min int
	Max int
}

func (e *ErrInvalidZoomRange) Error() string {
	return fmt.Sprintf("invalid zoom range, minimum zoom %d is greater than maximum zoom %d", e.Min, e.Max)
}
