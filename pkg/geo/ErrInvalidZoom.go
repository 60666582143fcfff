// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package geo

import (
	"fmt"
)

type ErrInvalidZoom struct {
	Value int
}

func (e *ErrInvalidZoom) Error() string {
	return fmt.Sprintf("invalid zoom level %d, must be between %d and %d", e.Value, MinZoom, MaxZoom)
}
