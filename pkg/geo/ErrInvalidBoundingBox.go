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

type ErrInvalidBoundingBox struct {
	UpperLeft  LatLon
	LowerRight LatLon
}

func (e *ErrInvalidBoundingBox) Error() string {
	return fmt.Sprintf("%s and %s do not form a valid bounding box", e.UpperLeft, e.LowerRight)
}
