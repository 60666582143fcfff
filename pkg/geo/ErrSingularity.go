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

// ErrSingularity is returned when projecting a pole, where the tile row diverges.
type ErrSingularity struct {
	Lat float64
}

func (e *ErrSingularity) Error() string {
	return fmt.Sprintf("latitude %v cannot be projected to a tile row", e.Lat)
}
