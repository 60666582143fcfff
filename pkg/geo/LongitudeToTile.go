// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package geo

import (
	"math"
)

// LongitudeToTile returns the tile column containing the longitude at zoom level z.
func LongitudeToTile(lon float64, z int) int {
	return int((lon + 180) / 360 * math.Pow(2, float64(z)))
}
