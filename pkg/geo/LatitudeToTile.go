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

// LatitudeToTile returns the tile row containing the latitude at zoom level z.
// The result is undefined at the poles, see ErrSingularity.
func LatitudeToTile(lat float64, z int) int {
	return int(latitudeToRow(lat, z))
}

// latitudeToRow returns the fractional tile row of the latitude at zoom level z.
// asinh(tan(lat)) equals ln(tan(lat) + sec(lat)) but stays finite near the south pole.
func latitudeToRow(lat float64, z int) float64 {
	return (1.0 - math.Asinh(math.Tan(lat*D2R))/math.Pi) / 2.0 * math.Pow(2, float64(z))
}
