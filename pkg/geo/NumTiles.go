// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package geo

// NumTiles returns the number of tiles per axis for the given zoom level.
// It returns 0 if the zoom level is out of range.
func NumTiles(z int) int {
	if z < MinZoom || z > MaxZoom {
		return 0
	}
	return 1 << uint(z)
}
