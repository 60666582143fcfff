// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// Package geo converts geographic coordinates into slippy-map tile indices
// using the Web Mercator (EPSG:3857) tiling scheme.
//
// Zoom level z divides the world into 2^z by 2^z tiles.  X grows from 180°W to
// the east and Y grows from the top edge (85.0511°N) to the south.
//
// Reference: https://wiki.openstreetmap.org/wiki/Slippy_map_tilenames
package geo

import (
	"math"
)

const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0

	MinZoom = 0
	MaxZoom = 30
)

var (
	D2R = math.Pi / 180
	R2D = 180 / math.Pi
)
