// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package geo

import (
	"github.com/pkg/errors"
)

// ComputeTileRange projects both corners at zoom level z and returns the tile bounds.
// The bounds are not reordered or clamped.
func ComputeTileRange(upperLeft LatLon, lowerRight LatLon, z int) (TileRange, error) {
	ul, err := upperLeft.Tile(z)
	if err != nil {
		return TileRange{}, errors.Wrapf(err, "error projecting upper-left corner %s", upperLeft)
	}
	lr, err := lowerRight.Tile(z)
	if err != nil {
		return TileRange{}, errors.Wrapf(err, "error projecting lower-right corner %s", lowerRight)
	}
	return TileRange{
		MinX: ul.X,
		MinY: ul.Y,
		MaxX: lr.X,
		MaxY: lr.Y,
		Zoom: z,
	}, nil
}
