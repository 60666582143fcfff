// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package geo

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// LatLon is a geographic coordinate in degrees (EPSG:4326).
// Use NewLatLon or ParseLatLon to create a validated value.
type LatLon struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lon float64 `json:"lon" yaml:"lon"`
}

func (c LatLon) String() string {
	return fmt.Sprintf("LatLon(%v, %v)", c.Lat, c.Lon)
}

// Equal returns true if both latitude and longitude match exactly.
func (c LatLon) Equal(o LatLon) bool {
	return c.Lat == o.Lat && c.Lon == o.Lon
}

// IsDownRightOf returns true if c is a different point than o and lies
// south-east of o or on the same row or column.  This is the direction in
// which tile indices grow.
func (c LatLon) IsDownRightOf(o LatLon) bool {
	if c.Equal(o) {
		return false
	}
	return c.Lat <= o.Lat && c.Lon >= o.Lon
}

// Tile returns the tile containing c at zoom level z.
func (c LatLon) Tile(z int) (Tile, error) {
	if err := CheckZoom(z); err != nil {
		return Tile{}, err
	}
	if math.Abs(c.Lat) == MaxLatitude {
		return Tile{}, &ErrSingularity{Lat: c.Lat}
	}
	row := latitudeToRow(c.Lat, z)
	if math.IsNaN(row) || math.IsInf(row, 0) || math.Abs(row) > math.MaxInt32 {
		return Tile{}, &ErrSingularity{Lat: c.Lat}
	}
	return Tile{
		X: LongitudeToTile(c.Lon, z),
		Y: int(row),
		Z: z,
	}, nil
}

// Point returns c as an orb.Point, which is ordered [lon, lat].
func (c LatLon) Point() orb.Point {
	return orb.Point{c.Lon, c.Lat}
}
