// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package geo

import (
	"fmt"

	"github.com/paulmach/orb"
)

// TileRange is the rectangle of tiles from (MinX, MinY) to (MaxX, MaxY) inclusive.
type TileRange struct {
	MinX int `json:"x0" yaml:"x0"`
	MinY int `json:"y0" yaml:"y0"`
	MaxX int `json:"x1" yaml:"x1"`
	MaxY int `json:"y1" yaml:"y1"`
	Zoom int `json:"z" yaml:"z"`
}

// Count returns the number of tiles in the range.
func (r TileRange) Count() int {
	return (r.MaxX - r.MinX + 1) * (r.MaxY - r.MinY + 1)
}

// Bound returns the geographic extent covered by the tiles in the range.
func (r TileRange) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{TileToLongitude(r.MinX, r.Zoom), TileToLatitude(r.MaxY+1, r.Zoom)},
		Max: orb.Point{TileToLongitude(r.MaxX+1, r.Zoom), TileToLatitude(r.MinY, r.Zoom)},
	}
}

func (r TileRange) String() string {
	return fmt.Sprintf("z=%d x=%d..%d y=%d..%d", r.Zoom, r.MinX, r.MaxX, r.MinY, r.MaxY)
}
