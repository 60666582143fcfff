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
	"github.com/paulmach/orb/maptile"
)

// Tile is a slippy-map tile index.  Indices are not clamped, so tiles
// projected from latitudes beyond the mercator limit may lie outside [0, 2^z).
type Tile struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
	Z int `json:"z" yaml:"z"`
}

func (t Tile) String() string {
	return fmt.Sprintf("%d/%d/%d", t.Z, t.X, t.Y)
}

// MapTile returns the tile as a maptile.Tile.  Returns an error if the tile is outside the grid.
func (t Tile) MapTile() (maptile.Tile, error) {
	if err := CheckZoom(t.Z); err != nil {
		return maptile.Tile{}, err
	}
	n := NumTiles(t.Z)
	if t.X < 0 || t.X >= n {
		return maptile.Tile{}, &ErrRange{Name: "x", Value: float64(t.X), Min: 0, Max: float64(n - 1)}
	}
	if t.Y < 0 || t.Y >= n {
		return maptile.Tile{}, &ErrRange{Name: "y", Value: float64(t.Y), Min: 0, Max: float64(n - 1)}
	}
	return maptile.New(uint32(t.X), uint32(t.Y), maptile.Zoom(t.Z)), nil
}

// Bound returns the geographic extent of the tile.
func (t Tile) Bound() (orb.Bound, error) {
	mt, err := t.MapTile()
	if err != nil {
		return orb.Bound{}, err
	}
	return mt.Bound(), nil
}
