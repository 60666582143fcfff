// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package geo

import (
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// BoundingBox is a geographic rectangle defined by its upper-left and lower-right corners.
type BoundingBox struct {
	UpperLeft  LatLon `json:"upperLeft" yaml:"upperLeft"`
	LowerRight LatLon `json:"lowerRight" yaml:"lowerRight"`
}

// NewBoundingBox returns a validated bounding box.
func NewBoundingBox(upperLeft LatLon, lowerRight LatLon) (BoundingBox, error) {
	b := BoundingBox{UpperLeft: upperLeft, LowerRight: lowerRight}
	if err := b.Validate(); err != nil {
		return BoundingBox{}, err
	}
	return b, nil
}

// ParseBoundingBox parses both corners in "lat,lon" format and validates the box.
func ParseBoundingBox(upperLeft string, lowerRight string) (BoundingBox, error) {
	ul, err := ParseLatLon(upperLeft)
	if err != nil {
		return BoundingBox{}, errors.Wrap(err, "invalid upper-left coordinates")
	}
	lr, err := ParseLatLon(lowerRight)
	if err != nil {
		return BoundingBox{}, errors.Wrap(err, "invalid lower-right coordinates")
	}
	return NewBoundingBox(ul, lr)
}

// Validate returns an *ErrInvalidBoundingBox if the corners do not form a proper box.
func (b BoundingBox) Validate() error {
	if !IsProperBoundingBox(b.UpperLeft, b.LowerRight) {
		return &ErrInvalidBoundingBox{UpperLeft: b.UpperLeft, LowerRight: b.LowerRight}
	}
	return nil
}

// TileRange returns the tile range covering the box at zoom level z.
func (b BoundingBox) TileRange(z int) (TileRange, error) {
	return ComputeTileRange(b.UpperLeft, b.LowerRight, z)
}

// Bound returns the box as an orb.Bound.
func (b BoundingBox) Bound() orb.Bound {
	return orb.MultiPoint{b.UpperLeft.Point(), b.LowerRight.Point()}.Bound()
}
