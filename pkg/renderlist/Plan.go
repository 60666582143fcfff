// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package renderlist

import (
	"github.com/paulmach/orb"
	"github.com/pkg/errors"

	"github.com/spatialcurrent/render-latlon/pkg/geo"
)

// RangeFunc computes the tile range of a bounding box at a zoom level.
type RangeFunc func(upperLeft geo.LatLon, lowerRight geo.LatLon, z int) (geo.TileRange, error)

// Plan is the ordered list of commands for a bounding box and zoom range.
type Plan struct {
	BoundingBox geo.BoundingBox `json:"bbox" yaml:"bbox"`
	MinZoom     int             `json:"minZoom" yaml:"minZoom"`
	MaxZoom     int             `json:"maxZoom" yaml:"maxZoom"`
	Options     Options         `json:"options" yaml:"options"`
	Commands    []*Command      `json:"commands" yaml:"commands"`
}

type NewPlanInput struct {
	BoundingBox geo.BoundingBox
	MinZoom     int
	MaxZoom     int
	Options     Options
	Range       RangeFunc // defaults to geo.ComputeTileRange
}

// NewPlan validates the input and computes one command per zoom level from MinZoom to MaxZoom inclusive.
func NewPlan(input *NewPlanInput) (*Plan, error) {
	if err := input.Options.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid render options")
	}
	if err := geo.CheckZoom(input.MinZoom); err != nil {
		return nil, errors.Wrap(err, "invalid minimum zoom")
	}
	if err := geo.CheckZoom(input.MaxZoom); err != nil {
		return nil, errors.Wrap(err, "invalid maximum zoom")
	}
	if input.MinZoom > input.MaxZoom {
		return nil, &ErrInvalidZoomRange{Min: input.MinZoom, Max: input.MaxZoom}
	}
	if err := input.BoundingBox.Validate(); err != nil {
		return nil, err
	}

	rangeFunc := input.Range
	if rangeFunc == nil {
		rangeFunc = geo.ComputeTileRange
	}

	commands := make([]*Command, 0, input.MaxZoom-input.MinZoom+1)
	for z := input.MinZoom; z <= input.MaxZoom; z++ {
		r, err := rangeFunc(input.BoundingBox.UpperLeft, input.BoundingBox.LowerRight, z)
		if err != nil {
			return nil, errors.Wrapf(err, "error computing tile range for zoom level %d", z)
		}
		commands = append(commands, &Command{Zoom: z, Range: r, Options: input.Options})
	}

	return &Plan{
		BoundingBox: input.BoundingBox,
		MinZoom:     input.MinZoom,
		MaxZoom:     input.MaxZoom,
		Options:     input.Options,
		Commands:    commands,
	}, nil
}

// Count returns the total number of tiles across all zoom levels.
func (p *Plan) Count() int {
	count := 0
	for _, c := range p.Commands {
		count += c.Range.Count()
	}
	return count
}

// Bound returns the geographic extent of the tiles rendered at the maximum zoom level.
func (p *Plan) Bound() orb.Bound {
	if len(p.Commands) == 0 {
		return p.BoundingBox.Bound()
	}
	return p.Commands[len(p.Commands)-1].Range.Bound()
}
