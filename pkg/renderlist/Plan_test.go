// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package renderlist

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spatialcurrent/render-latlon/pkg/geo"
)

var testBox = geo.BoundingBox{
	UpperLeft:  geo.LatLon{Lat: 38.9, Lon: -77.03},
	LowerRight: geo.LatLon{Lat: 38.8, Lon: -76.9},
}

func TestNewPlanInvokesRangeOncePerZoom(t *testing.T) {
	zooms := make([]int, 0)
	plan, err := NewPlan(&NewPlanInput{
		BoundingBox: testBox,
		MinZoom:     10,
		MaxZoom:     12,
		Options:     NewOptions("/tiles"),
		Range: func(ul geo.LatLon, lr geo.LatLon, z int) (geo.TileRange, error) {
			zooms = append(zooms, z)
			return geo.ComputeTileRange(ul, lr, z)
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []int{10, 11, 12}, zooms)
	require.Len(t, plan.Commands, 3)
	for i, c := range plan.Commands {
		assert.Equal(t, 10+i, c.Zoom)
		assert.Equal(t, 10+i, c.Range.Zoom)
	}
	assert.Equal(t, geo.TileRange{MinX: 292, MinY: 391, MaxX: 293, MaxY: 392, Zoom: 10}, plan.Commands[0].Range)
}

func TestNewPlanSingleZoom(t *testing.T) {
	plan, err := NewPlan(&NewPlanInput{BoundingBox: testBox, MinZoom: 5, MaxZoom: 5, Options: NewOptions("/tiles")})
	require.NoError(t, err)
	require.Len(t, plan.Commands, 1)
	assert.Equal(t, 5, plan.Commands[0].Zoom)
	assert.Equal(t, plan.Commands[0].Range.Count(), plan.Count())
}

func TestNewPlanInvalid(t *testing.T) {
	_, err := NewPlan(&NewPlanInput{BoundingBox: testBox, MinZoom: 12, MaxZoom: 10, Options: NewOptions("/tiles")})
	assert.Equal(t, &ErrInvalidZoomRange{Min: 12, Max: 10}, err)

	_, err = NewPlan(&NewPlanInput{BoundingBox: testBox, MinZoom: -1, MaxZoom: 10, Options: NewOptions("/tiles")})
	var zoomErr *geo.ErrInvalidZoom
	assert.True(t, errors.As(err, &zoomErr))

	reversed := geo.BoundingBox{UpperLeft: testBox.LowerRight, LowerRight: testBox.UpperLeft}
	_, err = NewPlan(&NewPlanInput{BoundingBox: reversed, MinZoom: 1, MaxZoom: 2, Options: NewOptions("/tiles")})
	assert.IsType(t, &geo.ErrInvalidBoundingBox{}, err)

	_, err = NewPlan(&NewPlanInput{BoundingBox: testBox, MinZoom: 1, MaxZoom: 2, Options: NewOptions("")})
	assert.Equal(t, ErrMissingTileDir, errors.Cause(err))
}

func TestNewPlanPole(t *testing.T) {
	box := geo.BoundingBox{UpperLeft: geo.LatLon{Lat: 90, Lon: -10}, LowerRight: geo.LatLon{Lat: 0, Lon: 10}}
	_, err := NewPlan(&NewPlanInput{BoundingBox: box, MinZoom: 1, MaxZoom: 2, Options: NewOptions("/tiles")})
	require.Error(t, err)
	var singularity *geo.ErrSingularity
	assert.True(t, errors.As(err, &singularity))
}
