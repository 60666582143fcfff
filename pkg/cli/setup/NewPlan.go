// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package setup

import (
	"github.com/spatialcurrent/render-latlon/pkg/config"
	"github.com/spatialcurrent/render-latlon/pkg/geo"
	"github.com/spatialcurrent/render-latlon/pkg/renderlist"
)

// NewPlan parses the bounding box of the configuration and returns the render plan.
func NewPlan(c *config.Render) (*renderlist.Plan, error) {
	bbox, err := geo.ParseBoundingBox(c.UpperLeft, c.LowerRight)
	if err != nil {
		return nil, err
	}
	return renderlist.NewPlan(&renderlist.NewPlanInput{
		BoundingBox: bbox,
		MinZoom:     c.MinZoom,
		MaxZoom:     c.MaxZoom,
		Options:     c.Options(),
	})
}
