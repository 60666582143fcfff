// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package plan

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/spatialcurrent/render-latlon/pkg/cli/bbox"
	"github.com/spatialcurrent/render-latlon/pkg/cli/output"
	"github.com/spatialcurrent/render-latlon/pkg/cli/tiles"
)

// CheckPlanConfig checks the plan configuration.
// The tile directory is not required to exist.
func CheckPlanConfig(v *viper.Viper) error {
	err := bbox.CheckBBoxConfig(v)
	if err != nil {
		return errors.Wrap(err, "error with bounding box configuration")
	}
	err = tiles.CheckTilesConfig(v, false)
	if err != nil {
		return errors.Wrap(err, "error with tiles configuration")
	}
	err = output.CheckOutputConfig(v)
	if err != nil {
		return errors.Wrap(err, "error with output configuration")
	}
	return nil
}
