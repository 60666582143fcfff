// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package render

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/spatialcurrent/render-latlon/pkg/cli/bbox"
	"github.com/spatialcurrent/render-latlon/pkg/cli/logging"
	"github.com/spatialcurrent/render-latlon/pkg/cli/tiles"
	rerrors "github.com/spatialcurrent/render-latlon/pkg/errors"
)

// CheckRenderConfig checks the render configuration.
func CheckRenderConfig(v *viper.Viper) error {
	err := logging.CheckLoggingConfig(v)
	if err != nil {
		return errors.Wrap(err, "error with logging configuration")
	}
	err = bbox.CheckBBoxConfig(v)
	if err != nil {
		return errors.Wrap(err, "error with bounding box configuration")
	}
	err = tiles.CheckTilesConfig(v, true)
	if err != nil {
		return errors.Wrap(err, "error with tiles configuration")
	}
	if timeout := v.GetDuration(FlagTimeout); timeout < 0 {
		return &rerrors.ErrInvalidParameter{Name: FlagTimeout, Value: timeout}
	}
	return nil
}
