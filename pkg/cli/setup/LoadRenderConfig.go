// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package setup

import (
	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/spatialcurrent/render-latlon/pkg/config"
)

// LoadRenderConfig loads the render configuration from viper.
// The tile directory is expanded if it starts with "~".
func LoadRenderConfig(v *viper.Viper) (*config.Render, error) {
	c := config.NewRenderConfig()
	config.LoadConfigFromViper(c, v)
	tileDir, err := homedir.Expand(c.TileDir)
	if err != nil {
		return nil, errors.Wrapf(err, "error expanding tile directory %q", c.TileDir)
	}
	c.TileDir = tileDir
	return c, nil
}
