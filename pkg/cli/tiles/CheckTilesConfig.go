// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package tiles

import (
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	rerrors "github.com/spatialcurrent/render-latlon/pkg/errors"
)

// CheckTilesConfig checks the render_list configuration.
// If requireDir is true, the tile directory must exist.
func CheckTilesConfig(v *viper.Viper, requireDir bool) error {
	tileDir := v.GetString(FlagTileDir)
	if len(tileDir) == 0 {
		return &rerrors.ErrMissingRequiredParameter{Name: FlagTileDir}
	}
	if threads := v.GetInt(FlagThreads); threads < 0 {
		return &rerrors.ErrInvalidParameter{Name: FlagThreads, Value: threads}
	}
	if len(v.GetString(FlagRenderCommand)) == 0 {
		return &rerrors.ErrMissingRequiredParameter{Name: FlagRenderCommand}
	}
	if requireDir {
		p, err := homedir.Expand(tileDir)
		if err != nil {
			return errors.Wrapf(err, "error expanding tile directory %q", tileDir)
		}
		info, err := os.Stat(p)
		if err != nil {
			if os.IsNotExist(err) {
				return &rerrors.ErrDirectoryNotFound{Path: p}
			}
			return errors.Wrapf(err, "error checking tile directory %q", p)
		}
		if !info.IsDir() {
			return &rerrors.ErrNotDirectory{Path: p}
		}
	}
	return nil
}
