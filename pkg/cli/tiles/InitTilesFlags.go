// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package tiles

import (
	"github.com/spf13/pflag"

	"github.com/spatialcurrent/render-latlon/pkg/renderlist"
)

// InitTilesFlags initializes the flags passed through to render_list.
func InitTilesFlags(flag *pflag.FlagSet) {
	flag.StringP(FlagTileDir, "t", "", "mod_tile caching directory")
	flag.StringP(FlagMapName, "m", "", "map name, if blank render_list uses its default")
	flag.IntP(FlagThreads, "n", 0, "number of render_list threads, if zero render_list uses its default")
	flag.String(FlagRenderCommand, renderlist.DefaultExecutable, "the render_list executable")
}
